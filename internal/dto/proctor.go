package dto

// ── 导师模块 DTO ──

// StudentRosterItemResponse 导师名下单个学生概览
type StudentRosterItemResponse struct {
	StudentProfileID     string  `json:"student_profile_id"`
	StudentID            string  `json:"student_id"`
	Name                 string  `json:"name"`
	Email                string  `json:"email"`
	Department           string  `json:"department"`
	Semester             int     `json:"semester"`
	CGPA                 float64 `json:"cgpa"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

// StudentDetailResponse 导师视角的学生详情
type StudentDetailResponse struct {
	Profile    StudentRosterItemResponse `json:"profile"`
	Attendance AttendanceSummaryResponse `json:"attendance"`
	Academic   AcademicSummaryResponse   `json:"academic"`
}

// SubjectPerformanceResponse 学科表现报表条目
// 对导师名下全部学生：按课程累加四项成绩之和，除以贡献记录数
type SubjectPerformanceResponse struct {
	CourseID     string  `json:"course_id"`
	CourseName   string  `json:"course_name"`
	RecordCount  int     `json:"record_count"`
	AverageMarks float64 `json:"average_marks"`
}

// ProctorQueryListRequest 导师工单列表查询参数
type ProctorQueryListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=pending in_progress resolved closed"`
}
