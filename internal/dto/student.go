package dto

// ── 学生模块 DTO ──

// CourseAttendanceResponse 单门课程的考勤汇总
type CourseAttendanceResponse struct {
	CourseID     string  `json:"course_id"`
	CourseName   string  `json:"course_name"`
	TotalClasses int     `json:"total_classes"`
	Present      int     `json:"present"`
	Percentage   float64 `json:"percentage"` // 保留两位小数；无记录课程为 0
}

// AttendanceSummaryResponse 考勤汇总响应
// OverallPercentage 按全部记录加权计算，而非各课程百分比的平均
type AttendanceSummaryResponse struct {
	Courses           []CourseAttendanceResponse `json:"courses"`
	OverallPercentage float64                    `json:"overall_percentage"`
	TotalClasses      int                        `json:"total_classes"`
	TotalPresent      int                        `json:"total_present"`
	Records           []AttendanceRecordResponse `json:"records"`
}

// AttendanceRecordResponse 单条考勤记录
type AttendanceRecordResponse struct {
	ID         string `json:"id"`
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Date       string `json:"date"`
	IsPresent  bool   `json:"is_present"`
}

// AcademicRecordResponse 单条成绩记录
type AcademicRecordResponse struct {
	ID               string  `json:"id"`
	CourseID         string  `json:"course_id"`
	CourseName       string  `json:"course_name"`
	Semester         int     `json:"semester"`
	InternalMarks    float64 `json:"internal_marks"`
	QuizMarks        float64 `json:"quiz_marks"`
	ProjectMarks     float64 `json:"project_marks"`
	SemesterMarks    float64 `json:"semester_marks"`
	TotalMarks       float64 `json:"total_marks"`
	CGPAContribution float64 `json:"cgpa_contribution"`
}

// AcademicSummaryResponse 成绩汇总响应
type AcademicSummaryResponse struct {
	Records []AcademicRecordResponse `json:"records"`
	CGPA    float64                  `json:"cgpa"`
}
