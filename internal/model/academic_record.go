package model

// AcademicRecord 成绩记录表 — 对应 academic_records
// 按课程/学期追加
type AcademicRecord struct {
	AcademicRecordID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_record_id"`
	StudentProfileID string  `gorm:"type:uuid;not null;index"                       json:"student_profile_id"`
	CourseID         string  `gorm:"type:varchar(20);not null"                      json:"course_id"`
	CourseName       string  `gorm:"type:varchar(100);not null"                     json:"course_name"`
	Semester         int     `gorm:"not null"                                       json:"semester"`
	InternalMarks    float64 `gorm:"type:numeric(5,2);not null;default:0"           json:"internal_marks"`
	QuizMarks        float64 `gorm:"type:numeric(5,2);not null;default:0"           json:"quiz_marks"`
	ProjectMarks     float64 `gorm:"type:numeric(5,2);not null;default:0"           json:"project_marks"`
	SemesterMarks    float64 `gorm:"type:numeric(5,2);not null;default:0"           json:"semester_marks"`
	CGPAContribution float64 `gorm:"type:numeric(4,2);not null;default:0"           json:"cgpa_contribution"`
	BaseModel
}

// TableName 指定表名
func (AcademicRecord) TableName() string { return "academic_records" }

// TotalMarks 四项成绩之和（学科表现报表的聚合基数）
func (r *AcademicRecord) TotalMarks() float64 {
	return r.InternalMarks + r.QuizMarks + r.ProjectMarks + r.SemesterMarks
}
