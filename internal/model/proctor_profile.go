package model

// ProctorProfile 导师档案表 — 对应 proctor_profiles
type ProctorProfile struct {
	ProctorProfileID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"proctor_profile_id"`
	UserID           string `gorm:"type:uuid;not null;uniqueIndex"                 json:"user_id"`
	FacultyID        string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"faculty_id"`
	Department       string `gorm:"type:varchar(100);not null"                     json:"department"`
	Phone            string `gorm:"type:varchar(20)"                               json:"phone"`
	Designation      string `gorm:"type:varchar(100)"                              json:"designation"`
	BaseModel

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (ProctorProfile) TableName() string { return "proctor_profiles" }
