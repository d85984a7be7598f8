package model

import "time"

// AttendanceRecord 考勤记录表 — 对应 attendance_records
// 追加式日志：同一 (学生, 课程, 日期) 不做唯一约束
type AttendanceRecord struct {
	AttendanceID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	StudentProfileID string    `gorm:"type:uuid;not null;index"                       json:"student_profile_id"`
	CourseID         string    `gorm:"type:varchar(20);not null"                      json:"course_id"`
	CourseName       string    `gorm:"type:varchar(100);not null"                     json:"course_name"`
	Date             time.Time `gorm:"type:date;not null"                             json:"date"`
	IsPresent        bool      `gorm:"not null;default:false"                         json:"is_present"`
	BaseModel
}

// TableName 指定表名
func (AttendanceRecord) TableName() string { return "attendance_records" }
