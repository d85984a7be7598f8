package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"` // Cookie 模式下可不返回
	ExpiresIn    int          `json:"expires_in"`              // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ProfileResponse 当前用户 + 角色档案（GET /profile）
type ProfileResponse struct {
	UserResponse
	CreatedAt      string                  `json:"created_at"`
	StudentProfile *StudentProfileResponse `json:"student_profile,omitempty"`
	ProctorProfile *ProctorProfileResponse `json:"proctor_profile,omitempty"`
}

// StudentProfileResponse 学生档案
type StudentProfileResponse struct {
	ID         string  `json:"id"`
	StudentID  string  `json:"student_id"`
	Department string  `json:"department"`
	Semester   int     `json:"semester"`
	CGPA       float64 `json:"cgpa"`
	Proctor    *ProctorProfileResponse `json:"proctor,omitempty"`
}

// ProctorProfileResponse 导师档案
type ProctorProfileResponse struct {
	ID          string `json:"id"`
	FacultyID   string `json:"faculty_id"`
	Department  string `json:"department"`
	Phone       string `json:"phone,omitempty"`
	Designation string `json:"designation,omitempty"`
	Name        string `json:"name,omitempty"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
