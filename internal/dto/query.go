package dto

// ── 答疑工单模块 DTO ──

// CreateQueryRequest 学生创建工单请求
// 主题至少 3 字符，描述至少 10 字符，由绑定层校验
type CreateQueryRequest struct {
	Subject     string `json:"subject"     binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=10"`
}

// RespondQueryRequest 追加回复请求
type RespondQueryRequest struct {
	Response string `json:"response" binding:"required,min=1"`
}

// UpdateQueryStatusRequest 导师更新工单状态请求
type UpdateQueryStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress resolved closed"`
}

// QueryResponseItem 单条回复
type QueryResponseItem struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	AuthorName string `json:"author_name,omitempty"`
	AuthorRole string `json:"author_role,omitempty"`
	Response   string `json:"response"`
	CreatedAt  string `json:"created_at"`
}

// QueryItemResponse 工单概要
type QueryItemResponse struct {
	ID          string `json:"id"`
	StudentID   string `json:"student_id"`
	ProctorID   string `json:"proctor_id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// QueryDetailResponse 工单详情（含按时间升序的回复）
type QueryDetailResponse struct {
	QueryItemResponse
	Responses []QueryResponseItem `json:"responses"`
}
