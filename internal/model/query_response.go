package model

// QueryResponse 答疑回复表 — 对应 query_responses
// 追加式，按 created_at 升序返回
type QueryResponse struct {
	QueryResponseID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"query_response_id"`
	QueryID         string `gorm:"type:uuid;not null;index"                       json:"query_id"`
	UserID          string `gorm:"type:uuid;not null"                             json:"user_id"`
	Response        string `gorm:"type:text;not null"                             json:"response"`
	BaseModel

	// 关联
	Author *User `gorm:"foreignKey:UserID;references:UserID" json:"author,omitempty"`
}

// TableName 指定表名
func (QueryResponse) TableName() string { return "query_responses" }
