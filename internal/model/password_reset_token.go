package model

import "time"

// PasswordResetToken 密码重置 Token 表 — 对应 password_reset_tokens
// 单次使用、限时有效；过期与已用 Token 在每次重置请求时顺带清理
type PasswordResetToken struct {
	ResetTokenID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"reset_token_id"`
	UserID       string     `gorm:"type:uuid;not null;index"                       json:"user_id"`
	Token        string     `gorm:"type:varchar(64);not null;uniqueIndex"          json:"-"`
	ExpiresAt    time.Time  `gorm:"not null"                                       json:"expires_at"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	BaseModel
}

// TableName 指定表名
func (PasswordResetToken) TableName() string { return "password_reset_tokens" }

// Redeemable Token 是否可兑换：未使用且未过期
func (t *PasswordResetToken) Redeemable(now time.Time) bool {
	return t.UsedAt == nil && now.Before(t.ExpiresAt)
}
