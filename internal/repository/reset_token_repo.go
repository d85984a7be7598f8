package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// ResetTokenRepository 密码重置 Token 数据访问接口
type ResetTokenRepository interface {
	Create(ctx context.Context, token *model.PasswordResetToken) error
	GetByToken(ctx context.Context, token string) (*model.PasswordResetToken, error)
	MarkUsed(ctx context.Context, id string, usedAt time.Time) error
	PurgeStale(ctx context.Context, userID string, now time.Time) error
}

// resetTokenRepo ResetTokenRepository 的 GORM 实现
type resetTokenRepo struct {
	db *gorm.DB
}

// NewResetTokenRepo 创建 ResetTokenRepository 实例
func NewResetTokenRepo(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepo{db: db}
}

func (r *resetTokenRepo) Create(ctx context.Context, token *model.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepo) GetByToken(ctx context.Context, token string) (*model.PasswordResetToken, error) {
	var t model.PasswordResetToken
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *resetTokenRepo) MarkUsed(ctx context.Context, id string, usedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.PasswordResetToken{}).
		Where("reset_token_id = ?", id).
		Update("used_at", usedAt).Error
}

// PurgeStale 删除用户已过期或已使用的 Token
// 无定时任务，每次重置请求时顺带清理
func (r *resetTokenRepo) PurgeStale(ctx context.Context, userID string, now time.Time) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND (expires_at < ? OR used_at IS NOT NULL)", userID, now).
		Delete(&model.PasswordResetToken{}).Error
}
