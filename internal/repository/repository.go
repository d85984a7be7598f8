package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	User           UserRepository
	StudentProfile StudentProfileRepository
	ProctorProfile ProctorProfileRepository
	Attendance     AttendanceRepository
	Academic       AcademicRepository
	Query          QueryRepository
	ResetToken     ResetTokenRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:             db,
		User:           NewUserRepo(db),
		StudentProfile: NewStudentProfileRepo(db),
		ProctorProfile: NewProctorProfileRepo(db),
		Attendance:     NewAttendanceRepo(db),
		Academic:       NewAcademicRepo(db),
		Query:          NewQueryRepo(db),
		ResetToken:     NewResetTokenRepo(db),
	}
}

// Transaction 在单个数据库事务中执行 fn
// fn 收到的 Repository 绑定事务句柄；fn 返回错误时整体回滚
// db 为空时（如手工注入各 Repository 实现）直接执行 fn，不包事务
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
