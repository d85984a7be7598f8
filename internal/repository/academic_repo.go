package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// AcademicRepository 成绩数据访问接口
type AcademicRepository interface {
	Create(ctx context.Context, record *model.AcademicRecord) error
	ListByStudent(ctx context.Context, studentProfileID string) ([]model.AcademicRecord, error)
	ListByStudents(ctx context.Context, studentProfileIDs []string) ([]model.AcademicRecord, error)
}

// academicRepo AcademicRepository 的 GORM 实现
type academicRepo struct {
	db *gorm.DB
}

// NewAcademicRepo 创建 AcademicRepository 实例
func NewAcademicRepo(db *gorm.DB) AcademicRepository {
	return &academicRepo{db: db}
}

func (r *academicRepo) Create(ctx context.Context, record *model.AcademicRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *academicRepo) ListByStudent(ctx context.Context, studentProfileID string) ([]model.AcademicRecord, error) {
	var records []model.AcademicRecord
	err := r.db.WithContext(ctx).
		Where("student_profile_id = ?", studentProfileID).
		Order("semester ASC, course_id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *academicRepo) ListByStudents(ctx context.Context, studentProfileIDs []string) ([]model.AcademicRecord, error) {
	if len(studentProfileIDs) == 0 {
		return nil, nil
	}
	var records []model.AcademicRecord
	err := r.db.WithContext(ctx).
		Where("student_profile_id IN ?", studentProfileIDs).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
