package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// StudentProfileRepository 学生档案数据访问接口
type StudentProfileRepository interface {
	Create(ctx context.Context, profile *model.StudentProfile) error
	GetByID(ctx context.Context, id string) (*model.StudentProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.StudentProfile, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.StudentProfile, error)
	ListByProctor(ctx context.Context, proctorProfileID string) ([]model.StudentProfile, error)
	Update(ctx context.Context, profile *model.StudentProfile) error
}

// studentProfileRepo StudentProfileRepository 的 GORM 实现
type studentProfileRepo struct {
	db *gorm.DB
}

// NewStudentProfileRepo 创建 StudentProfileRepository 实例
func NewStudentProfileRepo(db *gorm.DB) StudentProfileRepository {
	return &studentProfileRepo{db: db}
}

func (r *studentProfileRepo) Create(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *studentProfileRepo) GetByID(ctx context.Context, id string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("student_profile_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("Proctor").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentProfileRepo) GetByStudentID(ctx context.Context, studentID string) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *studentProfileRepo) ListByProctor(ctx context.Context, proctorProfileID string) ([]model.StudentProfile, error) {
	var profiles []model.StudentProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("proctor_id = ?", proctorProfileID).
		Order("student_id ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *studentProfileRepo) Update(ctx context.Context, profile *model.StudentProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
