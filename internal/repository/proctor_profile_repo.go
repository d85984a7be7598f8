package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// ProctorProfileRepository 导师档案数据访问接口
type ProctorProfileRepository interface {
	Create(ctx context.Context, profile *model.ProctorProfile) error
	GetByID(ctx context.Context, id string) (*model.ProctorProfile, error)
	GetByUserID(ctx context.Context, userID string) (*model.ProctorProfile, error)
	GetByFacultyID(ctx context.Context, facultyID string) (*model.ProctorProfile, error)
}

// proctorProfileRepo ProctorProfileRepository 的 GORM 实现
type proctorProfileRepo struct {
	db *gorm.DB
}

// NewProctorProfileRepo 创建 ProctorProfileRepository 实例
func NewProctorProfileRepo(db *gorm.DB) ProctorProfileRepository {
	return &proctorProfileRepo{db: db}
}

func (r *proctorProfileRepo) Create(ctx context.Context, profile *model.ProctorProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *proctorProfileRepo) GetByID(ctx context.Context, id string) (*model.ProctorProfile, error) {
	var profile model.ProctorProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("proctor_profile_id = ?", id).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *proctorProfileRepo) GetByUserID(ctx context.Context, userID string) (*model.ProctorProfile, error) {
	var profile model.ProctorProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *proctorProfileRepo) GetByFacultyID(ctx context.Context, facultyID string) (*model.ProctorProfile, error) {
	var profile model.ProctorProfile
	err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
