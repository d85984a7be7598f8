package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
)

// QueryRepository 答疑工单数据访问接口
type QueryRepository interface {
	Create(ctx context.Context, query *model.Query) error
	GetByID(ctx context.Context, id string) (*model.Query, error)
	ListByStudent(ctx context.Context, studentUserID string) ([]model.Query, error)
	ListByProctor(ctx context.Context, proctorUserID string, status *model.QueryStatus, offset, limit int) ([]model.Query, int64, error)
	UpdateStatus(ctx context.Context, id string, status model.QueryStatus) error
	AddResponse(ctx context.Context, resp *model.QueryResponse) error
	ListResponses(ctx context.Context, queryID string) ([]model.QueryResponse, error)
}

// queryRepo QueryRepository 的 GORM 实现
type queryRepo struct {
	db *gorm.DB
}

// NewQueryRepo 创建 QueryRepository 实例
func NewQueryRepo(db *gorm.DB) QueryRepository {
	return &queryRepo{db: db}
}

func (r *queryRepo) Create(ctx context.Context, query *model.Query) error {
	return r.db.WithContext(ctx).Create(query).Error
}

func (r *queryRepo) GetByID(ctx context.Context, id string) (*model.Query, error) {
	var query model.Query
	err := r.db.WithContext(ctx).
		Where("query_id = ?", id).
		First(&query).Error
	if err != nil {
		return nil, err
	}
	return &query, nil
}

func (r *queryRepo) ListByStudent(ctx context.Context, studentUserID string) ([]model.Query, error) {
	var queries []model.Query
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentUserID).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *queryRepo) ListByProctor(ctx context.Context, proctorUserID string, status *model.QueryStatus, offset, limit int) ([]model.Query, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Query{}).Where("proctor_id = ?", proctorUserID)
	if status != nil {
		db = db.Where("status = ?", *status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var queries []model.Query
	err := db.Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&queries).Error
	if err != nil {
		return nil, 0, err
	}
	return queries, total, nil
}

func (r *queryRepo) UpdateStatus(ctx context.Context, id string, status model.QueryStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Query{}).
		Where("query_id = ?", id).
		Update("status", status).Error
}

func (r *queryRepo) AddResponse(ctx context.Context, resp *model.QueryResponse) error {
	return r.db.WithContext(ctx).Create(resp).Error
}

func (r *queryRepo) ListResponses(ctx context.Context, queryID string) ([]model.QueryResponse, error) {
	var responses []model.QueryResponse
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("query_id = ?", queryID).
		Order("created_at ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
