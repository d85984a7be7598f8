package service

import (
	"go.uber.org/zap"

	"github.com/manmith07/Proctor-Student-Management-System/config"
	"github.com/manmith07/Proctor-Student-Management-System/internal/repository"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/jwt"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/mailer"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Student StudentService
	Proctor ProctorService
	Query   QueryService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	mail mailer.Mailer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, mail, logger),
		Student: NewStudentService(repo, logger),
		Proctor: NewProctorService(repo, logger),
		Query:   NewQueryService(repo, logger),
	}
}
