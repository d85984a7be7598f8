package handler

import (
	"github.com/manmith07/Proctor-Student-Management-System/config"
	"github.com/manmith07/Proctor-Student-Management-System/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Student *StudentHandler
	Proctor *ProctorHandler
	Query   *QueryHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(cfg, svc.Auth),
		Student: NewStudentHandler(svc.Student, svc.Query),
		Proctor: NewProctorHandler(svc.Proctor, svc.Query),
		Query:   NewQueryHandler(svc.Query),
	}
}
