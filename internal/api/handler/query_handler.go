package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/service"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/response"
)

// QueryHandler 工单共享入口 HTTP 处理器（当事双方均可访问）
type QueryHandler struct {
	querySvc service.QueryService
}

// NewQueryHandler 创建 QueryHandler
func NewQueryHandler(querySvc service.QueryService) *QueryHandler {
	return &QueryHandler{querySvc: querySvc}
}

// Get 工单详情（含按时间升序的回复）
// GET /api/v1/queries/:id
func (h *QueryHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.querySvc.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQueryNotFound):
			response.NotFound(c, 14001, "工单不存在")
		case errors.Is(err, service.ErrNotQueryParty):
			response.Forbidden(c, 14003, "您不是该工单的当事人")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Respond 任一当事方追加回复（不触发状态流转）
// POST /api/v1/queries/:id/respond
func (h *QueryHandler) Respond(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.RespondQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.querySvc.Respond(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQueryNotFound):
			response.NotFound(c, 14001, "工单不存在")
		case errors.Is(err, service.ErrNotQueryParty):
			response.Forbidden(c, 14003, "您不是该工单的当事人")
		case errors.Is(err, service.ErrQueryClosed):
			response.Conflict(c, 14005, "工单已关闭，不再接受回复")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
