package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/manmith07/Proctor-Student-Management-System/internal/dto"
	"github.com/manmith07/Proctor-Student-Management-System/internal/service"
	"github.com/manmith07/Proctor-Student-Management-System/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
	querySvc   service.QueryService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService, querySvc service.QueryService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc, querySvc: querySvc}
}

// GetAttendance 考勤记录与出勤率
// GET /api/v1/student/attendance
func (h *StudentHandler) GetAttendance(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.GetAttendance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStudentProfileNotFound) {
			response.NotFound(c, 12001, "学生档案不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetAcademic 成绩记录与 CGPA
// GET /api/v1/student/academic
func (h *StudentHandler) GetAcademic(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.GetAcademic(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrStudentProfileNotFound) {
			response.NotFound(c, 12001, "学生档案不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListQueries 我的工单列表
// GET /api/v1/student/queries
func (h *StudentHandler) ListQueries(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.querySvc.ListByStudent(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateQuery 向已分配导师提交工单
// POST /api/v1/student/queries
func (h *StudentHandler) CreateQuery(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, 10001, "参数校验失败", err.Error())
		return
	}

	result, err := h.querySvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentProfileNotFound):
			response.NotFound(c, 12001, "学生档案不存在")
		case errors.Is(err, service.ErrNoProctorAssigned):
			response.BadRequest(c, 14002, "尚未分配导师，无法提交工单")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}
