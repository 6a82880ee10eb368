package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/service"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/response"
)

// TimetableHandler 时间表视图 HTTP 处理器
type TimetableHandler struct {
	svc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler 实例
func NewTimetableHandler(svc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{svc: svc}
}

// GetToday 今日视图
// GET /api/v1/timetable/today
func (h *TimetableHandler) GetToday(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.GetToday(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// GetWeek 周视图
// GET /api/v1/timetable/week
func (h *TimetableHandler) GetWeek(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.svc.GetWeek(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
