package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Eltons-gt/semester-schedule-manager-app/internal/dto"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/service"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/response"
)

// CourseHandler 课程模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// ListCourses 查询当前用户的全部课程
// GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.courseSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateCourse 创建课程
// POST /api/v1/courses
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), &req, userID)
	if err != nil {
		handleCourseError(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateCourse 全量更新课程
// PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")

	var req dto.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.courseSvc.Update(c.Request.Context(), id, &req, userID)
	if err != nil {
		handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// DeleteCourse 删除课程
// DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.courseSvc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleCourseError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleCourseError 将课程模块的业务错误映射为 HTTP 响应
func handleCourseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, 12001, "课程不存在")
	case errors.Is(err, service.ErrCourseNameRequired):
		response.BadRequest(c, 12002, "课程名称不能为空")
	case errors.Is(err, service.ErrCourseInstructorRequired):
		response.BadRequest(c, 12003, "授课教师不能为空")
	case errors.Is(err, service.ErrCourseDaysRequired):
		response.BadRequest(c, 12004, "至少选择一个上课日")
	case errors.Is(err, service.ErrCourseDayUnknown):
		response.BadRequest(c, 12005, "上课日不合法")
	case errors.Is(err, service.ErrCourseTimeMalformed):
		response.BadRequest(c, 12006, "时刻格式不合法，应为 HH:MM")
	case errors.Is(err, service.ErrCourseTimeOrder):
		response.BadRequest(c, 12007, "开始时刻必须早于结束时刻")
	default:
		response.InternalError(c)
	}
}
