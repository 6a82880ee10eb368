package handler

import "github.com/Eltons-gt/semester-schedule-manager-app/internal/service"

// Handler 所有 Handler 的聚合入口
//
// 本地文件模式下 Auth 为 nil，路由层不会挂认证相关路由。
type Handler struct {
	Auth      *AuthHandler
	Course    *CourseHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	h := &Handler{
		Course:    NewCourseHandler(svc.Course),
		Timetable: NewTimetableHandler(svc.Timetable),
		Export:    NewExportHandler(svc.Export),
	}
	if svc.Auth != nil {
		h.Auth = NewAuthHandler(svc.Auth)
	}
	return h
}
