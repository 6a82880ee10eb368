package service

import (
	"go.uber.org/zap"

	"github.com/Eltons-gt/semester-schedule-manager-app/config"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/jwt"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/redis"
)

// Service 所有 Service 的聚合入口
//
// 本地文件模式下没有用户体系，Auth 为 nil，路由层不会挂认证相关路由。
type Service struct {
	Auth      AuthService
	Course    CourseService
	Timetable TimetableService
	Export    ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	svc := &Service{
		Course:    NewCourseService(repo, logger),
		Timetable: NewTimetableService(repo, logger),
		Export:    NewExportService(repo, logger),
	}
	if jwtMgr != nil {
		svc.Auth = NewAuthService(cfg, repo, jwtMgr, rdb, logger)
	}
	return svc
}
