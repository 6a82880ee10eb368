package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eltons-gt/semester-schedule-manager-app/config"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/api/handler"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/api/middleware"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/jwt"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
//
// 两种运行模式：
//   - postgres: 完整的多用户 API，课程/视图/导出路由挂 JWT 认证
//   - file:     单用户本地模式，无认证路由，user_id 固定注入
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")

	var authed *gin.RouterGroup
	if cfg.Storage.IsLocal() {
		authed = v1.Group("")
		authed.Use(middleware.LocalUser())
	} else {
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}

		authed = v1.Group("")
		authed.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authed.POST("/auth/logout", h.Auth.Logout)
			authed.GET("/auth/me", h.Auth.GetCurrentUser)
			authed.PUT("/auth/password", h.Auth.ChangePassword)
		}
	}

	// 课程模块
	courses := authed.Group("/courses")
	{
		courses.GET("", h.Course.ListCourses)
		courses.POST("", h.Course.CreateCourse)
		courses.PUT("/:id", h.Course.UpdateCourse)
		courses.DELETE("/:id", h.Course.DeleteCourse)
	}

	// 时间表视图模块
	timetable := authed.Group("/timetable")
	{
		timetable.GET("/today", h.Timetable.GetToday)
		timetable.GET("/week", h.Timetable.GetWeek)
	}

	// 导出模块
	export := authed.Group("/export")
	{
		export.GET("/excel", h.Export.ExportExcel)
		export.GET("/ics", h.Export.ExportICS)
	}

	return r
}
