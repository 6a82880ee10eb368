package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Eltons-gt/semester-schedule-manager-app/config"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/api/handler"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/api/router"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/repository"
	"github.com/Eltons-gt/semester-schedule-manager-app/internal/service"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/database"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/jwt"
	applogger "github.com/Eltons-gt/semester-schedule-manager-app/pkg/logger"
	"github.com/Eltons-gt/semester-schedule-manager-app/pkg/redis"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("storage", cfg.Storage.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 按存储模式组装依赖
	var (
		repo   *repository.Repository
		jwtMgr *jwt.Manager
		rdb    *redis.Client
		dbDone func()
	)

	if cfg.Storage.IsLocal() {
		// 本地文件模式：单用户，无数据库、无 Redis、无认证
		repo, err = repository.NewFileRepository(cfg.Storage.Path)
		if err != nil {
			logger.Fatal("打开本地课程文件失败", zap.Error(err))
		}
		logger.Info("本地文件存储已就绪", zap.String("path", cfg.Storage.Path))
	} else {
		// 3.1 连接数据库
		db, err := database.NewDB(&cfg.Database, logger)
		if err != nil {
			logger.Fatal("数据库连接失败", zap.Error(err))
		}
		logger.Info("数据库连接成功")

		// 3.2 执行数据库迁移
		sqlDB, err := db.DB()
		if err != nil {
			logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
		}
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			logger.Fatal("数据库迁移失败", zap.Error(err))
		}

		// 3.3 连接 Redis（可选：连接失败时降级运行，不中断启动）
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 连接失败，Token 黑名单功能将不可用", zap.Error(err))
			rdb = nil
		}

		// 3.4 初始化 JWT 管理器
		jwtMgr = jwt.NewManager(&cfg.Auth)

		repo = repository.NewRepository(db)
		dbDone = func() {
			if closeDB, _ := db.DB(); closeDB != nil {
				closeDB.Close()
			}
		}
	}

	// 4. 依赖注入: Repository → Service → Handler
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 5. 初始化路由
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	if dbDone != nil {
		dbDone()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("服务器已关闭")
}
