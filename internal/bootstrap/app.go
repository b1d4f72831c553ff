package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	// --- 导入内部包 ---
	httpHandler "content-hub/internal/handler/http"
	gormpersistence "content-hub/internal/infra/persistence/gorm"
	"content-hub/internal/infra/setup"
	"content-hub/internal/service"
)

// shutdownTimeout 是等待进行中请求完成的最长时间
const shutdownTimeout = 10 * time.Second

// App 结构体包含应用的所有组件和配置
type App struct {
	Config     *Config
	Log        *logrus.Logger
	DB         *gorm.DB
	HttpServer *http.Server
}

// NewLogger 根据配置创建 logger，生产环境输出 JSON
func NewLogger(cfg *Config) *logrus.Logger {
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	return log
}

// NewApp 创建并初始化应用的所有组件
func NewApp() (*App, error) {
	// 1. 加载配置
	cfg, err := LoadConfig()
	if err != nil {
		// 使用标准输出记录启动时错误，因为 logger 还未配置
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. 初始化 Logger
	log := NewLogger(cfg)
	// 服务层和 Handler 使用全局 logrus，与 App logger 保持一致
	logrus.SetFormatter(log.Formatter)
	logrus.SetLevel(log.GetLevel())
	log.Infof("Logger initialized (Level: %s)", log.GetLevel().String())

	// 3. 初始化数据库
	log.Info("Initializing database...")
	db, err := setup.InitDB(cfg.DB())
	if err != nil {
		return nil, fmt.Errorf("failed to init DB: %w", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		_ = setup.CloseDB(db)
		return nil, fmt.Errorf("failed to migrate DB: %w", err)
	}
	log.Info("Database initialized and migrated")

	// 4. 初始化 Repositories / Services / Handlers
	accountRepo := gormpersistence.NewGormAccountRepository(db)
	postRepo := gormpersistence.NewGormPostRepository(db)
	accountService := service.NewAccountService(accountRepo)
	postService := service.NewPostService(postRepo)
	accountHandler := httpHandler.NewAccountHandler(accountService)
	postHandler := httpHandler.NewPostHandler(postService)
	log.Info("Handlers initialized")

	// 5. 初始化指标和路由
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := NewRouter(log, cfg, registry, accountHandler, postHandler)
	log.Info("Router setup complete")

	// 6. 初始化 HTTP Server
	httpServer := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		Config:     cfg,
		Log:        log,
		DB:         db,
		HttpServer: httpServer,
	}, nil
}

// Start 在后台启动 HTTP 服务器
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown 优雅地关闭应用：先停止接收请求，再关闭连接池
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if err := setup.CloseDB(a.DB); err != nil {
		a.Log.Errorf("Error closing database connection: %v", err)
	} else {
		a.Log.Info("Database connection closed.")
	}

	a.Log.Info("Application shutdown complete.")
}
