package bootstrap

import (
	"net/http"
	"time"

	httpHandler "content-hub/internal/handler/http"
	"content-hub/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// apiVersion 出现在根路径的响应中
const apiVersion = "1.0.0"

// NewRouter 组装中间件和路由
func NewRouter(log *logrus.Logger, cfg *Config, registry *prometheus.Registry, accountHandler *httpHandler.AccountHandler, postHandler *httpHandler.PostHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(LoggerMiddleware(log)) // 使用 App 的 logger
	router.Use(middleware.NewMetrics("content_hub", registry).Handler())
	router.Use(CORSMiddleware(cfg.CORSAllowedOrigin))

	// --- 设置路由 ---
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "content-hub API server",
			"version": apiVersion,
			"endpoints": gin.H{
				"accounts": "/api/accounts",
				"posts":    "/api/posts",
			},
		})
	})
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	accountHandler.RegisterRoutes(api.Group("/accounts"))
	postHandler.RegisterRoutes(api.Group("/posts"))

	return router
}

// CORSMiddleware 设置跨域响应头，预检请求直接返回 204
func CORSMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware 创建一个 Gin 中间件用于记录请求日志
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next() // 处理请求
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
			"request_id":  middleware.GetRequestID(c),
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
			return
		}
		// 区分状态码记录日志级别
		switch {
		case statusCode >= 500:
			entry.Error("Server error")
		case statusCode >= 400:
			entry.Warn("Client error")
		default:
			entry.Info("Request handled")
		}
	}
}
