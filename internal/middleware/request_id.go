package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 是请求 ID 的 HTTP 头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey 是请求 ID 在 Gin Context 中的键
	RequestIDKey = "request_id"
)

// maxRequestIDLen 限制客户端传入的请求 ID 长度
const maxRequestIDLen = 64

// RequestID 返回一个 Gin 中间件，为每个请求分配请求 ID。
// 客户端已携带 X-Request-ID 时沿用该值，否则生成 UUID。
// 请求 ID 写入响应头，并存入 Context 供日志使用。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID 返回当前请求的 ID，未设置时返回空字符串。
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
