package http

import (
	"errors"
	"net/http"

	"content-hub/internal/middleware"
	"content-hub/internal/service"
	"content-hub/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// internalErrorMessage 是所有未分类错误返回给客户端的消息
const internalErrorMessage = "An unexpected error occurred"

// HandleServiceError 将服务层错误映射为 HTTP 响应。
// 写响应之前记录 resource、operation 和 request_id。
func HandleServiceError(c *gin.Context, resource, operation string, err error) {
	logCtx := logrus.WithFields(logrus.Fields{
		"resource":   resource,
		"operation":  operation,
		"request_id": middleware.GetRequestID(c),
	}).WithError(err)

	var vErr *validation.ValidationError
	if errors.As(err, &vErr) {
		logCtx.Warn("Handler: Request failed validation")
		ValidationErrorResponse(c, vErr)
		return
	}

	status, message := classify(err)
	if status == http.StatusInternalServerError {
		logCtx.Error("Handler: Unhandled internal server error")
	} else {
		logCtx.WithField("status", status).Warn("Handler: Request rejected")
	}
	ErrorResponse(c, status, message)
}

// classify 返回错误类别对应的状态码和对外消息。
func classify(err error) (int, string) {
	var status int
	switch {
	case errors.Is(err, service.ErrInvalidID):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidReference):
		status = http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError, internalErrorMessage
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return status, svcErr.Message
	}
	return status, err.Error()
}
