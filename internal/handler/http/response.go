package http

import (
	"net/http"

	"content-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

// MessageResponse 是删除等操作成功后的响应体
type MessageResponse struct {
	Message string `json:"message"`
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// ValidationErrorResponse 返回 400，并附带每个违规字段的原因
func ValidationErrorResponse(c *gin.Context, err *validation.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "violations": err.Violations})
}

func SuccessResponse(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}
