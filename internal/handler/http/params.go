package http

import (
	"fmt"
	"strconv"

	"content-hub/internal/validation"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径参数 :id。只接受正整数，失败时返回 invalid 并且不访问存储。
func parseID(c *gin.Context, invalid error) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid
	}
	return id, nil
}

// bindBody 读取原始请求体并按 schema 校验。
func bindBody(c *gin.Context, schema validation.Schema) (validation.Data, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return validation.Data{}, fmt.Errorf("read request body: %w", err)
	}
	return validation.Validate(schema, raw)
}

// optionalString 返回字段的指针，字段未出现时返回 nil
func optionalString(d validation.Data, name string) *string {
	if v, ok := d.String(name); ok {
		return &v
	}
	return nil
}

func optionalBool(d validation.Data, name string) *bool {
	if v, ok := d.Bool(name); ok {
		return &v
	}
	return nil
}
