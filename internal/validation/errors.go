package validation

import (
	"fmt"
	"strings"
)

// Violation 描述一个字段的校验失败原因。
type Violation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 列出请求体违反模式的所有字段。
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Reason)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s", v.Field, v.Reason))
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Schema, strings.Join(parts, "; "))
}
