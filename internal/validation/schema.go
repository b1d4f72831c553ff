// Package validation 按声明式的字段模式校验入站 JSON 请求体。
//
// 模式是显式的类型化结构 (字段名、类型、是否必填、约束列表)，
// Validate 是从 (模式, 原始请求体) 到类型化数据或字段违规列表的纯函数。
package validation

import "fmt"

// FieldType 是字段在 JSON 中期望的类型。
type FieldType int

const (
	TypeString FieldType = iota
	TypeBoolean
	TypeInteger
)

// phrase 返回带冠词的类型名，用于违规原因
func (t FieldType) phrase() string {
	if t == TypeInteger {
		return "an integer"
	}
	return "a " + t.String()
}

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	default:
		return "unknown"
	}
}

// ConstraintKind 枚举支持的约束。
type ConstraintKind int

const (
	ConstraintMinLength ConstraintKind = iota
	ConstraintEmail
	ConstraintPositive
)

// Constraint 是字段值在类型检查通过后必须满足的条件。
type Constraint struct {
	Kind  ConstraintKind
	Param int
}

// MinLength 要求字符串至少包含 n 个字符。
func MinLength(n int) Constraint { return Constraint{Kind: ConstraintMinLength, Param: n} }

// Email 要求字符串是合法的邮箱地址。
func Email() Constraint { return Constraint{Kind: ConstraintEmail} }

// Positive 要求整数大于 0。
func Positive() Constraint { return Constraint{Kind: ConstraintPositive} }

// tag 返回 go-playground/validator 的校验标签
func (c Constraint) tag() string {
	switch c.Kind {
	case ConstraintMinLength:
		return fmt.Sprintf("min=%d", c.Param)
	case ConstraintEmail:
		return "email"
	case ConstraintPositive:
		return "gt=0"
	default:
		return ""
	}
}

func (c Constraint) reason() string {
	switch c.Kind {
	case ConstraintMinLength:
		if c.Param == 1 {
			return "must not be empty"
		}
		return fmt.Sprintf("must be at least %d characters", c.Param)
	case ConstraintEmail:
		return "must be a valid email address"
	case ConstraintPositive:
		return "must be a positive integer"
	default:
		return "is invalid"
	}
}

// Field 描述模式中的一个字段。
type Field struct {
	Name        string
	Aliases     []string // 兼容的旧字段名，Name 同时出现时以 Name 为准
	Type        FieldType
	Required    bool
	Constraints []Constraint
}

// Schema 是某个资源某个操作的请求体模式。
type Schema struct {
	Name   string
	Fields []Field
}
