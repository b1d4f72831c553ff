package validation

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/go-playground/validator/v10"
)

// checker 只用于单值校验 (Var)，不做结构体反射
var checker = validator.New()

// Data 是通过校验的请求体，按字段的规范名索引。
// 只包含请求中出现的字段，缺省字段不存在于 Data 中。
type Data struct {
	values map[string]any
}

// Has 报告字段是否出现在请求体中。
func (d Data) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// String 返回字符串字段的值。
func (d Data) String(name string) (string, bool) {
	v, ok := d.values[name].(string)
	return v, ok
}

// Bool 返回布尔字段的值。
func (d Data) Bool(name string) (bool, bool) {
	v, ok := d.values[name].(bool)
	return v, ok
}

// Int 返回整数字段的值。
func (d Data) Int(name string) (int64, bool) {
	v, ok := d.values[name].(int64)
	return v, ok
}

// Len 返回出现的字段数量。
func (d Data) Len() int { return len(d.values) }

// Validate 按 schema 校验原始 JSON 请求体。
// 成功时返回类型化数据；失败时返回 *ValidationError，其中列出所有违规字段。
// 未在模式中声明的字段会被忽略。
func Validate(schema Schema, raw []byte) (Data, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return Data{}, &ValidationError{
			Schema:     schema.Name,
			Violations: []Violation{{Reason: "request body must be a JSON object"}},
		}
	}

	data := Data{values: make(map[string]any, len(schema.Fields))}
	var violations []Violation

	for _, field := range schema.Fields {
		rawValue, present := lookup(obj, field)
		if !present {
			if field.Required {
				violations = append(violations, Violation{Field: field.Name, Reason: "is required"})
			}
			continue
		}

		value, ok := decode(field.Type, rawValue)
		if !ok {
			violations = append(violations, Violation{Field: field.Name, Reason: "must be " + field.Type.phrase()})
			continue
		}

		if reason, ok := check(field, value); !ok {
			violations = append(violations, Violation{Field: field.Name, Reason: reason})
			continue
		}
		data.values[field.Name] = value
	}

	if len(violations) > 0 {
		return Data{}, &ValidationError{Schema: schema.Name, Violations: violations}
	}
	return data, nil
}

func lookup(obj map[string]json.RawMessage, field Field) (json.RawMessage, bool) {
	if v, ok := obj[field.Name]; ok {
		return v, true
	}
	for _, alias := range field.Aliases {
		if v, ok := obj[alias]; ok {
			return v, true
		}
	}
	return nil, false
}

// decode 将原始值解码为字段类型对应的 Go 值。JSON null 视为类型不匹配。
func decode(t FieldType, raw json.RawMessage) (any, bool) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	switch t {
	case TypeString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, false
		}
		return s, true
	case TypeBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, false
		}
		return b, true
	case TypeInteger:
		// 解码到 any 才能区分 JSON 数字与 "3" 这类带引号的数字字符串
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, false
		}
		n, ok := v.(json.Number)
		if !ok {
			return nil, false
		}
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// 1.0 这类整值浮点数也按整数接受
		f, err := n.Float64()
		if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return nil, false
		}
		return int64(f), true
	default:
		return nil, false
	}
}

func check(field Field, value any) (string, bool) {
	for _, c := range field.Constraints {
		if err := checker.Var(value, c.tag()); err != nil {
			return c.reason(), false
		}
	}
	return "", true
}
