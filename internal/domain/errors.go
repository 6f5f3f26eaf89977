package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("record not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// 字段级校验错误码
const (
	CodeBlank     = "blank"
	CodeTooLong   = "too_long"
	CodeTooShort  = "too_short"
	CodeBadFormat = "bad_format"
	CodeMismatch  = "mismatch"
	CodeNotUnique = "not_unique"
)

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors 可携带多个字段错误，作为普通 error 返回给调用方展示
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(v))
	for i, fe := range v {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// On 返回指定字段的错误码列表（测试和调用方定位用）
func (v ValidationErrors) On(field string) []string {
	var codes []string
	for _, fe := range v {
		if fe.Field == field {
			codes = append(codes, fe.Code)
		}
	}
	return codes
}

func (v ValidationErrors) Has(field, code string) bool {
	for _, fe := range v {
		if fe.Field == field && fe.Code == code {
			return true
		}
	}
	return false
}

// AsValidation 判断 err 是否为校验错误
func AsValidation(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
