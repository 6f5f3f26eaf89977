package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"go-micropost/internal/domain"
)

const (
	NameMaxLen     = 50
	EmailMaxLen    = 100
	PasswordMinLen = 8
	PasswordMaxLen = 50
	ContentMaxLen  = 140
)

// 保守的地址形状：local@domain.tld，域名标签不含下划线、
// 不允许连续点，末级标签只能是字母
var emailPattern = regexp.MustCompile(`(?i)^[\w+\-.]+@[a-z\d-]+(\.[a-z\d-]+)*\.[a-z]+$`)

func NormalizeEmail(email string) string { return strings.ToLower(email) }

// 各规则相互独立，可同时命中多条
func ValidateName(name string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Code: domain.CodeBlank, Message: "can't be blank"})
	}
	if utf8.RuneCountInString(name) > NameMaxLen {
		errs = append(errs, domain.FieldError{Field: "name", Code: domain.CodeTooLong, Message: "is too long (maximum is 50 characters)"})
	}
	return errs
}

func ValidateEmail(email string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Code: domain.CodeBlank, Message: "can't be blank"})
		return errs
	}
	if utf8.RuneCountInString(email) > EmailMaxLen {
		errs = append(errs, domain.FieldError{Field: "email", Code: domain.CodeTooLong, Message: "is too long (maximum is 100 characters)"})
	}
	if !emailPattern.MatchString(email) {
		errs = append(errs, domain.FieldError{Field: "email", Code: domain.CodeBadFormat, Message: "is invalid"})
	}
	return errs
}

// ValidatePassword 仅在设置/修改密码时调用
func ValidatePassword(password, confirmation string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(password) == "" {
		errs = append(errs, domain.FieldError{Field: "password", Code: domain.CodeBlank, Message: "can't be blank"})
	}
	if utf8.RuneCountInString(password) < PasswordMinLen {
		errs = append(errs, domain.FieldError{Field: "password", Code: domain.CodeTooShort, Message: "is too short (minimum is 8 characters)"})
	}
	if utf8.RuneCountInString(password) > PasswordMaxLen {
		errs = append(errs, domain.FieldError{Field: "password", Code: domain.CodeTooLong, Message: "is too long (maximum is 50 characters)"})
	}
	if password != confirmation {
		errs = append(errs, domain.FieldError{Field: "password_confirmation", Code: domain.CodeMismatch, Message: "doesn't match password"})
	}
	return errs
}

func ValidateContent(content string) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if strings.TrimSpace(content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Code: domain.CodeBlank, Message: "can't be blank"})
	}
	if utf8.RuneCountInString(content) > ContentMaxLen {
		errs = append(errs, domain.FieldError{Field: "content", Code: domain.CodeTooLong, Message: "is too long (maximum is 140 characters)"})
	}
	return errs
}
