package utils

import (
	"regexp"
	"strings"
)

var (
	idPattern         = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	businessNoPattern = regexp.MustCompile(`^\d{8}-[0-9A-Z]{4}$`)
)

// ValidateApplicationID 验证申请 ID 格式
func ValidateApplicationID(id string) error {
	// 1. 检查是否为空
	if id == "" {
		return ErrEmptyID
	}

	// 2. 检查长度（最大 64 字符）
	if len(id) > 64 {
		return ErrIDTooLong
	}

	// 3. 检查格式（只允许字母、数字、连字符、下划线）
	if !idPattern.MatchString(id) {
		return ErrInvalidIDFormat
	}

	return nil
}

// IsBusinessNo 判断是否为合法业务编号
func IsBusinessNo(no string) bool {
	return businessNoPattern.MatchString(no)
}

// IsBlank 判断字符串是否为空或仅包含空白字符
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// 错误定义
var (
	ErrEmptyID         = &ValidationError{Code: "EMPTY_ID", Message: "id cannot be empty"}
	ErrInvalidIDFormat = &ValidationError{Code: "INVALID_ID_FORMAT", Message: "id contains invalid characters"}
	ErrIDTooLong       = &ValidationError{Code: "ID_TOO_LONG", Message: "id exceeds maximum length"}
)

// ValidationError 验证错误
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
