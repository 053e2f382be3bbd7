package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidMobileNumberFormat = errors.New("无效的手机号码格式，必须是10位数字")
	ErrInvalidEmailFormat        = errors.New("无效的邮箱格式")
	ErrInvalidDateFormat         = errors.New("日期格式无效，请使用 DD-MM-YYYY 或类似格式")
)

// IsNumeric 检查字符串是否只包含数字
func IsNumeric(s string) bool {
	if s == "" {
		return false // 空字符串不视为数字
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ValidateMobileNumber 校验手机号码格式。
// 如果有效，返回 nil；否则返回具体的错误。
func ValidateMobileNumber(mobile string) error {
	trimmed := strings.TrimSpace(mobile)
	if len(trimmed) != 10 {
		return ErrInvalidMobileNumberFormat
	}
	if !IsNumeric(trimmed) {
		return ErrInvalidMobileNumberFormat
	}
	return nil
}

// ValidateEmailFormat 校验邮箱格式。
func ValidateEmailFormat(email string) bool {
	trimmedEmail := strings.TrimSpace(email)
	if trimmedEmail == "" {
		return false
	}
	// 一个常用且相对简单的邮箱正则
	match, _ := regexp.MatchString(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`, trimmedEmail)
	return match
}

// 按优先级排列的日期格式。日在前的格式优先，与批量导入的数据来源保持一致。
var dateLayouts = []string{
	"02-01-2006", // DD-MM-YYYY
	"01-02-2006", // MM-DD-YYYY
	"2006-01-02", // YYYY-MM-DD
	"01/02/2006", // MM/DD/YYYY
	"2006/01/02", // YYYY/MM/DD
	"1/2/06",     // M/D/YY
	"1/2/2006",   // M/D/YYYY
	"01/02/06",   // MM/DD/YY
}

// ParseDate 解析日期字符串，按 dateLayouts 的顺序逐一尝试。
// 注意顺序有语义：像 04-05-2024 这样的歧义输入按第一个命中的格式解释。
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDateFormat // 空日期字符串视为无效
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed, nil // 解析成功，立即返回
		}
	}
	// 所有格式尝试完毕后仍失败
	return time.Time{}, ErrInvalidDateFormat
}
