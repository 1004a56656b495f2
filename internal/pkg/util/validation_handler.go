package util

import (
	"regexp"
	"unicode/utf8"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	PasswordMinLen = 6
	PasswordMaxLen = 128
)

// ValidateEmail 校验注册邮箱格式
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword 校验密码长度在 [6, 128] 区间，按字符数而不是字节数计
func ValidatePassword(password string) bool {
	length := utf8.RuneCountInString(password)
	return length >= PasswordMinLen && length <= PasswordMaxLen
}
