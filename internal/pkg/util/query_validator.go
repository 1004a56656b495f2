package util

import (
	"Pulseboard/internal/pkg/consts"
	"regexp"
	"strings"
	"time"
)

var (
	plainParamRegex = regexp.MustCompile(`^[A-Za-z0-9_\- ]+$`)
	dateParamRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// SanitizeString 规范化来自请求的字符串参数。
// 给定白名单时必须与其中某项完全一致（大小写敏感），否则返回 nil；
// 未给白名单时只放行 [A-Za-z0-9_\- ]+ 字符集。原始输入永不下传。
func SanitizeString(raw string, allowed []string) *string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	if allowed != nil {
		for _, item := range allowed {
			if value == item {
				return &value
			}
		}
		return nil
	}

	if !plainParamRegex.MatchString(value) {
		return nil
	}
	return &value
}

// SanitizeDate 校验日期参数。必须形如 YYYY-MM-DD（月日都是两位）且能解析为合法日期，否则返回 nil
func SanitizeDate(raw string) *string {
	value := strings.TrimSpace(raw)
	if !dateParamRegex.MatchString(value) {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return nil
	}
	return &value
}

// SanitizeSortOrder 只放行字面量 asc / desc，其余一律回退为默认方向
func SanitizeSortOrder(raw string) string {
	switch raw {
	case "asc", "desc":
		return raw
	default:
		return consts.DefaultSortOrder
	}
}
