package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeCategory 规范化分类名：去掉首尾空白，首字母大写，其余小写
// 规范化后的结果作为分类去重的键，例如 "city hall" -> "City hall"
func NormalizeCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
