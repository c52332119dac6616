package util

import (
	"strconv"
	"strings"
)

// ParseID 解析正整数 ID，超出 32 位范围视为无效
func ParseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// FormatMarks 整数分数不带小数位，其余保留原精度
func FormatMarks(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EmailLocalPart 返回邮箱 @ 之前的部分，没有 @ 时原样返回
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
