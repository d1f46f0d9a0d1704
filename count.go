package mdpanel

import (
	"github.com/riverfjs/mdpanel/internal/stats"
)

// CharLevel grades a character count for the panel's counter colour.
type CharLevel string

const (
	CharLevelOK   CharLevel = "ok"
	CharLevelWarn CharLevel = "warn"
	CharLevelHigh CharLevel = "high"
)

// 字符数阈值（UTF-16 code units）
const (
	CharWarnThreshold = 2000
	CharHighThreshold = 5000
)

// UTF16Len 计算字符串的 UTF-16 长度
//
// 统计面板中的字符数沿用 UTF-16 code units 的口径。
func UTF16Len(s string) int {
	return stats.UTF16Len(s)
}

// LevelFor returns the counter level for n characters.
func LevelFor(n int) CharLevel {
	switch {
	case n > CharHighThreshold:
		return CharLevelHigh
	case n > CharWarnThreshold:
		return CharLevelWarn
	default:
		return CharLevelOK
	}
}
