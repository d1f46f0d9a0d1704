package mdpanel

import (
	"github.com/riverfjs/mdpanel/internal/format"
)

// Formatter kinds.
const (
	FormatJSON   = format.KindJSON
	FormatIndent = format.KindIndent
)

// Format 格式化代码文本
//
// 以 { 或 [ 开头的文本按 JSON 解析并以两个空格缩进；其他文本按括号深度重新缩进。
// JSON 解析失败时返回原文本和 *FormatError。
func Format(src string) (string, error) {
	out, _, err := format.Format(src)
	if err != nil {
		return src, err
	}
	return out, nil
}

// DetectFormat reports which formatter Format would use for src.
func DetectFormat(src string) FormatKind {
	return format.Detect(src)
}
