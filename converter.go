package mdpanel

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/mdpanel/internal/converter"
	"github.com/riverfjs/mdpanel/internal/highlight"
	"github.com/riverfjs/mdpanel/internal/parser"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/types"
)

// Convert 将 Markdown 转换为带内联样式的 markup
//
// 转换从不失败：无法识别的语法原样输出。
//
// 参数:
//   - markdown: 原始 Markdown 文本，调用方持有，不会被修改
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: 渲染后的 markup
func Convert(markdown string, config *RenderConfig) string {
	markup, _ := ConvertWithTable(markdown, config)
	return markup
}

// ConvertWithTable 将 Markdown 转换为 markup，并返回本次转换的占位符表
//
// 类似 Convert()，但还返回被保护的代码块和引用块，供代码文件提取和测试使用
//
// 参数:
//   - markdown: 原始 Markdown 文本
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: 渲染后的 markup
//   - *PlaceholderTable: 代码块/引用块表，所有条目均已还原
func ConvertWithTable(markdown string, config *RenderConfig) (string, *PlaceholderTable) {
	if config == nil {
		config = DefaultConfig()
	}

	// 预处理
	text := normalizeNewlines(markdown)
	if config.NormalizeNFC {
		text = norm.NFC.String(text)
	}
	text = capInput(text, config.MaxInputBytes)

	var res converter.Result
	switch config.Engine {
	case types.EngineCommonMark:
		res = parser.Parse(text, config)
	case types.EngineRegex, "":
		res = converter.Convert(text, config)
	default:
		Logger.Printf("unknown engine %q, falling back to %q", config.Engine, types.EngineRegex)
		res = converter.Convert(text, config)
	}

	if n := placeholder.Residual(res.Markup); n > 0 {
		Logger.Printf("%d placeholder tokens left after restore", n)
	}
	return res.Markup, res.Table
}

// Highlight 对 markup 中的代码块做语法高亮
//
// 高亮是尽力而为的后处理：失败时记录日志并返回原 markup。
func Highlight(markup string, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}
	out, err := highlight.Highlight(markup, &config.Highlight)
	if err != nil {
		Logger.Printf("highlight failed, leaving code unstyled: %v", err)
		return markup
	}
	return out
}

// Render converts markdown and highlights the result, which is what a preview
// surface displays.
func Render(markdown string, opts ...Option) string {
	config := applyOptions(opts...).renderConfig()
	return Highlight(Convert(markdown, config), config)
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// capInput cuts text to at most max bytes on a rune boundary. max <= 0 disables
// the cap.
func capInput(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	Logger.Printf("input of %d bytes exceeds maxInputBytes=%d, rendering the first %d bytes", len(text), max, cut)
	return text[:cut]
}
