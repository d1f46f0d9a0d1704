package mdpanel

import (
	"github.com/riverfjs/mdpanel/internal/stats"
)

// Issue kinds reported by Lint.
const (
	IssueEmptyLink         = stats.EmptyLink
	IssueUnterminatedFence = stats.UnterminatedFence
	IssueUnclosedQuote     = stats.UnclosedQuote
	IssueLongLine          = stats.LongLine
)

// ComputeStats 从原始文本计算统计信息
//
// 统计只看原始文本，不依赖渲染结果；字符数按原始长度计算，CRLF 中的 \r 也计入。
//
// 参数:
//   - text: 原始 Markdown 文本
//   - config: 渲染配置（仅使用 Compat），nil 使用默认配置
func ComputeStats(text string, config *RenderConfig) Stats {
	if config == nil {
		config = DefaultConfig()
	}
	return stats.Compute(text, config.Compat)
}

// Lint 检查原始文本中的常见问题
//
// 返回空的（非 nil）Issues 表示没有问题。
func Lint(text string, config *RenderConfig) Issues {
	if config == nil {
		config = DefaultConfig()
	}
	return stats.Lint(normalizeNewlines(text), config.Compat)
}
