// Package mdpanel 将轻量 Markdown 方言渲染为带内联样式的 HTML 片段
//
// 这个包是 Markdown 编辑面板的核心：宿主面板在每次编辑时提交原始文本，
// 取回渲染后的 markup、统计信息和语法检查结果。
//
// 核心功能：
//   - 占位符管道：先提取代码块和引用块，再做块级/行内替换，最后还原
//   - 可选的 goldmark (CommonMark) 引擎，输出相同的 markup 方言
//   - 代码块高亮（启发式规则链或 chroma）
//   - 从原始文本计算统计信息和 lint 警告
//   - 导出为独立 HTML 文档、提取代码块为文件、自动保存
//
// 主要 API：
//   - Convert(): 同步转换，返回 markup
//   - Process(): 完整处理，返回 *Document（markup + 统计 + 警告 + 代码文件）
//   - Panel: 绑定持久化存储的编辑缓冲区
//
// 示例：
//
//	// 简单转换
//	markup := mdpanel.Convert(markdown, nil)
//
//	// 完整处理
//	doc, err := mdpanel.Process(ctx, markdown, mdpanel.WithHighlight(mdpanel.HighlightChroma))
//	fmt.Println(doc.Stats.Lines, doc.Issues.Strings())
package mdpanel

import (
	"context"
)

// Process 完整处理：markdown → *Document
//
// 步骤：
//  1. 转换 markdown 为 markup（按配置选择引擎）
//  2. 对 markup 中的代码块做高亮
//  3. 从原始文本独立计算统计信息和 lint 警告
//  4. 收集代码块为可下载文件
//
// 参数：
//   - ctx: 上下文，仅在阶段之间检查取消
//   - content: 原始 Markdown 文本
//   - opts: 转换选项
//
// 返回：
//   - *Document: 处理结果
//   - error: ctx 已取消时返回 ctx.Err()
func Process(ctx context.Context, content string, opts ...Option) (*Document, error) {
	config := applyOptions(opts...).renderConfig()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markup, table := ConvertWithTable(content, config)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	markup = Highlight(markup, config)

	stats := ComputeStats(content, config)
	return &Document{
		Markup:    markup,
		Stats:     stats,
		Issues:    Lint(content, config),
		CodeFiles: codeFiles(table),
		CharLevel: LevelFor(stats.Chars),
	}, nil
}
