package parser

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/mdpanel/internal/converter"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/types"
)

// StandardOptions goldmark 扩展配置: GFM (tables, strikethrough, task lists, linkify)
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

// Parse renders markdown with goldmark, emitting the same markup dialect as the
// pattern pipeline: mapped heading levels, styled tables, disabled checkboxes,
// <br> line breaks and placeholder-restored code containers.
func Parse(markdown string, config *types.RenderConfig) converter.Result {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	source := []byte(placeholder.Sanitize(markdown))
	node := ParseAST(source)

	walker := NewEventWalker(source, config)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return walker.Walk(n, entering)
	})

	return walker.Result()
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(source []byte) ast.Node {
	md := goldmark.New(StandardOptions...)
	return md.Parser().Parse(text.NewReader(source))
}
