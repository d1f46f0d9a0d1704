// Package converter implements the placeholder/pattern pipeline:
// extract -> block rules -> inline rules -> line breaks -> restore.
package converter

import (
	"strings"

	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/types"
)

// Result is the rendered markup together with the table used to build it.
type Result struct {
	Markup string
	Table  *placeholder.Table
}

// Convert renders src. It never fails: malformed markup passes through literally.
func Convert(src string, cfg *types.RenderConfig) Result {
	if src == "" {
		return Result{Table: placeholder.New()}
	}
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}

	text, tbl := Extract(strings.ReplaceAll(src, "\r\n", "\n"))
	text = Escape(text, cfg)
	text = TransformBlocks(text, cfg)
	text = TransformInline(text, cfg)
	text = BreakLines(text)
	text = Restore(text, tbl, cfg)

	return Result{Markup: text, Table: tbl}
}
