package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"

	"github.com/riverfjs/mdpanel/internal/buffer"
	"github.com/riverfjs/mdpanel/internal/converter"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/types"
)

// EventWalker 遍历 goldmark AST 并生成 markup
type EventWalker struct {
	buf    *buffer.Buffer
	source []byte
	config *types.RenderConfig
	table  *placeholder.Table

	// Block-level state
	blockCount      int   // 用于段落间距
	blockCountStack []int // saved around blockquotes
	listStack       []int // -1 = unordered, otherwise next ordinal
	itemHasContent  bool

	inTableHead bool
}

// NewEventWalker 创建新的 EventWalker
func NewEventWalker(source []byte, config *types.RenderConfig) *EventWalker {
	return &EventWalker{
		buf:       buffer.New(),
		source:    source,
		config:    config,
		table:     placeholder.New(),
		listStack: make([]int, 0),
	}
}

// Walk 遍历 AST 节点
func (w *EventWalker) Walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	st := &w.config.Styles

	switch n := node.(type) {
	// --- Inline elements ---
	case *ast.Text:
		if entering {
			w.text(string(n.Segment.Value(w.source)))
			if n.SoftLineBreak() || n.HardLineBreak() {
				w.buf.Write("\n")
			}
		}

	case *ast.String:
		if entering {
			w.text(string(n.Value))
		}

	case *ast.CodeSpan:
		if entering {
			w.buf.Write(`<code style="` + st.Code + `">`)
			w.text(plainText(n, w.source))
			w.buf.Write("</code>")
			return ast.WalkSkipChildren, nil
		}

	case *ast.Emphasis:
		// Level 1 = italic, Level 2 = bold
		tag := "i"
		if n.Level == 2 {
			tag = "b"
		}
		w.tag(tag, entering)

	case *east.Strikethrough:
		w.tag("del", entering)

	// --- Links & Images ---
	case *ast.Link:
		if entering {
			w.buf.Write(`<a href="` + converter.EscapeAttr(string(n.Destination)) + `" target="_blank" style="` + st.Link + `">`)
		} else {
			w.buf.Write("</a>")
		}

	case *ast.Image:
		if entering {
			w.buf.Write(`<img src="` + converter.EscapeAttr(string(n.Destination)) + `" alt="` +
				converter.EscapeAttr(plainText(n, w.source)) + `" style="` + st.Image + `">`)
			return ast.WalkSkipChildren, nil
		}

	case *ast.AutoLink:
		if entering {
			url := string(n.URL(w.source))
			if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(url), "mailto:") {
				url = "mailto:" + url
			}
			w.buf.Write(`<a href="` + converter.EscapeAttr(url) + `" target="_blank" style="` + st.Link + `">`)
			w.text(string(n.Label(w.source)))
			w.buf.Write("</a>")
			return ast.WalkSkipChildren, nil
		}

	case *ast.RawHTML:
		if entering {
			var sb strings.Builder
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				sb.Write(seg.Value(w.source))
			}
			w.text(sb.String())
			return ast.WalkSkipChildren, nil
		}

	// --- Block elements ---
	case *ast.Paragraph, *ast.TextBlock:
		if entering {
			w.startBlock()
		} else {
			w.endBlock()
		}

	case *ast.Heading:
		if entering {
			w.startBlock()
			w.buf.Write(fmt.Sprintf("<h%d>", w.headingLevel(n.Level)))
		} else {
			w.buf.Write(fmt.Sprintf("</h%d>", w.headingLevel(n.Level)))
			w.endBlock()
		}

	case *ast.Blockquote:
		if entering {
			w.startBlock()
			w.buf.Write(`<blockquote style="` + st.Quote + `">`)
			w.blockCountStack = append(w.blockCountStack, w.blockCount)
			w.blockCount = 0
		} else {
			w.buf.TrimTrailingNewlines()
			w.buf.Write("</blockquote>")
			w.blockCount = w.blockCountStack[len(w.blockCountStack)-1]
			w.blockCountStack = w.blockCountStack[:len(w.blockCountStack)-1]
			w.endBlock()
		}

	case *ast.List:
		if entering {
			w.onStartList(n)
		} else {
			w.onEndList(n)
		}

	case *ast.ListItem:
		if entering {
			w.onStartItem()
		} else {
			w.buf.TrimTrailingNewlines()
			w.buf.Write("</li>")
			w.itemHasContent = true
		}

	case *east.TaskCheckBox:
		if entering {
			if n.IsChecked {
				w.buf.Write(`<input type="checkbox" checked disabled> `)
			} else {
				w.buf.Write(`<input type="checkbox" disabled> `)
			}
		}

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if entering {
			w.onCodeBlock(n)
			return ast.WalkSkipChildren, nil
		}

	case *ast.ThematicBreak:
		if entering {
			w.startBlock()
			w.buf.Write(`<hr style="` + st.Rule + `">`)
			w.endBlock()
		}

	case *ast.HTMLBlock:
		if entering {
			w.startBlock()
			raw := linesText(n, w.source)
			if n.HasClosure() {
				raw += string(n.ClosureLine.Value(w.source))
			}
			w.text(strings.TrimRight(raw, "\n"))
			w.endBlock()
			return ast.WalkSkipChildren, nil
		}

	// --- Table ---
	case *east.Table:
		if entering {
			w.startBlock()
			w.buf.Write(`<table style="` + st.Table + `">`)
		} else {
			w.buf.Write("</tbody></table>")
			w.endBlock()
		}

	case *east.TableHeader:
		if entering {
			w.inTableHead = true
			w.buf.Write(`<thead><tr style="` + st.TableHead + `">`)
		} else {
			w.inTableHead = false
			w.buf.Write("</tr></thead><tbody>")
		}

	case *east.TableRow:
		w.tag("tr", entering)

	case *east.TableCell:
		switch {
		case entering && w.inTableHead:
			w.buf.Write(`<th style="` + st.HeaderCell + `">`)
		case entering:
			w.buf.Write(`<td style="` + st.BodyCell + `">`)
		case w.inTableHead:
			w.buf.Write("</th>")
		default:
			w.buf.Write("</td>")
		}
	}

	return ast.WalkContinue, nil
}

// Result 返回转换结果
func (w *EventWalker) Result() converter.Result {
	w.buf.TrimTrailingNewlines()
	markup := converter.BreakLines(w.buf.String())
	markup = converter.Restore(markup, w.table, w.config)
	return converter.Result{Markup: markup, Table: w.table}
}

func (w *EventWalker) text(s string) {
	w.buf.Write(converter.Escape(s, w.config))
}

func (w *EventWalker) tag(name string, entering bool) {
	if entering {
		w.buf.Write("<" + name + ">")
	} else {
		w.buf.Write("</" + name + ">")
	}
}

// headingLevel maps 1..4 markers through the config; deeper headings share the
// level of four markers.
func (w *EventWalker) headingLevel(level int) int {
	return w.config.HeadingLevel(min(level, 4))
}

// --- Block spacing ---

// startBlock separates top-level blocks with a blank line and blocks inside a
// list item with a single line break.
func (w *EventWalker) startBlock() {
	if len(w.listStack) > 0 {
		if w.itemHasContent && w.buf.TrailingNewlineCount() == 0 {
			w.buf.Write("\n")
		}
		return
	}
	w.ensureBlockSpacing()
}

func (w *EventWalker) endBlock() {
	if len(w.listStack) > 0 {
		w.itemHasContent = true
		return
	}
	w.blockCount++
}

func (w *EventWalker) ensureBlockSpacing() {
	// Ensure a blank line (\n\n) between blocks, avoiding excess newlines
	if w.blockCount > 0 {
		if needed := 2 - w.buf.TrailingNewlineCount(); needed > 0 {
			w.buf.Write(strings.Repeat("\n", needed))
		}
	}
}

// --- Lists ---

func (w *EventWalker) onStartList(n *ast.List) {
	// 嵌套列表直接跟在父项文本后，不插入换行
	if len(w.listStack) == 0 {
		w.ensureBlockSpacing()
	}
	if n.IsOrdered() {
		w.buf.Write(`<ol style="` + w.config.Styles.List + `">`)
		w.listStack = append(w.listStack, n.Start)
	} else {
		w.buf.Write(`<ul style="` + w.config.Styles.List + `">`)
		w.listStack = append(w.listStack, -1)
	}
}

func (w *EventWalker) onEndList(n *ast.List) {
	if n.IsOrdered() {
		w.buf.Write("</ol>")
	} else {
		w.buf.Write("</ul>")
	}
	w.listStack = w.listStack[:len(w.listStack)-1]
	w.endBlock()
}

func (w *EventWalker) onStartItem() {
	top := len(w.listStack) - 1
	if next := w.listStack[top]; next >= 0 {
		w.buf.Write(`<li value="` + strconv.Itoa(next) + `">`)
		w.listStack[top] = next + 1
	} else {
		w.buf.Write("<li>")
	}
	w.itemHasContent = false
}

// --- Code block ---

func (w *EventWalker) onCodeBlock(n ast.Node) {
	w.startBlock()

	var lang string
	if fenced, ok := n.(*ast.FencedCodeBlock); ok && fenced.Info != nil {
		lang = strings.TrimSpace(string(fenced.Info.Segment.Value(w.source)))
	}
	code := converter.TrimBlankEdges(linesText(n, w.source))
	w.buf.Write(w.table.AddCode(lang, code))

	w.endBlock()
}

// --- Utilities ---

func linesText(n ast.Node, source []byte) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		sb.Write(line.Value(source))
	}
	return sb.String()
}

// plainText concatenates the text of n's descendants.
func plainText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(plainText(c, source))
		}
	}
	return sb.String()
}
