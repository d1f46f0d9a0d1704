package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/mdpanel/internal/types"
)

var (
	headingRe = regexp.MustCompile(`(?m)^(#{1,4}) (.*)$`)
	ruleRe    = regexp.MustCompile(`(?m)^---$`)

	// tableRe matches a header row, a separator row with at least one dash and any
	// body rows, plus the newline ending the last row.
	tableRe = regexp.MustCompile(`(?m)^\|.*\|[ \t]*\n\|[-:| ]*-[-:| ]*\|[ \t]*(?:\n\|.*\|[ \t]*)*\n?`)

	taskDoneRe = regexp.MustCompile(`(?mi)^[ \t]*-[ \t]+\[x\][ \t]+(.*)$`)
	taskOpenRe = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+\[ \][ \t]+(.*)$`)
	listItemRe = regexp.MustCompile(`(?m)^[ \t]*-[ \t]+(.*)$`)
	orderedRe  = regexp.MustCompile(`(?m)^[ \t]*([0-9]{1,9})\.[ \t]+(.*)$`)
	itemRunRe  = regexp.MustCompile(`(?m)^<li>.*</li>(?:\n<li>.*</li>)*`)
	orderRunRe = regexp.MustCompile(`(?m)^<li value="[0-9]+">.*</li>(?:\n<li value="[0-9]+">.*</li>)*`)
)

// TransformBlocks applies the line-scoped rules in fixed order: headings,
// horizontal rules, tables, then task, plain and ordered list items.
func TransformBlocks(text string, cfg *types.RenderConfig) string {
	text = headingRe.ReplaceAllStringFunc(text, func(match string) string {
		m := headingRe.FindStringSubmatch(match)
		level := cfg.HeadingLevel(len(m[1]))
		return fmt.Sprintf("<h%d>%s</h%d>", level, m[2], level)
	})

	text = ruleRe.ReplaceAllLiteralString(text, `<hr style="`+cfg.Styles.Rule+`">`)

	text = tableRe.ReplaceAllStringFunc(text, func(match string) string {
		return renderTable(match, &cfg.Styles)
	})

	return transformLists(text, cfg)
}

func renderTable(match string, st *types.Styles) string {
	lines := strings.Split(strings.TrimRight(match, "\n"), "\n")
	if len(lines) < 3 {
		return match
	}
	headers := splitCells(lines[0])

	var b strings.Builder
	b.WriteString(`<table style="` + st.Table + `">`)
	b.WriteString(`<thead><tr style="` + st.TableHead + `">`)
	for _, h := range headers {
		b.WriteString(`<th style="` + st.HeaderCell + `">` + h + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)
	for _, row := range lines[2:] {
		b.WriteString(`<tr>`)
		for i, cell := range splitCells(row) {
			// cells past the header's column count are dropped
			if i >= len(headers) {
				break
			}
			b.WriteString(`<td style="` + st.BodyCell + `">` + cell + `</td>`)
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String()
}

// splitCells splits a pipe row and drops empty cells.
func splitCells(row string) []string {
	parts := strings.Split(row, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}

func transformLists(text string, cfg *types.RenderConfig) string {
	text = taskDoneRe.ReplaceAllStringFunc(text, func(match string) string {
		return `<li><input type="checkbox" checked disabled> ` + taskDoneRe.FindStringSubmatch(match)[1] + `</li>`
	})
	text = taskOpenRe.ReplaceAllStringFunc(text, func(match string) string {
		return `<li><input type="checkbox" disabled> ` + taskOpenRe.FindStringSubmatch(match)[1] + `</li>`
	})
	text = listItemRe.ReplaceAllStringFunc(text, func(match string) string {
		return `<li>` + listItemRe.FindStringSubmatch(match)[1] + `</li>`
	})
	text = orderedRe.ReplaceAllStringFunc(text, func(match string) string {
		m := orderedRe.FindStringSubmatch(match)
		return `<li value="` + m[1] + `">` + m[2] + `</li>`
	})

	open := `<ul style="` + cfg.Styles.List + `">`
	if cfg.Compat.WrapAllLists {
		text = itemRunRe.ReplaceAllStringFunc(text, func(run string) string {
			return open + run + `</ul>`
		})
	} else if loc := itemRunRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]] + open + text[loc[0]:loc[1]] + `</ul>` + text[loc[1]:]
	}

	return orderRunRe.ReplaceAllStringFunc(text, func(run string) string {
		return `<ol style="` + cfg.Styles.List + `">` + run + `</ol>`
	})
}
