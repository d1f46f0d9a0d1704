package converter

import (
	"regexp"
	"strings"

	"github.com/riverfjs/mdpanel/internal/placeholder"
)

var (
	// fenceRe matches a complete fence: info string on the opening line, lazy body,
	// closing triple backtick. An unterminated fence never matches.
	fenceRe = regexp.MustCompile("(?s)```([^`\n]*)(.*?)```")

	// quoteRunRe matches a maximal run of lines starting with '>'; the newline that
	// ends the run stays in the working text.
	quoteRunRe = regexp.MustCompile(`(?m)^>.*(?:\n>.*)*`)

	quoteMarkerRe = regexp.MustCompile(`(?m)^> ?`)
)

// Extract replaces fenced code blocks, then quote runs, with placeholder tokens.
func Extract(src string) (string, *placeholder.Table) {
	tbl := placeholder.New()
	text := placeholder.Sanitize(src)

	text = fenceRe.ReplaceAllStringFunc(text, func(match string) string {
		m := fenceRe.FindStringSubmatch(match)
		return tbl.AddCode(strings.TrimSpace(m[1]), TrimBlankEdges(m[2]))
	})

	text = quoteRunRe.ReplaceAllStringFunc(text, func(match string) string {
		return tbl.AddQuote(quoteMarkerRe.ReplaceAllString(match, ""))
	})

	return text, tbl
}

// CodeBlocks returns the fenced blocks of src in document order.
func CodeBlocks(src string) []placeholder.CodePayload {
	_, tbl := Extract(src)
	var out []placeholder.CodePayload
	for _, e := range tbl.Entries() {
		if e.Kind == placeholder.CodeBlock {
			out = append(out, e.Code)
		}
	}
	return out
}

// TrimBlankEdges drops whitespace-only lines at both ends and keeps the
// indentation of the first and last content lines.
func TrimBlankEdges(body string) string {
	lines := strings.Split(body, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
