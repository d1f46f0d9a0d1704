// Package stats derives counters and lint warnings from raw source text. It never
// looks at rendered output.
package stats

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"

	"github.com/riverfjs/mdpanel/internal/types"
)

const fence = "```"

var (
	headingRe = regexp.MustCompile(`(?m)^#+ `)
	linkRe    = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	imageRe   = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
)

// Record holds the document counters. Every field is recomputed on each call.
type Record struct {
	Lines    int `json:"lines"`
	Words    int `json:"words"`
	Chars    int `json:"chars"` // UTF-16 code units
	Headings int `json:"headings"`
	// CodeBlocks is Fences/2 rounded down; an odd fence count is reported by Lint.
	CodeBlocks int `json:"codeBlocks"`
	Links      int `json:"links"`
	Images     int `json:"images"`
	Fences     int `json:"fences"`
	Graphemes  int `json:"graphemes"`
}

// Compute counts text. With compat.CountImagesAsLinks the bracket-paren part of
// every image with non-empty alt text is counted as a link too.
func Compute(text string, compat types.Compat) Record {
	r := Record{
		Lines:     countLines(text),
		Words:     len(strings.Fields(text)),
		Chars:     UTF16Len(text),
		Headings:  len(headingRe.FindAllStringIndex(text, -1)),
		Images:    len(imageRe.FindAllStringIndex(text, -1)),
		Fences:    strings.Count(text, fence),
		Graphemes: uniseg.GraphemeClusterCount(text),
	}
	r.CodeBlocks = r.Fences / 2

	for _, loc := range linkRe.FindAllStringIndex(text, -1) {
		if !compat.CountImagesAsLinks && loc[0] > 0 && text[loc[0]-1] == '!' {
			continue
		}
		r.Links++
	}
	return r
}

// countLines counts newline-terminated lines plus a trailing unterminated one.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}

// UTF16Len returns the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
