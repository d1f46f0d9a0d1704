package stats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/riverfjs/mdpanel/internal/types"
)

// MaxLineLength is the longest line, in UTF-16 code units, Lint accepts silently.
const MaxLineLength = 120

var emptyLinkRe = regexp.MustCompile(`\[\]\([^)]+\)`)

// IssueKind identifies a lint rule.
type IssueKind string

const (
	EmptyLink         IssueKind = "empty_link"
	UnterminatedFence IssueKind = "unterminated_fence"
	UnclosedQuote     IssueKind = "unclosed_quote"
	LongLine          IssueKind = "long_line"
)

// Issue is one advisory warning.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Count   int       `json:"count,omitempty"`
	Message string    `json:"message"`
}

// Issues is the ordered result of Lint. A nil Issues means the text was never
// checked; a clean pass is an empty, non-nil slice.
type Issues []Issue

// Clean reports whether the text was checked and nothing was found.
func (is Issues) Clean() bool {
	return is != nil && len(is) == 0
}

// Strings returns the messages in order.
func (is Issues) Strings() []string {
	out := make([]string, len(is))
	for i, issue := range is {
		out[i] = issue.Message
	}
	return out
}

// Lint runs every rule over the raw text, in fixed order.
func Lint(text string, compat types.Compat) Issues {
	issues := Issues{}

	if n := len(emptyLinkRe.FindAllStringIndex(text, -1)); n > 0 {
		issues = append(issues, Issue{
			Kind:    EmptyLink,
			Count:   n,
			Message: fmt.Sprintf("empty link found: %d", n),
		})
	}

	if strings.Count(text, fence)%2 != 0 {
		issues = append(issues, Issue{
			Kind:    UnterminatedFence,
			Message: "unterminated code block",
		})
	}

	lines := strings.Split(text, "\n")

	// Raw source never holds a rendered closing tag, so with the legacy rule any
	// quote line triggers the warning.
	if compat.QuoteClosureLint && !strings.Contains(text, "</blockquote>") {
		for _, line := range lines {
			if strings.HasPrefix(line, ">") {
				issues = append(issues, Issue{
					Kind:    UnclosedQuote,
					Message: "quote block may not be closed",
				})
				break
			}
		}
	}

	long := 0
	for _, line := range lines {
		if UTF16Len(line) > MaxLineLength {
			long++
		}
	}
	if long > 0 {
		issues = append(issues, Issue{
			Kind:    LongLine,
			Count:   long,
			Message: fmt.Sprintf("%d line(s) longer than %d characters", long, MaxLineLength),
		})
	}

	return issues
}
