package converter

import (
	"regexp"
	"strings"

	"github.com/riverfjs/mdpanel/internal/types"
)

var (
	// alt text and targets never hold placeholder tokens: restored code or quote
	// markup inside an attribute value would break out of it
	imageRe      = regexp.MustCompile(`!\[([^\]\x{E000}\x{E001}]*)\]\(([^)\x{E000}\x{E001}]+)\)`)
	linkRe       = regexp.MustCompile(`\[([^\]]+)\]\(([^)\x{E000}\x{E001}]+)\)`)
	boldRe       = regexp.MustCompile(`\*\*(.*)\*\*`)
	italicRe     = regexp.MustCompile(`\*(.*)\*`)
	boldItalicRe = regexp.MustCompile(`___(.*)___`)
	inlineCodeRe = regexp.MustCompile("`([^`\n]+)`")
)

// TransformInline applies the span rules in order: images, links, bold, italic,
// bold-italic, inline code. Emphasis patterns are greedy within one line.
func TransformInline(text string, cfg *types.RenderConfig) string {
	st := &cfg.Styles

	// images first, or the link rule eats the bracket pair after '!'
	text = imageRe.ReplaceAllStringFunc(text, func(match string) string {
		m := imageRe.FindStringSubmatch(match)
		return `<img src="` + m[2] + `" alt="` + m[1] + `" style="` + st.Image + `">`
	})
	text = linkRe.ReplaceAllStringFunc(text, func(match string) string {
		m := linkRe.FindStringSubmatch(match)
		return `<a href="` + m[2] + `" target="_blank" style="` + st.Link + `">` + m[1] + `</a>`
	})

	text = wrapSpan(text, boldRe, "<b>", "</b>")
	text = wrapSpan(text, italicRe, "<i>", "</i>")
	text = wrapSpan(text, boldItalicRe, "<b><i>", "</i></b>")
	return wrapSpan(text, inlineCodeRe, `<code style="`+st.Code+`">`, "</code>")
}

func wrapSpan(text string, re *regexp.Regexp, openTag, closeTag string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return openTag + re.FindStringSubmatch(match)[1] + closeTag
	})
}

// BreakLines turns every remaining newline into a line-break element.
func BreakLines(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}
