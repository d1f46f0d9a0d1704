package highlight

import (
	"regexp"
	"strings"

	"github.com/riverfjs/mdpanel/internal/util"
)

// Rule is one branch of the language chain: a predicate over the fence tag and
// the raw code, and the substitution passes applied when it wins.
type Rule struct {
	Name      string
	Languages []string
	Sniff     func(code string) bool
	passes    []pass
}

// pass wraps matches in <span class=hl-NAME>. Class values are unquoted and hold
// no digits, quotes or colons, so later passes cannot match inside them.
type pass struct {
	re   *regexp.Regexp
	repl string
}

func span(class, inner string) string {
	return "<span class=hl-" + class + ">" + inner + "</span>"
}

var numberPass = pass{regexp.MustCompile(`\b(\d+)\b`), span("number", "${1}")}

// Chain is evaluated in order and stops at the first matching rule.
var Chain = []Rule{
	{
		Name:      "javascript",
		Languages: []string{"javascript"},
		Sniff: func(code string) bool {
			return strings.Contains(code, "function") || strings.Contains(code, "const")
		},
		passes: []pass{
			{regexp.MustCompile(`\b(function|const|let|var|if|else|for|while|return|class|import|export|async|await|try|catch|throw|new|this|super|extends|static|get|set)\b`), span("keyword", "${1}")},
			{regexp.MustCompile("('[^'\"`]*'|\"[^'\"`]*\"|`[^'\"`]*`)"), span("string", "${1}")},
			{regexp.MustCompile(`(?m)(//.*$)`), span("comment", "${1}")},
			{regexp.MustCompile(`(?s)(/\*.*?\*/)`), span("comment", "${1}")},
			numberPass,
		},
	},
	{
		Name:      "python",
		Languages: []string{"python"},
		Sniff: func(code string) bool {
			return strings.Contains(code, "def ") || strings.Contains(code, "import ")
		},
		passes: []pass{
			{regexp.MustCompile(`\b(def|class|import|from|if|else|elif|for|while|return|try|except|with|as|pass|break|continue|lambda|yield|async|await|finally|raise|assert|del|global|nonlocal|True|False|None)\b`), span("keyword", "${1}")},
			{regexp.MustCompile(`('[^'"]*'|"[^'"]*")`), span("string", "${1}")},
			{regexp.MustCompile(`(?m)(#.*$)`), span("comment", "${1}")},
			numberPass,
		},
	},
	{
		Name:      "html",
		Languages: []string{"html", "xml"},
		Sniff: func(code string) bool {
			return strings.Contains(code, "<") && strings.Contains(code, ">")
		},
		passes: []pass{
			{regexp.MustCompile(`(&lt;[^/&][^&]*&gt;)`), span("tag", "${1}")},
			{regexp.MustCompile(`(&lt;/[^&]+&gt;)`), span("tag", "${1}")},
		},
	},
	{
		Name:      "css",
		Languages: []string{"css"},
		Sniff: func(code string) bool {
			return strings.Contains(code, "{") && strings.Contains(code, ":")
		},
		passes: []pass{
			{regexp.MustCompile(`([a-z-]+):`), span("property", "${1}") + ":"},
			{regexp.MustCompile(`:\s*([^;&]+);`), ": " + span("value", "${1}") + ";"},
		},
	},
}

// Detect picks the rule for a code block. A fence tag claimed by a rule wins;
// otherwise the sniffers run in chain order and the first hit wins.
func Detect(tag, code string) (Rule, bool) {
	if lang := util.CanonicalLanguage(tag); lang != "" {
		for _, r := range Chain {
			for _, l := range r.Languages {
				if l == lang {
					return r, true
				}
			}
		}
	}
	for _, r := range Chain {
		if r.Sniff(code) {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply runs the rule's passes over HTML-escaped code.
func (r Rule) Apply(escaped string) string {
	for _, p := range r.passes {
		escaped = p.re.ReplaceAllString(escaped, p.repl)
	}
	return escaped
}
