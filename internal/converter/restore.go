package converter

import (
	"strings"

	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/mdpanel/internal/mermaid"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/types"
)

// Restore expands quote tokens, then code tokens. Quotes go first because a quote
// run may hold the token of a fence that was extracted before it.
func Restore(text string, tbl *placeholder.Table, cfg *types.RenderConfig) string {
	text = tbl.Restore(text, placeholder.Quote, func(e placeholder.Entry) string {
		return `<blockquote style="` + cfg.Styles.Quote + `">` + BreakLines(Escape(e.Quote, cfg)) + `</blockquote>`
	})
	return tbl.Restore(text, placeholder.CodeBlock, func(e placeholder.Entry) string {
		return renderCode(e.Code, cfg)
	})
}

func renderCode(c placeholder.CodePayload, cfg *types.RenderConfig) string {
	if cfg.Mermaid.Enabled && strings.EqualFold(c.Language, "mermaid") {
		if fig, ok := renderMermaid(c.Code, cfg); ok {
			return fig
		}
	}
	var b strings.Builder
	b.WriteString("<pre")
	if c.Language != "" {
		b.WriteString(` data-lang="` + EscapeAttr(c.Language) + `"`)
	}
	b.WriteString(` style="` + cfg.Styles.Pre + `"><code>`)
	b.WriteString(Escape(c.Code, cfg))
	b.WriteString("</code></pre>")
	return b.String()
}

func renderMermaid(code string, cfg *types.RenderConfig) (string, bool) {
	mc := &mermaid.Config{Theme: cfg.Mermaid.Theme}
	img, err := mermaid.InkURL(code, mc)
	if err != nil {
		return "", false
	}
	edit, err := mermaid.LiveURL(code, mc)
	if err != nil {
		return "", false
	}
	return `<figure class="mermaid"><img src="` + EscapeAttr(img) + `" alt="mermaid diagram" style="` +
		cfg.Styles.Image + `"><figcaption><a href="` + EscapeAttr(edit) + `" target="_blank" style="` +
		cfg.Styles.Link + `">edit diagram</a></figcaption></figure>`, true
}

// Escape applies HTML escaping unless the config opts out.
func Escape(s string, cfg *types.RenderConfig) string {
	if !cfg.EscapeHTML {
		return s
	}
	return string(util.EscapeHTML([]byte(s)))
}

// EscapeAttr always escapes; attribute values are never passed through raw.
func EscapeAttr(s string) string {
	return string(util.EscapeHTML([]byte(s)))
}
