// Package highlight colorizes the code containers of rendered markup. It parses the
// markup into a node tree, selects every "pre > code" element and rewrites its
// children with styled spans.
package highlight

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/riverfjs/mdpanel/internal/types"
)

var codeSelector = cascadia.MustCompile("pre > code")

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Highlight colorizes every code container in markup. Markup without code
// containers, or with the "none" engine, is returned unchanged.
func Highlight(markup string, cfg *types.HighlightConfig) (string, error) {
	if cfg == nil || cfg.Engine == types.HighlightNone || !strings.Contains(markup, "<pre") {
		return markup, nil
	}

	root, err := parseFragment(markup)
	if err != nil {
		return markup, err
	}
	blocks := codeSelector.MatchAll(root)
	if len(blocks) == 0 {
		return markup, nil
	}

	for _, code := range blocks {
		lang := attr(code.Parent, "data-lang")
		text := textContent(code)

		switch cfg.Engine {
		case types.HighlightChroma:
			err = highlightChroma(code, lang, text, cfg.ChromaStyle)
		case types.HighlightHeuristic:
			err = highlightHeuristic(code, lang, text, cfg.Palette)
		default:
			return markup, fmt.Errorf("%w: highlight %q", types.ErrUnknownEngine, cfg.Engine)
		}
		if err != nil {
			return markup, err
		}
	}

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return markup, fmt.Errorf("render markup: %w", err)
		}
	}
	return b.String(), nil
}

func highlightHeuristic(code *html.Node, lang, text string, palette map[string]string) error {
	rule, ok := Detect(lang, text)
	if !ok {
		return nil
	}
	nodes, err := html.ParseFragment(strings.NewReader(rule.Apply(textEscaper.Replace(text))), code)
	if err != nil {
		return fmt.Errorf("parse %s spans: %w", rule.Name, err)
	}
	replaceChildren(code, nodes)
	applyPalette(code, palette)
	return nil
}

// applyPalette turns class=hl-NAME into the palette's inline style for NAME.
func applyPalette(n *html.Node, palette map[string]string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Span {
		for i, a := range n.Attr {
			name, ok := strings.CutPrefix(a.Val, "hl-")
			if a.Key != "class" || !ok {
				continue
			}
			if style, ok := palette[name]; ok {
				n.Attr[i] = html.Attribute{Key: "style", Val: style}
			}
			break
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		applyPalette(c, palette)
	}
}

func parseFragment(markup string) (*html.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), body)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

func replaceChildren(parent *html.Node, nodes []*html.Node) {
	for c := parent.FirstChild; c != nil; c = parent.FirstChild {
		parent.RemoveChild(c)
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
