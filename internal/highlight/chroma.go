package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// highlightChroma replaces the children of code with one span per chroma token.
func highlightChroma(code *html.Node, lang, text, styleName string) error {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(text)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", lexer.Config().Name, err)
	}

	tokens := iterator.Tokens()
	// lexers with EnsureNL append a newline the container never had
	if n := len(tokens); n > 0 && !strings.HasSuffix(text, "\n") {
		tokens[n-1].Value = strings.TrimSuffix(tokens[n-1].Value, "\n")
	}

	var nodes []*html.Node
	for _, token := range tokens {
		if token.Value == "" {
			continue
		}
		txt := &html.Node{Type: html.TextNode, Data: token.Value}
		css := entryCSS(style.Get(token.Type))
		if css == "" {
			nodes = append(nodes, txt)
			continue
		}
		span := &html.Node{
			Type:     html.ElementNode,
			Data:     "span",
			DataAtom: atom.Span,
			Attr:     []html.Attribute{{Key: "style", Val: css}},
		}
		span.AppendChild(txt)
		nodes = append(nodes, span)
	}
	replaceChildren(code, nodes)
	return nil
}

func entryCSS(entry chroma.StyleEntry) string {
	css := ""
	if entry.Colour.IsSet() {
		css += "color:" + entry.Colour.String() + ";"
	}
	if entry.Bold == chroma.Yes {
		css += "font-weight:bold;"
	}
	if entry.Italic == chroma.Yes {
		css += "font-style:italic;"
	}
	return css
}
