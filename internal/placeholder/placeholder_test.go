package placeholder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensAreIndexed(t *testing.T) {
	tbl := New()
	c0 := tbl.AddCode("go", "x := 1")
	q1 := tbl.AddQuote("hello")
	c2 := tbl.AddCode("", "y")

	assert.Equal(t, Token(CodeBlock, 0), c0)
	assert.Equal(t, Token(Quote, 1), q1)
	assert.Equal(t, Token(CodeBlock, 2), c2)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 3, tbl.Pending())

	e, ok := tbl.At(1)
	require.True(t, ok)
	assert.Equal(t, Quote, e.Kind)
	assert.Equal(t, "hello", e.Quote)
	_, ok = tbl.At(3)
	assert.False(t, ok)
}

func TestRestoreByKind(t *testing.T) {
	tbl := New()
	text := "a " + tbl.AddQuote("q") + " b " + tbl.AddCode("js", "c")

	text = tbl.Restore(text, Quote, func(e Entry) string { return "<Q:" + e.Quote + ">" })
	assert.Equal(t, 1, Residual(text))
	assert.Equal(t, 1, tbl.Pending())

	text = tbl.Restore(text, CodeBlock, func(e Entry) string { return "<C:" + e.Code.Language + ":" + e.Code.Code + ">" })
	assert.Equal(t, "a <Q:q> b <C:js:c>", text)
	assert.Zero(t, Residual(text))
	assert.Zero(t, tbl.Pending())
}

func TestRestoreOnlyOnce(t *testing.T) {
	tbl := New()
	tok := tbl.AddCode("", "body")
	calls := 0
	out := tbl.Restore(tok+tok, CodeBlock, func(e Entry) string {
		calls++
		return e.Code.Code
	})
	assert.Equal(t, "body", out)
	assert.Equal(t, 1, calls)
}

func TestRestoreDropsUnknownIndex(t *testing.T) {
	tbl := New()
	out := tbl.Restore("x"+Token(CodeBlock, 7)+"y", CodeBlock, func(Entry) string { return "!" })
	assert.Equal(t, "xy", out)
}

func TestSanitize(t *testing.T) {
	forged := Token(CodeBlock, 0)
	clean := Sanitize("before " + forged + " after")
	assert.Zero(t, Residual(clean))
	assert.Equal(t, 2, strings.Count(clean, "�"))
	assert.Equal(t, "plain", Sanitize("plain"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "code_block", CodeBlock.String())
	assert.Equal(t, "quote", Quote.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
