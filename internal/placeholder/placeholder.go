// Package placeholder keeps protected segments (fenced code, quote runs) out of the
// working text while the block and inline rules run.
//
// A token is U+E000, a kind letter, the decimal entry index and U+E001. Both
// sentinels are private-use code points; Sanitize rewrites any that arrive in user
// text to U+FFFD before extraction, so a token in the working text was always put
// there by this package.
package placeholder

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	sentinelOpen  = '\uE000'
	sentinelClose = '\uE001'
)

// Kind is the kind of protected segment.
type Kind int

const (
	CodeBlock Kind = iota
	Quote
)

func (k Kind) String() string {
	switch k {
	case CodeBlock:
		return "code_block"
	case Quote:
		return "quote"
	default:
		return "unknown"
	}
}

func (k Kind) letter() byte {
	if k == Quote {
		return 'Q'
	}
	return 'C'
}

// CodePayload is an extracted fenced block.
type CodePayload struct {
	Language string // trimmed fence info, empty when unspecified
	Code     string
}

// Entry is one row of a Table.
type Entry struct {
	Kind  Kind
	Index int
	Code  CodePayload // set for CodeBlock
	Quote string      // set for Quote: marker-stripped lines joined by \n
}

// Table is the ordered arena of protected payloads for one conversion.
type Table struct {
	entries  []Entry
	restored []bool
}

// New returns an empty table.
func New() *Table {
	return &Table{}
}

// AddCode records a code block and returns its token.
func (t *Table) AddCode(language, code string) string {
	return t.add(Entry{Kind: CodeBlock, Code: CodePayload{Language: language, Code: code}})
}

// AddQuote records a quote run and returns its token.
func (t *Table) AddQuote(content string) string {
	return t.add(Entry{Kind: Quote, Quote: content})
}

func (t *Table) add(e Entry) string {
	e.Index = len(t.entries)
	t.entries = append(t.entries, e)
	t.restored = append(t.restored, false)
	return Token(e.Kind, e.Index)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in insertion order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// At returns entry i.
func (t *Table) At(i int) (Entry, bool) {
	if i < 0 || i >= len(t.entries) {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Pending returns how many entries have not been restored yet.
func (t *Table) Pending() int {
	n := 0
	for _, done := range t.restored {
		if !done {
			n++
		}
	}
	return n
}

// Token encodes kind and index.
func Token(kind Kind, index int) string {
	var b strings.Builder
	b.WriteRune(sentinelOpen)
	b.WriteByte(kind.letter())
	b.WriteString(strconv.Itoa(index))
	b.WriteRune(sentinelClose)
	return b.String()
}

var tokenRe = regexp.MustCompile(`\x{E000}([CQ])([0-9]+)\x{E001}`)

// Restore replaces every token of the given kind with render(entry). Each entry is
// rendered at most once; a repeated or unknown token is dropped.
func (t *Table) Restore(text string, kind Kind, render func(Entry) string) string {
	return tokenRe.ReplaceAllStringFunc(text, func(tok string) string {
		m := tokenRe.FindStringSubmatch(tok)
		if m[1][0] != kind.letter() {
			return tok
		}
		idx, err := strconv.Atoi(m[2])
		if err != nil || idx >= len(t.entries) || t.entries[idx].Kind != kind || t.restored[idx] {
			return ""
		}
		t.restored[idx] = true
		return render(t.entries[idx])
	})
}

// Residual counts tokens left in text.
func Residual(text string) int {
	return len(tokenRe.FindAllStringIndex(text, -1))
}

// Sanitize replaces token sentinels in user text with U+FFFD.
func Sanitize(text string) string {
	if !strings.ContainsRune(text, sentinelOpen) && !strings.ContainsRune(text, sentinelClose) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if r == sentinelOpen || r == sentinelClose {
			return '\uFFFD'
		}
		return r
	}, text)
}
