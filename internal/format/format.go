// Package format re-indents JSON documents and brace-structured source code.
package format

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Kind is the strategy Format picked for an input.
type Kind string

const (
	KindJSON   Kind = "json"
	KindIndent Kind = "indent"
)

// Indent is the unit of indentation written by both strategies.
const Indent = "  "

// FormatError reports input that could not be formatted. Offset is the byte
// offset of the failure, or -1 when unknown.
type FormatError struct {
	Kind   Kind
	Offset int64
	Err    error
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("format %s: offset %d: %v", e.Kind, e.Offset, e.Err)
	}
	return fmt.Sprintf("format %s: %v", e.Kind, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Detect returns KindJSON when the trimmed input opens with '{' or '['.
func Detect(src string) Kind {
	s := strings.TrimSpace(src)
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return KindJSON
	}
	return KindIndent
}

// Format re-indents src. JSON must be well formed; on failure the result is
// empty and the caller keeps its original text.
func Format(src string) (string, Kind, error) {
	kind := Detect(src)
	if kind == KindJSON {
		out, err := formatJSON(src)
		return out, kind, err
	}
	return formatIndent(src), kind, nil
}

func formatJSON(src string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace([]byte(src)), "", Indent); err != nil {
		fe := &FormatError{Kind: KindJSON, Offset: -1, Err: err}
		var se *json.SyntaxError
		if errors.As(err, &se) {
			fe.Offset = se.Offset
		}
		return "", fe
	}
	return buf.String(), nil
}

// formatIndent trims every line and indents by bracket depth: a line ending in
// '}' or ']' closes a level before it is written, one ending in '{' or '[' opens
// a level after.
func formatIndent(src string) string {
	lines := strings.Split(src, "\n")
	depth := 0
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "}") || strings.HasSuffix(line, "]") {
			depth = max(0, depth-1)
		}
		lines[i] = strings.Repeat(Indent, depth) + line
		if strings.HasSuffix(line, "{") || strings.HasSuffix(line, "[") {
			depth++
		}
	}
	return strings.Join(lines, "\n")
}
