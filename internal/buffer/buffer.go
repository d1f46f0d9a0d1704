// Package buffer accumulates markup emitted by the AST walker.
package buffer

import "strings"

// Buffer is an append-only list of markup parts that can inspect and trim its
// trailing newlines.
type Buffer struct {
	parts []string
	size  int
}

// New creates an empty Buffer.
func New() *Buffer {
	return &Buffer{parts: make([]string, 0, 64)}
}

// Write appends s. Empty strings are ignored.
func (b *Buffer) Write(s string) {
	if s == "" {
		return
	}
	b.parts = append(b.parts, s)
	b.size += len(s)
}

// Len returns the byte length of the accumulated markup.
func (b *Buffer) Len() int {
	return b.size
}

// TrailingNewlineCount counts the newline characters at the end of the buffer.
func (b *Buffer) TrailingNewlineCount() int {
	count := 0
	for i := len(b.parts) - 1; i >= 0; i-- {
		part := b.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] != '\n' {
				return count
			}
			count++
		}
	}
	return count
}

// TrimTrailingNewlines drops every newline at the end of the buffer.
func (b *Buffer) TrimTrailingNewlines() {
	for len(b.parts) > 0 {
		last := b.parts[len(b.parts)-1]
		trimmed := strings.TrimRight(last, "\n")
		b.size -= len(last) - len(trimmed)
		if trimmed != "" {
			b.parts[len(b.parts)-1] = trimmed
			return
		}
		b.parts = b.parts[:len(b.parts)-1]
	}
}

// String returns the accumulated markup.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.size)
	for _, p := range b.parts {
		sb.WriteString(p)
	}
	return sb.String()
}
