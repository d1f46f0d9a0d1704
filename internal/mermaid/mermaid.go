// Package mermaid builds mermaid.ink image URLs and mermaid.live editor URLs for
// diagrams found in fenced blocks tagged "mermaid".
package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
)

// Config is the mermaid render configuration embedded in the pako payload.
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig returns the default mermaid configuration.
func DefaultConfig() *Config {
	return &Config{Theme: "default"}
}

func compressToDeflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePako encodes a diagram the way mermaid.live expects: JSON, zlib, URL-safe base64.
func GeneratePako(diagram string, cfg *Config) (string, error) {
	if cfg == nil || cfg.Theme == "" {
		cfg = DefaultConfig()
	}
	payload, err := json.Marshal(map[string]interface{}{
		"code":    diagram,
		"mermaid": cfg,
	})
	if err != nil {
		return "", fmt.Errorf("encode diagram: %w", err)
	}
	compressed, err := compressToDeflate(payload)
	if err != nil {
		return "", fmt.Errorf("compress diagram: %w", err)
	}
	return "pako:" + base64.URLEncoding.EncodeToString(compressed), nil
}

// LiveURL returns the mermaid.live editor URL for diagram.
func LiveURL(diagram string, cfg *Config) (string, error) {
	pako, err := GeneratePako(diagram, cfg)
	if err != nil {
		return "", err
	}
	return "https://mermaid.live/edit#" + pako, nil
}

// InkURL returns the mermaid.ink SVG URL for diagram.
func InkURL(diagram string, cfg *Config) (string, error) {
	pako, err := GeneratePako(diagram, cfg)
	if err != nil {
		return "", err
	}
	theme := DefaultConfig().Theme
	if cfg != nil && cfg.Theme != "" {
		theme = cfg.Theme
	}
	q := url.Values{}
	q.Set("theme", theme)
	return "https://mermaid.ink/svg/" + pako + "?" + q.Encode(), nil
}
