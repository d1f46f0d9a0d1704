package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

func TestGeneratePako(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
	}{
		{name: "simple graph", diagram: "graph LR\n    A-->B"},
		{name: "empty diagram", diagram: ""},
		{name: "flowchart", diagram: "flowchart TD\n    A[Start] --> B{Check}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePako(tt.diagram, nil)
			if err != nil {
				t.Fatalf("GeneratePako() error = %v", err)
			}
			if !strings.HasPrefix(got, "pako:") {
				t.Fatalf("GeneratePako() = %q, want pako: prefix", got)
			}
			if code := decodePako(t, got); code != tt.diagram {
				t.Errorf("round trip code = %q, want %q", code, tt.diagram)
			}
		})
	}
}

func decodePako(t *testing.T, pako string) string {
	t.Helper()
	raw, err := base64.URLEncoding.DecodeString(strings.TrimPrefix(pako, "pako:"))
	if err != nil {
		t.Fatalf("decode base64: %v", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	var payload struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return payload.Code
}

func TestURLs(t *testing.T) {
	live, err := LiveURL("graph LR\n A-->B", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(live, "https://mermaid.live/edit#pako:") {
		t.Errorf("LiveURL() = %q", live)
	}
	ink, err := InkURL("graph LR\n A-->B", &Config{Theme: "dark"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(ink, "https://mermaid.ink/svg/pako:") || !strings.HasSuffix(ink, "?theme=dark") {
		t.Errorf("InkURL() = %q", ink)
	}
}
