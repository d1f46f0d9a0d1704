package mdpanel

import (
	"errors"
	"testing"
)

// TestFormat 测试 JSON 和缩进格式化
func TestFormat(t *testing.T) {
	got, err := Format(`{"a":[1,2]}`)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"a\": [\n    1,\n    2\n  ]\n}"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if DetectFormat("  [1]") != FormatJSON || DetectFormat("f() {") != FormatIndent {
		t.Error("DetectFormat picked the wrong formatter")
	}
}

// TestFormat_Invalid 测试 JSON 解析失败保留原文
func TestFormat_Invalid(t *testing.T) {
	src := `{"a":}`
	got, err := Format(src)
	var fe *FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FormatError", err)
	}
	if fe.Kind != FormatJSON {
		t.Errorf("Kind = %q", fe.Kind)
	}
	if got != src {
		t.Errorf("Format() = %q, want original text", got)
	}
}
