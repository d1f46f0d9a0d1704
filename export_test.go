package mdpanel

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestExport 测试导出文档骨架
func TestExport(t *testing.T) {
	out := Export("<b>x</b>")
	if !strings.HasPrefix(out, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>Markdown Export</title>") {
		t.Errorf("unexpected head: %q", out[:80])
	}
	if !strings.HasSuffix(out, "<body>\n<b>x</b>\n</body>\n</html>") {
		t.Errorf("unexpected tail: %q", out[len(out)-40:])
	}
	if Export("") != exportHead+exportTail {
		t.Error("empty export should be the bare skeleton")
	}
}

// TestWriteExport 测试写入导出文件
func TestWriteExport(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteExport(&buf, "m"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != Export("m") {
		t.Errorf("WriteExport wrote %q", buf.String())
	}

	dir := t.TempDir()
	path, err := WriteExportFile(dir, "m")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, ExportFilename) {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != Export("m") {
		t.Errorf("file content = %q", data)
	}
}
