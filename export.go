package mdpanel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ExportFilename is the default file name for an exported document.
const ExportFilename = "markdown-export.html"

const (
	exportHead = "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n<title>Markdown Export</title>\n<style>\n" +
		"body { font-family: system-ui, -apple-system, sans-serif; padding: 20px; background: #f5f5f5; color: #333; }\n" +
		"pre { background: #f0f0f0; padding: 10px; border-radius: 4px; overflow-x: auto; }\n" +
		"code { background: #f0f0f0; padding: 2px 4px; border-radius: 3px; }\n" +
		"table { border-collapse: collapse; width: 100%; margin: 10px 0; }\n" +
		"th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }\n" +
		"th { background: #f0f0f0; }\n" +
		"blockquote { border-left: 3px solid #ddd; padding-left: 10px; margin: 10px 0; }\n" +
		"img { max-width: 100%; height: auto; }\n" +
		"</style>\n</head>\n<body>\n"
	exportTail = "\n</body>\n</html>"
)

// Export 将 markup 包装为独立的 HTML 文档
//
// 文档骨架是固定的，markup 原样嵌入 body。
func Export(markup string) string {
	return exportHead + markup + exportTail
}

// WriteExport writes the standalone document for markup to w.
func WriteExport(w io.Writer, markup string) error {
	if _, err := io.WriteString(w, Export(markup)); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// WriteExportFile writes the standalone document to dir/ExportFilename and
// returns the path written.
func WriteExportFile(dir, markup string) (string, error) {
	path := filepath.Join(dir, ExportFilename)
	if err := os.WriteFile(path, []byte(Export(markup)), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}
