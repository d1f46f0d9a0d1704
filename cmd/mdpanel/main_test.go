package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/mdpanel"
	"github.com/riverfjs/mdpanel/internal/store"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		engine, highlight, noEscape = "", "", false
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "doc.md", "# Title\n**b**")
	out, err := execute(t, "render", path)
	require.NoError(t, err)
	assert.Equal(t, "<h3>Title</h3><br><b>b</b>\n", out)
}

func TestRenderCommandUnknownEngine(t *testing.T) {
	path := writeFile(t, "doc.md", "x")
	_, err := execute(t, "render", "--engine", "bogus", path)
	assert.ErrorIs(t, err, mdpanel.ErrUnknownEngine)
}

func TestRenderCommandUnknownHighlight(t *testing.T) {
	path := writeFile(t, "doc.md", "```go\nx := 1\n```")
	_, err := execute(t, "render", "--highlight", "chrome", path)
	assert.ErrorIs(t, err, mdpanel.ErrUnknownEngine)

	out, err := execute(t, "render", "--highlight", "none", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "<span")
}

func TestRestoreCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "autosave.db")
	t.Setenv("MDPANEL_STORE_PATH", dbPath)

	out, err := execute(t, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "no saved buffer")

	s, err := store.Open(store.Config{Path: dbPath})
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), store.AutosaveKey, []byte("# kept")))
	require.NoError(t, s.Close())

	out, err = execute(t, "restore")
	require.NoError(t, err)
	assert.Contains(t, out, "saved ")
	assert.True(t, strings.HasSuffix(out, "# kept"), out)
}

func TestExportCommand(t *testing.T) {
	path := writeFile(t, "doc.md", "*i*")
	dir := t.TempDir()
	_, err := execute(t, "export", path, "-o", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, mdpanel.ExportFilename))
	require.NoError(t, err)
	assert.Equal(t, mdpanel.Export("<i>i</i>"), string(data))
}

func TestExtractCommand(t *testing.T) {
	path := writeFile(t, "doc.md", "```go\npackage main\n```\n```go\npackage b\n```")
	dir := t.TempDir()
	_, err := execute(t, "extract", path, "-o", dir)
	require.NoError(t, err)

	for _, name := range []string{"snippet.go", "snippet-2.go"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestFormatCommandInvalidJSON(t *testing.T) {
	path := writeFile(t, "bad.json", `{"a":}`)
	_, err := execute(t, "format", path)
	var fe *mdpanel.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestFormatStats(t *testing.T) {
	s := mdpanel.ComputeStats("a b\nc\n", nil)
	out := formatStats(s, mdpanel.LevelFor(s.Chars))
	assert.Equal(t, 8, strings.Count(out, "\n"))
	assert.Contains(t, out, "Lines")
	assert.Contains(t, out, "Code blocks")
}

func TestFormatIssues(t *testing.T) {
	assert.Contains(t, formatIssues(mdpanel.Issues{}), "no issues found")
	out := formatIssues(mdpanel.Lint("> q", nil))
	assert.Contains(t, out, "quote block may not be closed")
}
