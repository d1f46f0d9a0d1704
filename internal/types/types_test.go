package types

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRenderConfig(t *testing.T) {
	cfg := DefaultRenderConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, EngineRegex, cfg.Engine)
	assert.Equal(t, [4]int{3, 4, 5, 6}, cfg.HeadingLevels)
	assert.True(t, cfg.EscapeHTML)
	assert.True(t, cfg.Compat.CountImagesAsLinks)
	assert.True(t, cfg.Compat.QuoteClosureLint)
	assert.False(t, cfg.Compat.WrapAllLists)
	assert.Equal(t, HighlightHeuristic, cfg.Highlight.Engine)
	assert.Contains(t, cfg.Highlight.Palette, "keyword")
	assert.Contains(t, cfg.Styles.Pre, "#1e1e1e")
}

func TestHeadingLevel(t *testing.T) {
	cfg := DefaultRenderConfig()
	assert.Equal(t, 3, cfg.HeadingLevel(1))
	assert.Equal(t, 6, cfg.HeadingLevel(4))
	assert.Equal(t, 0, cfg.HeadingLevel(0))
	assert.Equal(t, 0, cfg.HeadingLevel(5))
}

func TestParseRenderConfigOverlay(t *testing.T) {
	cfg, err := ParseRenderConfig([]byte("headingLevels: [1, 2, 3, 4]\nhighlight:\n  palette:\n    keyword: \"color:red;\"\n"))
	require.NoError(t, err)
	assert.Equal(t, [4]int{1, 2, 3, 4}, cfg.HeadingLevels)
	assert.Equal(t, "color:red;", cfg.Highlight.Palette["keyword"])
	// untouched keys keep their defaults
	assert.Equal(t, "color:#6a9955;", cfg.Highlight.Palette["comment"])
	assert.True(t, cfg.EscapeHTML)
}

func TestParseRenderConfigRejectsUnknownEngine(t *testing.T) {
	_, err := ParseRenderConfig([]byte("engine: pandoc\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEngine))

	_, err = ParseRenderConfig([]byte("highlight:\n  engine: rainbow\n"))
	assert.True(t, errors.Is(err, ErrUnknownEngine))
}

func TestParseRenderConfigRejectsBadLevels(t *testing.T) {
	_, err := ParseRenderConfig([]byte("headingLevels: [0, 2, 3, 4]\n"))
	assert.Error(t, err)
}

func TestLoadRenderConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.yaml")
	require.NoError(t, os.WriteFile(path, []byte("escapeHTML: false\n"), 0o644))
	cfg, err := LoadRenderConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.EscapeHTML)

	_, err = LoadRenderConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCloneIsDeep(t *testing.T) {
	cfg := DefaultRenderConfig()
	cp := cfg.Clone()
	cp.Highlight.Palette["keyword"] = "x"
	cp.HeadingLevels[0] = 1
	assert.NotEqual(t, "x", cfg.Highlight.Palette["keyword"])
	assert.Equal(t, 3, cfg.HeadingLevels[0])
}
