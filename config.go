package mdpanel

import (
	"sync"

	"github.com/riverfjs/mdpanel/internal/format"
	"github.com/riverfjs/mdpanel/internal/placeholder"
	"github.com/riverfjs/mdpanel/internal/stats"
	"github.com/riverfjs/mdpanel/internal/types"
)

// 导出类型别名
type (
	RenderConfig     = types.RenderConfig
	Styles           = types.Styles
	Compat           = types.Compat
	HighlightConfig  = types.HighlightConfig
	MermaidConfig    = types.MermaidConfig
	Engine           = types.Engine
	HighlightEngine  = types.HighlightEngine
	PlaceholderTable = placeholder.Table
	Stats            = stats.Record
	Issue            = stats.Issue
	Issues           = stats.Issues
	IssueKind        = stats.IssueKind
	FormatError      = format.FormatError
	FormatKind       = format.Kind
)

const (
	EngineRegex      = types.EngineRegex
	EngineCommonMark = types.EngineCommonMark

	HighlightHeuristic = types.HighlightHeuristic
	HighlightChroma    = types.HighlightChroma
	HighlightNone      = types.HighlightNone
)

// ErrUnknownEngine is returned when a config names an engine that does not exist.
var ErrUnknownEngine = types.ErrUnknownEngine

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers that need to change it should Clone it first.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// LoadConfig overlays the YAML file at path on the defaults.
func LoadConfig(path string) (*RenderConfig, error) {
	return types.LoadRenderConfig(path)
}

// ParseConfig overlays YAML data on the defaults.
func ParseConfig(data []byte) (*RenderConfig, error) {
	return types.ParseRenderConfig(data)
}
