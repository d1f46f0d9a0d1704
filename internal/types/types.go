package types

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultConfigData []byte

// ErrUnknownEngine is returned when a config names an engine that does not exist.
var ErrUnknownEngine = errors.New("unknown engine")

// Engine selects the markdown front end.
type Engine string

const (
	// EngineRegex is the placeholder/pattern pipeline.
	EngineRegex Engine = "regex"
	// EngineCommonMark parses with goldmark and walks the AST.
	EngineCommonMark Engine = "commonmark"
)

// HighlightEngine selects how rendered code containers are colorized.
type HighlightEngine string

const (
	HighlightHeuristic HighlightEngine = "heuristic"
	HighlightChroma    HighlightEngine = "chroma"
	HighlightNone      HighlightEngine = "none"
)

// Styles holds the inline style attribute emitted for each element.
type Styles struct {
	Table      string `yaml:"table"`
	TableHead  string `yaml:"tableHead"`
	HeaderCell string `yaml:"headerCell"`
	BodyCell   string `yaml:"bodyCell"`
	List       string `yaml:"list"`
	Image      string `yaml:"image"`
	Link       string `yaml:"link"`
	Code       string `yaml:"code"`
	Rule       string `yaml:"rule"`
	Quote      string `yaml:"quote"`
	Pre        string `yaml:"pre"`
}

// Compat toggles the legacy behaviours kept for output compatibility.
type Compat struct {
	// WrapAllLists wraps every run of list items; legacy output wraps only the first.
	WrapAllLists bool `yaml:"wrapAllLists"`
	// CountImagesAsLinks makes image syntax count toward the link counter as well.
	CountImagesAsLinks bool `yaml:"countImagesAsLinks"`
	// QuoteClosureLint reports the quote-closure warning whenever a quote line exists.
	QuoteClosureLint bool `yaml:"quoteClosureLint"`
}

// HighlightConfig configures the code colorizer.
type HighlightConfig struct {
	Engine  HighlightEngine   `yaml:"engine"`
	Palette map[string]string `yaml:"palette"`
	// ChromaStyle names the chroma style used by the chroma engine.
	ChromaStyle string `yaml:"chromaStyle"`
}

// MermaidConfig configures rendering of mermaid fences.
type MermaidConfig struct {
	Enabled bool   `yaml:"enabled"`
	Theme   string `yaml:"theme"`
}

// RenderConfig is the complete render configuration.
type RenderConfig struct {
	Engine Engine `yaml:"engine"`
	// HeadingLevels maps 1..4 marker characters to the emitted heading level.
	HeadingLevels [4]int          `yaml:"headingLevels"`
	EscapeHTML    bool            `yaml:"escapeHTML"`
	NormalizeNFC  bool            `yaml:"normalizeNFC"`
	MaxInputBytes int             `yaml:"maxInputBytes"`
	Styles        Styles          `yaml:"styles"`
	Compat        Compat          `yaml:"compat"`
	Highlight     HighlightConfig `yaml:"highlight"`
	Mermaid       MermaidConfig   `yaml:"mermaid"`
}

// DefaultRenderConfig returns a fresh copy of the embedded defaults.
func DefaultRenderConfig() *RenderConfig {
	var cfg RenderConfig
	if err := yaml.Unmarshal(defaultConfigData, &cfg); err != nil {
		panic(fmt.Sprintf("internal error: failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// LoadRenderConfig overlays the YAML file at path on the defaults.
func LoadRenderConfig(path string) (*RenderConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRenderConfig(data)
}

// ParseRenderConfig overlays data on the defaults and validates the result.
func ParseRenderConfig(data []byte) (*RenderConfig, error) {
	cfg := DefaultRenderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse render config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enum fields and level ranges.
func (c *RenderConfig) Validate() error {
	switch c.Engine {
	case EngineRegex, EngineCommonMark:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEngine, c.Engine)
	}
	switch c.Highlight.Engine {
	case HighlightHeuristic, HighlightChroma, HighlightNone:
	default:
		return fmt.Errorf("%w: highlight %q", ErrUnknownEngine, c.Highlight.Engine)
	}
	for i, lvl := range c.HeadingLevels {
		if lvl < 1 || lvl > 6 {
			return fmt.Errorf("headingLevels[%d] = %d: want 1..6", i, lvl)
		}
	}
	if c.MaxInputBytes < 0 {
		return fmt.Errorf("maxInputBytes must not be negative")
	}
	return nil
}

// HeadingLevel returns the emitted level for a heading of markers characters,
// or 0 when markers is outside 1..4.
func (c *RenderConfig) HeadingLevel(markers int) int {
	if markers < 1 || markers > len(c.HeadingLevels) {
		return 0
	}
	return c.HeadingLevels[markers-1]
}

// Clone returns a deep copy so per-call overrides never touch shared defaults.
func (c *RenderConfig) Clone() *RenderConfig {
	cp := *c
	if c.Highlight.Palette != nil {
		cp.Highlight.Palette = make(map[string]string, len(c.Highlight.Palette))
		for k, v := range c.Highlight.Palette {
			cp.Highlight.Palette[k] = v
		}
	}
	return &cp
}
