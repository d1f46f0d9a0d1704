package mdpanel

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config    *RenderConfig
	Engine    Engine
	Highlight HighlightEngine
	Escape    *bool
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		opts.Config = config
	}
}

// WithEngine selects the markdown front end for this call.
func WithEngine(engine Engine) Option {
	return func(opts *ConvertOptions) {
		opts.Engine = engine
	}
}

// WithHighlight selects the code highlighter for this call.
func WithHighlight(engine HighlightEngine) Option {
	return func(opts *ConvertOptions) {
		opts.Highlight = engine
	}
}

// WithEscape sets whether embedded markup in the source is escaped.
func WithEscape(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Escape = &enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// renderConfig returns the config for one call. Overrides are applied to a
// clone so the shared config is never modified.
func (o *ConvertOptions) renderConfig() *RenderConfig {
	config := o.Config
	if config == nil {
		config = DefaultConfig()
	}
	if o.Engine == "" && o.Highlight == "" && o.Escape == nil {
		return config
	}
	config = config.Clone()
	if o.Engine != "" {
		config.Engine = o.Engine
	}
	if o.Highlight != "" {
		config.Highlight.Engine = o.Highlight
	}
	if o.Escape != nil {
		config.EscapeHTML = *o.Escape
	}
	return config
}
