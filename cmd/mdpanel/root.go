package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/mdpanel"
	"github.com/riverfjs/mdpanel/internal/store"
)

var (
	cfgFile   string
	verbose   bool
	engine    string
	highlight string
	noEscape  bool
)

var rootCmd = &cobra.Command{
	Use:   "mdpanel",
	Short: "Render markdown to styled HTML fragments",
	Long: `mdpanel renders a lightweight markdown dialect to inline-styled HTML,
reports document statistics and lint warnings, and keeps an autosaved buffer.

Examples:
  mdpanel render notes.md
  mdpanel stats notes.md
  mdpanel lint notes.md
  mdpanel export notes.md -o out/
  mdpanel watch notes.md -o out/
  mdpanel example | mdpanel render`,
	SilenceUsage:      true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		if !verbose {
			mdpanel.SetLogger(log.New(io.Discard, "", 0))
		}
		return initConfig()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./mdpanel.yaml or $XDG_CONFIG_HOME/mdpanel/mdpanel.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&engine, "engine", "", "Markdown engine: regex or commonmark")
	flags.StringVar(&highlight, "highlight", "", "Code highlighter: heuristic, chroma or none")
	flags.BoolVar(&noEscape, "no-escape", false, "Pass embedded HTML through unescaped")

	_ = viper.BindPFlag("highlight.engine", flags.Lookup("highlight"))
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mdpanel")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "mdpanel"))
		}
	}

	viper.SetEnvPrefix("MDPANEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("render_config", "")
	viper.SetDefault("store.path", "")
	viper.SetDefault("store.key", store.AutosaveKey)
	viper.SetDefault("highlight.engine", "")
	viper.SetDefault("watch.debounce", 200*time.Millisecond)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	if used := viper.ConfigFileUsed(); used != "" {
		slog.Debug("loaded config", "file", used)
	}
	return nil
}

// renderOptions builds the per-call options from the config file and flags.
func renderOptions() ([]mdpanel.Option, error) {
	var opts []mdpanel.Option
	if path := viper.GetString("render_config"); path != "" {
		cfg, err := mdpanel.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded render config", "file", path, "engine", cfg.Engine)
		opts = append(opts, mdpanel.WithConfig(cfg))
	}
	switch mdpanel.Engine(engine) {
	case "", mdpanel.EngineRegex, mdpanel.EngineCommonMark:
	default:
		return nil, fmt.Errorf("%w: %q", mdpanel.ErrUnknownEngine, engine)
	}
	if engine != "" {
		opts = append(opts, mdpanel.WithEngine(mdpanel.Engine(engine)))
	}
	hl := viper.GetString("highlight.engine")
	switch mdpanel.HighlightEngine(hl) {
	case "", mdpanel.HighlightHeuristic, mdpanel.HighlightChroma, mdpanel.HighlightNone:
	default:
		return nil, fmt.Errorf("%w: highlight %q", mdpanel.ErrUnknownEngine, hl)
	}
	if hl != "" {
		opts = append(opts, mdpanel.WithHighlight(mdpanel.HighlightEngine(hl)))
	}
	if noEscape {
		opts = append(opts, mdpanel.WithEscape(false))
	}
	return opts, nil
}

// readInput reads the named file, or stdin when no file or "-" is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func openStore() (*store.Store, error) {
	return store.Open(store.Config{Path: viper.GetString("store.path")})
}
