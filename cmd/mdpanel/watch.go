package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/mdpanel"
)

var watchExportDir string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-render a file on every save and autosave the buffer",
	Long: `Watch re-renders a markdown file whenever it changes on disk. Each render
is autosaved to the store and, with --output, exported as a standalone HTML
document. Rapid successive writes are coalesced (watch.debounce).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		opts, err := renderOptions()
		if err != nil {
			return err
		}
		w := &watcher{
			path:   args[0],
			panel:  mdpanel.NewPanel(s, viperKey(), opts...),
			export: watchExportDir,
			out:    cmd.OutOrStdout(),
		}
		return w.run(ctx, viper.GetDuration("watch.debounce"))
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchExportDir, "output", "o", "", "Export directory (no export when empty)")
	rootCmd.AddCommand(watchCmd)
}

func viperKey() string {
	return viper.GetString("store.key")
}

type watcher struct {
	path   string
	panel  *mdpanel.Panel
	export string
	out    io.Writer
}

// run renders once, then on every coalesced change until ctx is done.
func (w *watcher) run(ctx context.Context, debounce time.Duration) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// 监听目录：编辑器保存时常常是 rename 而不是 write
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(w.path)

	w.render(ctx)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			slog.Debug("file changed", "path", ev.Name, "op", ev.Op.String())
			timer.Reset(debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "error", err)
		case <-timer.C:
			w.render(ctx)
		}
	}
}

func (w *watcher) render(ctx context.Context) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		slog.Warn("read failed", "path", w.path, "error", err)
		return
	}

	start := time.Now()
	doc, err := w.panel.Update(ctx, string(data))
	if doc == nil {
		slog.Error("render failed", "error", err)
		return
	}
	if err != nil {
		slog.Warn("autosave failed", "error", err)
	}
	slog.Debug("rendered", "path", w.path, "took", time.Since(start))

	if w.export != "" {
		if _, err := mdpanel.WriteExportFile(w.export, doc.Markup); err != nil {
			slog.Warn("export failed", "error", err)
		}
	}

	fmt.Fprintf(w.out, "%s  %s lines  %s chars  %d issue(s)\n",
		time.Now().Format("15:04:05"), valueStyle.Render(fmt.Sprint(doc.Stats.Lines)),
		levelStyles[doc.CharLevel].Render(fmt.Sprint(doc.Stats.Chars)), len(doc.Issues))
}
