package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/riverfjs/mdpanel"
)

var (
	outputDir  string
	jsonOutput bool
	strictLint bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render markdown to an HTML fragment",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), mdpanel.Render(text, opts...))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show document statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		doc, err := mdpanel.Process(cmd.Context(), text, opts...)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(doc.Stats)
		}
		fmt.Fprint(cmd.OutOrStdout(), formatStats(doc.Stats, doc.CharLevel))
		return nil
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Check markdown for common mistakes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		doc, err := mdpanel.Process(cmd.Context(), text, opts...)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc.Issues); err != nil {
				return err
			}
		} else {
			fmt.Fprint(cmd.OutOrStdout(), formatIssues(doc.Issues))
		}
		if strictLint && !doc.Issues.Clean() {
			return fmt.Errorf("%d lint issue(s)", len(doc.Issues))
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export markdown as a standalone HTML document",
	Long: `Export renders markdown and wraps it in a standalone HTML document.
The document is written to <output>/` + mdpanel.ExportFilename + `, or to stdout with -o -.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		opts, err := renderOptions()
		if err != nil {
			return err
		}
		markup := mdpanel.Render(text, opts...)
		if outputDir == "-" {
			return mdpanel.WriteExport(cmd.OutOrStdout(), markup)
		}
		path, err := mdpanel.WriteExportFile(outputDir, markup)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "wrote", path)
		return nil
	},
}

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Pretty-print JSON or re-indent bracketed code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		out, err := mdpanel.Format(text)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Save every fenced code block as a file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		for _, f := range mdpanel.ExtractCodeFiles(text) {
			path := filepath.Join(outputDir, f.FileName)
			if err := os.WriteFile(path, f.Data(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print the sample document",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), mdpanel.ExampleDocument)
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Print the autosaved buffer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		opts, err := renderOptions()
		if err != nil {
			return err
		}
		key := viperKey()
		panel := mdpanel.NewPanel(s, key, opts...)
		if _, err := panel.Restore(cmd.Context()); err != nil {
			return err
		}
		if panel.Text() == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "no saved buffer")
			return nil
		}
		if at, err := s.UpdatedAt(cmd.Context(), key); err == nil {
			fmt.Fprintln(cmd.ErrOrStderr(), "saved", at.Local().Format(time.DateTime))
		}
		fmt.Fprint(cmd.OutOrStdout(), panel.Text())
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print statistics as JSON")
	lintCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print issues as JSON")
	lintCmd.Flags().BoolVar(&strictLint, "strict", false, "Exit with an error when issues are found")
	exportCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory, or - for stdout")
	extractCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")

	rootCmd.AddCommand(renderCmd, statsCmd, lintCmd, exportCmd, formatCmd, extractCmd, exampleCmd, restoreCmd)
}

