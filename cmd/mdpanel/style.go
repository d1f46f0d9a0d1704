package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/mdpanel"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle = lipgloss.NewStyle().Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fa8"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8f8"))

	levelStyles = map[mdpanel.CharLevel]lipgloss.Style{
		mdpanel.CharLevelOK:   okStyle,
		mdpanel.CharLevelWarn: warnStyle,
		mdpanel.CharLevelHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("#f88")),
	}
)

// formatStats renders the panel's fixed-label counters, one per line.
func formatStats(s mdpanel.Stats, level mdpanel.CharLevel) string {
	rows := []struct {
		label string
		value string
	}{
		{"Lines", fmt.Sprint(s.Lines)},
		{"Words", fmt.Sprint(s.Words)},
		{"Chars", levelStyles[level].Render(fmt.Sprint(s.Chars))},
		{"Headings", fmt.Sprint(s.Headings)},
		{"Code blocks", fmt.Sprint(s.CodeBlocks)},
		{"Links", fmt.Sprint(s.Links)},
		{"Images", fmt.Sprint(s.Images)},
		{"Graphemes", fmt.Sprint(s.Graphemes)},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(labelStyle.Render(r.label) + valueStyle.Render(r.value) + "\n")
	}
	return b.String()
}

// formatIssues renders lint results, or a single ok line for a clean pass.
func formatIssues(issues mdpanel.Issues) string {
	if issues.Clean() {
		return okStyle.Render("no issues found") + "\n"
	}
	var b strings.Builder
	for _, msg := range issues.Strings() {
		b.WriteString(warnStyle.Render("! ") + msg + "\n")
	}
	return b.String()
}
