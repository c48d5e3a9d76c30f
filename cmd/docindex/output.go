package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/docindex/internal/config"
	"github.com/dgallion1/docindex/internal/pipeline"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 1)
)

func summaryText(cfg config.Config, s pipeline.Stats) string {
	body := successStyle.Render(fmt.Sprintf("%d documents indexed", s.Indexed)) + "\n" +
		dimStyle.Render(fmt.Sprintf("seen %d, skipped %d, failed %d", s.Seen, s.Skipped, s.Failed)) + "\n" +
		fmt.Sprintf("structure: %s\npage:      %s", cfg.OutputJSON, cfg.OutputHTML)
	return boxStyle.Render(body)
}

func printSummary(w io.Writer, cfg config.Config, s pipeline.Stats) {
	fmt.Fprintln(w, summaryText(cfg, s))
}
