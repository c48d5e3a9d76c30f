package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dgallion1/docindex/internal/config"
	"github.com/dgallion1/docindex/internal/pipeline"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "docindex",
		Short: "Index the PDF and HTML documentation under ./docs",
		Long: `docindex scans the docs directory, extracts a title and version from every
PDF and index.html at least two folders deep, and writes docs.json plus a
browsable docs/index.html.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := slog.New(slog.NewTextHandler(cmd.OutOrStdout(), nil))

			cfg := config.Default()
			res, err := pipeline.Run(cfg, log)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), cfg, res.Stats)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("docindex: "+err.Error()))
		os.Exit(1)
	}
}
