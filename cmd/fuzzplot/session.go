// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/internal/prompt"
	"github.com/pdiddy/fuzzplot/internal/render"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Start an interactive plotting session",
	Long: `Session prompts for a function kind, its parameters and optional output
levels, writes the plot, prints the piecewise definition, and then
evaluates any x values you enter. Invalid input is re-prompted.`,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := plotConfig(cmd)

	plotFn := func(f fuzz.Func, series types.Series) (string, error) {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
		out := filepath.Join(cfg.OutputDir, string(f.Kind())+".png")
		opts := render.Options{Out: out, Width: cfg.Width, Height: cfg.Height}
		if err := render.Plot(f, series, opts); err != nil {
			return "", err
		}
		return out, nil
	}

	return prompt.New(os.Stdin, os.Stdout, cfg.Samples, plotFn).Run()
}

func init() {
	sessionCmd.Flags().Int("samples", 0, "number of domain samples (default from config, 500)")
	sessionCmd.Flags().String("output-dir", "", "directory for session plots")

	rootCmd.AddCommand(sessionCmd)
}
