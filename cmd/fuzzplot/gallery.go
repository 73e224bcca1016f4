// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/internal/render"
)

var galleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render one example plot per function kind",
	Long: `Gallery writes an example plot for every supported membership function
into the output directory, including scaled-level variants.`,
	RunE: runGallery,
}

// galleryExamples covers every kind once, two of them with non-default
// output levels.
var galleryExamples = []struct {
	kind   fuzz.Kind
	params []float64
	levels fuzz.Levels
}{
	{fuzz.Linear, []float64{4, 6}, fuzz.Levels{Min: 0.2, Max: 0.69}},
	{fuzz.Triangle, []float64{1, 3, 5}, fuzz.DefaultLevels},
	{fuzz.Trapezoid, []float64{1, 4, 6, 9}, fuzz.DefaultLevels},
	{fuzz.S, []float64{2, 8}, fuzz.Levels{Min: 0.5, Max: 1}},
	{fuzz.Z, []float64{2, 8}, fuzz.DefaultLevels},
	{fuzz.Pi, []float64{2, 5, 8}, fuzz.Levels{Min: 0.42, Max: 0.69}},
	{fuzz.Gauss, []float64{5, 1}, fuzz.DefaultLevels},
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg := plotConfig(cmd)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, ex := range galleryExamples {
		f, err := fuzz.New(ex.kind, ex.params, ex.levels)
		if err != nil {
			return fmt.Errorf("gallery example %s: %w", ex.kind, err)
		}
		series, err := fuzz.Sample(f, cfg.Samples)
		if err != nil {
			return err
		}
		out := filepath.Join(cfg.OutputDir, string(ex.kind)+".png")
		opts := render.Options{Out: out, Width: cfg.Width, Height: cfg.Height}
		if err := render.Plot(f, series, opts); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", out)
	}
	return nil
}

func init() {
	galleryCmd.Flags().Int("samples", 0, "number of domain samples (default from config, 500)")
	galleryCmd.Flags().String("output-dir", "", "directory for the example plots")

	rootCmd.AddCommand(galleryCmd)
}
