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

var plotCmd = &cobra.Command{
	Use:   "plot [kind]",
	Short: "Render a membership function as a line plot image",
	Long: `Plot samples the chosen membership function over its padded support and
writes a labeled line plot. The image format follows the output file
extension (png, svg or pdf).

The function is given either as a kind plus --params, or loaded from a
YAML function file written by --save:

  fuzzplot plot s --params "2,8"
  fuzzplot plot triangle --params "1,3,5" --y-max 0.8 --out tri.svg
  fuzzplot plot --file s.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlot,
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg := plotConfig(cmd)

	file, _ := cmd.Flags().GetString("file")

	var f fuzz.Func
	switch {
	case file != "":
		ff, err := fuzz.ReadFunctionFile(file)
		if err != nil {
			return err
		}
		f, err = ff.Function.Build()
		if err != nil {
			return fmt.Errorf("function file %s: %w", file, err)
		}
	case len(args) == 1:
		var err error
		f, err = funcFromFlags(cmd, args[0])
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("function kind required: give a kind argument or --file")
	}

	series, err := fuzz.Sample(f, cfg.Samples)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		out = filepath.Join(cfg.OutputDir, string(f.Kind())+".png")
	}

	title, _ := cmd.Flags().GetString("title")
	opts := render.Options{
		Title:  title,
		Out:    out,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	if err := render.Plot(f, series, opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", out)

	if save, _ := cmd.Flags().GetString("save"); save != "" {
		if err := fuzz.WriteFunctionFile(save, f, series); err != nil {
			return err
		}
		fmt.Printf("Saved function file %s\n", save)
	}
	return nil
}

func init() {
	addSpecFlags(plotCmd)
	plotCmd.Flags().Int("samples", 0, "number of domain samples (default from config, 500)")
	plotCmd.Flags().String("out", "", "output image path (default: <output-dir>/<kind>.png)")
	plotCmd.Flags().String("output-dir", "", "directory for default output paths")
	plotCmd.Flags().String("title", "", "plot title (default: the function name)")
	plotCmd.Flags().String("save", "", "also save the function and series as a YAML file")
	plotCmd.Flags().String("file", "", "load the function from a saved YAML file instead of flags")

	rootCmd.AddCommand(plotCmd)
}
