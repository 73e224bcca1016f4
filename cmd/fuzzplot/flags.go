// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

// addSpecFlags registers the flags shared by every command that builds a
// membership function from the command line.
func addSpecFlags(cmd *cobra.Command) {
	cmd.Flags().String("params", "", "comma-separated shape parameters, e.g. \"2,5,8\"")
	cmd.Flags().Float64("y-min", 0, "lower output level, in [0, 1)")
	cmd.Flags().Float64("y-max", 1, "upper output level, in (0, 1]")
}

// funcFromFlags builds a validated membership function from the kind
// argument and the shared spec flags.
func funcFromFlags(cmd *cobra.Command, kindArg string) (fuzz.Func, error) {
	kind, err := fuzz.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}

	raw, _ := cmd.Flags().GetString("params")
	params, err := parseParams(raw)
	if err != nil {
		return nil, err
	}

	yMin, _ := cmd.Flags().GetFloat64("y-min")
	yMax, _ := cmd.Flags().GetFloat64("y-max")

	return fuzz.New(kind, params, fuzz.Levels{Min: yMin, Max: yMax})
}

// parseParams splits a comma-separated list of floats.
func parseParams(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("no parameters given: use --params, e.g. --params \"2,8\"")
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid parameter %q: %w", strings.TrimSpace(part), err)
		}
		out = append(out, v)
	}
	return out, nil
}

// plotConfig assembles the plot settings from config file, environment
// and flags. Flags win when set.
func plotConfig(cmd *cobra.Command) types.PlotConfig {
	cfg := types.PlotConfig{
		Samples:   viper.GetInt("plot.samples"),
		OutputDir: viper.GetString("plot.output_dir"),
		Width:     viper.GetFloat64("plot.width"),
		Height:    viper.GetFloat64("plot.height"),
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir, _ = cmd.Flags().GetString("output-dir")
	}
	return cfg.Normalize()
}
