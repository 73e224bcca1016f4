// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PlotConfig holds settings for sampling and rendering plots.
type PlotConfig struct {
	// Samples is the number of evenly spaced domain points computed
	// per plot (default 500).
	Samples int `json:"samples" yaml:"samples"`

	// OutputDir is the directory plot images are written to when no
	// explicit output path is given (default "plots").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Width and Height are the image dimensions in centimeters
	// (defaults 16 and 12).
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// DefaultPlotConfig returns the built-in plot settings.
func DefaultPlotConfig() PlotConfig {
	return PlotConfig{
		Samples:   500,
		OutputDir: "plots",
		Width:     16,
		Height:    12,
	}
}

// Normalize fills zero-valued fields with their defaults.
func (c PlotConfig) Normalize() PlotConfig {
	def := DefaultPlotConfig()
	if c.Samples <= 0 {
		c.Samples = def.Samples
	}
	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	return c
}
