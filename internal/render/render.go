// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render draws sampled membership functions as labeled line plots.
package render

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

// Options configure a single plot rendering.
type Options struct {
	// Title overrides the default title (the function's display name).
	Title string

	// Out is the image path; the extension selects the format.
	Out string

	// Width and Height are the image dimensions in centimeters.
	Width  float64
	Height float64
}

// supportedFormats are the image extensions the plot backend can write.
var supportedFormats = map[string]bool{
	".eps": true, ".jpg": true, ".jpeg": true, ".pdf": true,
	".png": true, ".svg": true, ".tif": true, ".tiff": true,
}

var (
	curveColor   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	ceilingColor = color.RGBA{G: 160, A: 255}
	floorColor   = color.RGBA{R: 200, A: 255}
	guideColor   = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

// Plot renders the sampled series of f as a line plot with guide lines at
// the output levels and at each positional shape parameter, then writes
// the image to opts.Out.
func Plot(f fuzz.Func, series types.Series, opts Options) error {
	if series.Len() < 2 {
		return fmt.Errorf("series has %d point(s), need at least 2", series.Len())
	}
	ext := strings.ToLower(filepath.Ext(opts.Out))
	if !supportedFormats[ext] {
		return fmt.Errorf("unsupported image format %q in %q: use png, svg or pdf", ext, opts.Out)
	}

	cfg := types.PlotConfig{Width: opts.Width, Height: opts.Height}.Normalize()

	title := opts.Title
	if title == "" {
		title = fuzz.DisplayName(f.Kind())
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "µ(x)"
	p.Y.Min, p.Y.Max = -0.05, 1.05

	xys := make(plotter.XYs, series.Len())
	for i := range xys {
		xys[i].X = series.X[i]
		xys[i].Y = series.Y[i]
	}
	curve, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("building curve: %w", err)
	}
	curve.Color = curveColor
	curve.Width = vg.Points(1.5)
	p.Add(curve)
	p.Legend.Add(fuzz.DisplayName(f.Kind()), curve)

	xMin, xMax := series.X[0], series.X[series.Len()-1]
	lv := f.Levels()

	ceiling, err := horizontalGuide(lv.Max, xMin, xMax, ceilingColor)
	if err != nil {
		return err
	}
	p.Add(ceiling)
	p.Legend.Add("y_max", ceiling)

	floor, err := horizontalGuide(lv.Min, xMin, xMax, floorColor)
	if err != nil {
		return err
	}
	p.Add(floor)
	p.Legend.Add("y_min", floor)

	for _, param := range f.Params() {
		if param.Name == "sigma" {
			// sigma is a width, not a domain position.
			continue
		}
		guide, err := verticalGuide(param.Value, p.Y.Min, p.Y.Max)
		if err != nil {
			return err
		}
		p.Add(guide)
		p.Legend.Add(param.Name, guide)
	}

	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	log.Debug().
		Str("out", opts.Out).
		Str("kind", string(f.Kind())).
		Int("samples", series.Len()).
		Msg("rendering plot")

	if err := p.Save(vg.Length(cfg.Width)*vg.Centimeter, vg.Length(cfg.Height)*vg.Centimeter, opts.Out); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}

// horizontalGuide builds a dotted level line spanning [xMin, xMax].
func horizontalGuide(y, xMin, xMax float64, c color.Color) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: xMin, Y: y}, {X: xMax, Y: y}})
	if err != nil {
		return nil, fmt.Errorf("building level guide: %w", err)
	}
	line.Color = c
	line.Dashes = []vg.Length{vg.Points(1), vg.Points(3)}
	return line, nil
}

// verticalGuide builds a dashed parameter line spanning the y axis.
func verticalGuide(x, yMin, yMax float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: yMin}, {X: x, Y: yMax}})
	if err != nil {
		return nil, fmt.Errorf("building parameter guide: %w", err)
	}
	line.Color = guideColor
	line.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	return line, nil
}
