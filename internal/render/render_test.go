// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

func sampled(t *testing.T) (fuzz.Func, types.Series) {
	t.Helper()
	f, err := fuzz.New(fuzz.S, []float64{2, 8}, fuzz.DefaultLevels)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	series, err := fuzz.Sample(f, 64)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	return f, series
}

func TestPlotWritesImage(t *testing.T) {
	f, series := sampled(t)

	for _, ext := range []string{".png", ".svg", ".pdf"} {
		out := filepath.Join(t.TempDir(), "s"+ext)
		err := Plot(f, series, Options{Out: out})
		if err != nil {
			t.Fatalf("Plot(%s): %v", ext, err)
		}
		info, err := os.Stat(out)
		if err != nil {
			t.Fatalf("Stat(%s): %v", out, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s: wrote empty image", ext)
		}
	}
}

func TestPlotRejectsUnknownFormat(t *testing.T) {
	f, series := sampled(t)
	err := Plot(f, series, Options{Out: filepath.Join(t.TempDir(), "s.bmp")})
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestPlotRejectsShortSeries(t *testing.T) {
	f, _ := sampled(t)
	err := Plot(f, types.Series{X: []float64{1}, Y: []float64{0}}, Options{
		Out: filepath.Join(t.TempDir(), "s.png"),
	})
	if err == nil {
		t.Fatal("expected error for single-point series")
	}
}
