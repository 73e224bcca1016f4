// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fuzzplot/internal/fuzz"
	"github.com/pdiddy/fuzzplot/pkg/types"
)

// recordingPlot captures the functions handed to the renderer.
type recordingPlot struct {
	kinds []fuzz.Kind
	err   error
}

func (r *recordingPlot) plot(f fuzz.Func, series types.Series) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.kinds = append(r.kinds, f.Kind())
	return "plots/" + string(f.Kind()) + ".png", nil
}

func run(t *testing.T, input string, plot PlotFunc) string {
	t.Helper()
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, 64, plot)
	require.NoError(t, s.Run())
	return out.String()
}

func TestSessionPlotsAndEvaluates(t *testing.T) {
	rec := &recordingPlot{}
	// Choose S, feet 2 and 8, default levels, evaluate two points, quit.
	input := "S\n2\n8\n\n\n5\n8\n\n\n"

	out := run(t, input, rec.plot)

	assert.Equal(t, []fuzz.Kind{fuzz.S}, rec.kinds)
	assert.Contains(t, out, "S := {")
	assert.Contains(t, out, "Wrote plots/s.png")
	assert.Contains(t, out, "µ(5) = 0.5")
	assert.Contains(t, out, "µ(8) = 1")
}

func TestSessionCustomLevels(t *testing.T) {
	rec := &recordingPlot{}
	// Linear 4..6 with y_min 0.2 and y_max 0.69; evaluate beyond the shoulder.
	input := "L\n4\n6\n0.2\n0.69\n10\n\n\n"

	out := run(t, input, rec.plot)

	assert.Contains(t, out, "µ(10) = 0.69")
}

func TestSessionRepromptsOnInvalidInput(t *testing.T) {
	rec := &recordingPlot{}
	// Unknown kind, then bad number for a, then a valid triangle.
	input := "sigmoid\nTri\nabc\n1\n3\n5\n\n\n\n\n"

	out := run(t, input, rec.plot)

	assert.Contains(t, out, `unknown function kind "sigmoid"`)
	assert.Contains(t, out, `invalid number "abc"`)
	assert.Equal(t, []fuzz.Kind{fuzz.Triangle}, rec.kinds)
}

func TestSessionReportsOrderingErrorWithoutPlotting(t *testing.T) {
	rec := &recordingPlot{}
	// Misordered S (a > b) is rejected; nothing reaches the renderer.
	input := "S\n8\n2\n\n\n\n"

	out := run(t, input, rec.plot)

	assert.Contains(t, out, "parameters out of order")
	assert.Empty(t, rec.kinds)
}

func TestSessionSurvivesPlotFailure(t *testing.T) {
	rec := &recordingPlot{err: errors.New("disk full")}
	input := "S\n2\n8\n\n\n\n"

	out := run(t, input, rec.plot)

	assert.Contains(t, out, "plot failed: disk full")
}

func TestSessionQuitsOnEOF(t *testing.T) {
	rec := &recordingPlot{}
	// Input ends mid-parameter entry.
	out := run(t, "Tri\n1\n", rec.plot)

	assert.Contains(t, out, "Triangle - membership function")
	assert.Empty(t, rec.kinds)
}
