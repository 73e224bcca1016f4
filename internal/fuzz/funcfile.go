// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fuzzplot/pkg/types"
)

// FunctionFile is the on-disk representation of a configured membership
// function and its sampled series. A plot can be saved to a file and
// replotted later without retyping parameters.
type FunctionFile struct {
	Function FunctionParams `yaml:"function"`
	Series   *types.Series  `yaml:"series,omitempty"`
	Summary  FileSummary    `yaml:"summary"`
}

// FunctionParams stores a function spec in a serializable form.
type FunctionParams struct {
	Kind   string    `yaml:"kind"`
	Params []float64 `yaml:"params"`
	YMin   float64   `yaml:"y_min,omitempty"`
	// YMax of zero means unset; valid ceilings are strictly positive.
	YMax float64 `yaml:"y_max,omitempty"`
}

// FileSummary stores sampling statistics and a timestamp.
type FileSummary struct {
	Samples   int       `yaml:"samples"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteFunctionFile saves a function spec and its sampled series to a
// YAML file.
func WriteFunctionFile(path string, f Func, series types.Series) error {
	params := f.Params()
	vals := make([]float64, len(params))
	for i, p := range params {
		vals[i] = p.Value
	}

	ff := FunctionFile{
		Function: FunctionParams{
			Kind:   string(f.Kind()),
			Params: vals,
			YMin:   f.Levels().Min,
			YMax:   f.Levels().Max,
		},
		Summary: FileSummary{
			Samples:   series.Len(),
			Timestamp: time.Now(),
		},
	}
	if series.Len() > 0 {
		ff.Series = &series
	}

	data, err := yaml.Marshal(&ff)
	if err != nil {
		return fmt.Errorf("marshaling function file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadFunctionFile loads a previously saved function file from disk.
func ReadFunctionFile(path string) (*FunctionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading function file: %w", err)
	}
	var ff FunctionFile
	if err := yaml.Unmarshal(data, &ff); err != nil {
		return nil, fmt.Errorf("parsing function file: %w", err)
	}
	return &ff, nil
}

// Build converts stored FunctionParams back into a validated Func.
func (p FunctionParams) Build() (Func, error) {
	kind, err := ParseKind(p.Kind)
	if err != nil {
		return nil, err
	}
	lv := Levels{Min: p.YMin, Max: p.YMax}
	if lv.Max == 0 {
		lv.Max = DefaultLevels.Max
	}
	return New(kind, p.Params, lv)
}
