// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds value and configuration types shared across packages.
package types

// Series holds sampled membership values: X is the ordered sample domain
// and Y the corresponding function outputs. Both slices always have the
// same length.
type Series struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// Len returns the number of samples in the series.
func (s Series) Len() int { return len(s.X) }

// Point is a single (x, μ(x)) evaluation.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
