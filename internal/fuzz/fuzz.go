// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fuzz implements the standard fuzzy-set membership functions:
// linear, triangle, trapezoid, S, Z, pi and gauss. Each function maps an
// input x to a membership degree in [y_min, y_max] ⊆ [0, 1].
package fuzz

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for user-input validation. Callers match them with
// errors.Is to distinguish bad input from internal faults.
var (
	// ErrParamCount reports a wrong number of shape parameters for a kind.
	ErrParamCount = errors.New("wrong parameter count")

	// ErrParamOrder reports shape parameters that violate their ordering
	// constraint (e.g. foot not left of shoulder).
	ErrParamOrder = errors.New("parameters out of order")

	// ErrLevel reports output levels outside [0, 1] or an inverted range.
	ErrLevel = errors.New("invalid output levels")
)

// Kind identifies a membership function shape.
type Kind string

const (
	Linear    Kind = "linear"
	Triangle  Kind = "triangle"
	Trapezoid Kind = "trapezoid"
	S         Kind = "s"
	Z         Kind = "z"
	Pi        Kind = "pi"
	Gauss     Kind = "gauss"
)

// Levels bound the output range of a membership function. The zero value
// is not valid; use DefaultLevels for the conventional [0, 1] range.
type Levels struct {
	Min float64 `json:"y_min" yaml:"y_min"`
	Max float64 `json:"y_max" yaml:"y_max"`
}

// DefaultLevels is the conventional full membership range.
var DefaultLevels = Levels{Min: 0, Max: 1}

// Validate checks that 0 <= Min < 1, 0 < Max <= 1 and Min < Max.
func (l Levels) Validate() error {
	if l.Min < 0 || l.Min >= 1 {
		return fmt.Errorf("%w: y_min %s must be in [0, 1)", ErrLevel, fmtFloat(l.Min))
	}
	if l.Max <= 0 || l.Max > 1 {
		return fmt.Errorf("%w: y_max %s must be in (0, 1]", ErrLevel, fmtFloat(l.Max))
	}
	if l.Min >= l.Max {
		return fmt.Errorf("%w: y_min %s must be below y_max %s", ErrLevel, fmtFloat(l.Min), fmtFloat(l.Max))
	}
	return nil
}

// delta is the height of the output range.
func (l Levels) delta() float64 { return l.Max - l.Min }

// Param is a named shape parameter with its configured value.
type Param struct {
	Name  string
	Value float64
}

// Func is a configured membership function. Implementations are immutable
// once constructed.
type Func interface {
	// Kind returns the shape identifier.
	Kind() Kind

	// Eval returns the membership degree at x, always within
	// [Levels().Min, Levels().Max].
	Eval(x float64) float64

	// Params returns the shape parameters in signature order.
	Params() []Param

	// Levels returns the configured output range.
	Levels() Levels

	// Support returns the interval outside which the function is flat.
	Support() (lo, hi float64)

	// Definition renders the piecewise formula with the configured
	// values substituted.
	Definition() string
}

// fmtFloat renders a float the shortest way that round-trips.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// orderErr builds an ErrParamOrder with a required-ordering hint.
func orderErr(kind Kind, constraint string, params ...float64) error {
	vals := make([]string, len(params))
	for i, p := range params {
		vals[i] = fmtFloat(p)
	}
	return fmt.Errorf("%w: %s requires %s, got %v", ErrParamOrder, kind, constraint, vals)
}
