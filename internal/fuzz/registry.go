// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"fmt"
	"strings"
)

// signature describes one registered shape: its parameter names, display
// name, accepted short alias and constructor.
type signature struct {
	display string
	alias   string
	params  []string
	build   func(p []float64, lv Levels) (Func, error)
}

var signatures = map[Kind]signature{
	Linear: {
		display: "Linear",
		alias:   "l",
		params:  []string{"a", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewLinear(p[0], p[1], lv)
		},
	},
	Triangle: {
		display: "Triangle",
		alias:   "tri",
		params:  []string{"a", "m", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewTriangle(p[0], p[1], p[2], lv)
		},
	},
	Trapezoid: {
		display: "Trapezoid",
		alias:   "tra",
		params:  []string{"a", "m1", "m2", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewTrapezoid(p[0], p[1], p[2], p[3], lv)
		},
	},
	S: {
		display: "S",
		params:  []string{"a", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewS(p[0], p[1], lv)
		},
	},
	Z: {
		display: "Z",
		params:  []string{"a", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewZ(p[0], p[1], lv)
		},
	},
	Pi: {
		display: "Pi",
		params:  []string{"a", "m", "b"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewPi(p[0], p[1], p[2], lv)
		},
	},
	Gauss: {
		display: "Gauss",
		alias:   "g",
		params:  []string{"m", "sigma"},
		build: func(p []float64, lv Levels) (Func, error) {
			return NewGauss(p[0], p[1], lv)
		},
	},
}

// kindOrder fixes the listing order for help and prompts.
var kindOrder = []Kind{Linear, Triangle, Trapezoid, S, Z, Pi, Gauss}

// Kinds returns all supported shape identifiers in listing order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// Signature returns the parameter names of a kind, in constructor order.
func Signature(kind Kind) ([]string, bool) {
	sig, ok := signatures[kind]
	if !ok {
		return nil, false
	}
	return sig.params, true
}

// ParseKind resolves a user-supplied name or short alias to a Kind,
// case-insensitively.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", fmt.Errorf("empty function kind")
	}
	for kind, sig := range signatures {
		if n == string(kind) || n == sig.alias {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown function kind %q: run 'fuzzplot list' for supported kinds", name)
}

// New builds a membership function of the given kind from positional
// parameters, validating count, ordering and levels.
func New(kind Kind, params []float64, lv Levels) (Func, error) {
	sig, ok := signatures[kind]
	if !ok {
		return nil, fmt.Errorf("unknown function kind %q", kind)
	}
	if len(params) != len(sig.params) {
		return nil, fmt.Errorf("%w: %s takes %d parameter(s) (%s), got %d",
			ErrParamCount, sig.display, len(sig.params), strings.Join(sig.params, ", "), len(params))
	}
	return sig.build(params, lv)
}

// displayName returns the human-facing name of a kind.
func displayName(kind Kind) string {
	if sig, ok := signatures[kind]; ok {
		return sig.display
	}
	return string(kind)
}

// DisplayName returns the human-facing name of a kind ("Trapezoid" for
// kind "trapezoid").
func DisplayName(kind Kind) string { return displayName(kind) }
