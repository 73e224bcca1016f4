// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const tol = 1e-12

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= tol
}

func mustNew(t *testing.T, kind Kind, params []float64, lv Levels) Func {
	t.Helper()
	f, err := New(kind, params, lv)
	if err != nil {
		t.Fatalf("New(%s, %v, %+v): %v", kind, params, lv, err)
	}
	return f
}

// --- evaluation semantics ---

func TestEvalKeyPoints(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		params []float64
		x      float64
		want   float64
	}{
		{"linear at foot", Linear, []float64{2, 8}, 2, 0},
		{"linear below foot", Linear, []float64{2, 8}, -10, 0},
		{"linear at shoulder", Linear, []float64{2, 8}, 8, 1},
		{"linear midway", Linear, []float64{2, 8}, 5, 0.5},
		{"triangle at peak", Triangle, []float64{1, 3, 5}, 3, 1},
		{"triangle below left foot", Triangle, []float64{1, 3, 5}, 0.5, 0},
		{"triangle above right foot", Triangle, []float64{1, 3, 5}, 6, 0},
		{"triangle rising", Triangle, []float64{1, 3, 5}, 2, 0.5},
		{"triangle falling", Triangle, []float64{1, 3, 5}, 4, 0.5},
		{"trapezoid left foot", Trapezoid, []float64{1, 4, 6, 9}, 1, 0},
		{"trapezoid left shoulder", Trapezoid, []float64{1, 4, 6, 9}, 4, 1},
		{"trapezoid plateau", Trapezoid, []float64{1, 4, 6, 9}, 5, 1},
		{"trapezoid right shoulder", Trapezoid, []float64{1, 4, 6, 9}, 6, 1},
		{"trapezoid falling", Trapezoid, []float64{1, 4, 6, 9}, 7.5, 0.5},
		{"s at foot", S, []float64{2, 8}, 2, 0},
		{"s at midpoint", S, []float64{2, 8}, 5, 0.5},
		{"s at shoulder", S, []float64{2, 8}, 8, 1},
		{"s beyond shoulder", S, []float64{2, 8}, 100, 1},
		{"z at foot", Z, []float64{2, 8}, 2, 1},
		{"z at midpoint", Z, []float64{2, 8}, 5, 0.5},
		{"z at shoulder", Z, []float64{2, 8}, 8, 0},
		{"pi at peak", Pi, []float64{2, 5, 8}, 5, 1},
		{"pi at left foot", Pi, []float64{2, 5, 8}, 2, 0},
		{"pi at right foot", Pi, []float64{2, 5, 8}, 8, 0},
		{"gauss at center", Gauss, []float64{5, 1}, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustNew(t, tt.kind, tt.params, DefaultLevels)
			if got := f.Eval(tt.x); !almostEqual(got, tt.want) {
				t.Errorf("Eval(%g) = %g, want %g", tt.x, got, tt.want)
			}
		})
	}
}

func TestEvalStaysWithinLevels(t *testing.T) {
	lvs := []Levels{
		DefaultLevels,
		{Min: 0.2, Max: 0.69},
		{Min: 0.42, Max: 1},
	}
	specs := []struct {
		kind   Kind
		params []float64
	}{
		{Linear, []float64{2, 8}},
		{Triangle, []float64{1, 3, 5}},
		{Trapezoid, []float64{1, 4, 6, 9}},
		{S, []float64{2, 8}},
		{Z, []float64{2, 8}},
		{Pi, []float64{2, 5, 8}},
		{Gauss, []float64{5, 1.5}},
	}
	for _, lv := range lvs {
		for _, spec := range specs {
			f := mustNew(t, spec.kind, spec.params, lv)
			lo, hi := f.Support()
			pad := (hi - lo) / 8
			for i := 0; i <= 400; i++ {
				x := (lo - pad) + float64(i)*(hi-lo+2*pad)/400
				y := f.Eval(x)
				if y < lv.Min-tol || y > lv.Max+tol {
					t.Fatalf("%s.Eval(%g) = %g outside [%g, %g]", spec.kind, x, y, lv.Min, lv.Max)
				}
			}
		}
	}
}

func TestZMirrorsS(t *testing.T) {
	lv := Levels{Min: 0.1, Max: 0.9}
	s := mustNew(t, S, []float64{2, 8}, lv)
	z := mustNew(t, Z, []float64{2, 8}, lv)
	for x := 0.0; x <= 10; x += 0.25 {
		want := lv.Max + lv.Min - s.Eval(x)
		if got := z.Eval(x); !almostEqual(got, want) {
			t.Fatalf("Z(%g) = %g, want mirror value %g", x, got, want)
		}
	}
}

func TestScaledLevels(t *testing.T) {
	lv := Levels{Min: 0.5, Max: 1}
	f := mustNew(t, S, []float64{2, 8}, lv)
	if got := f.Eval(2); !almostEqual(got, 0.5) {
		t.Errorf("Eval at foot = %g, want y_min 0.5", got)
	}
	if got := f.Eval(8); !almostEqual(got, 1) {
		t.Errorf("Eval at shoulder = %g, want y_max 1", got)
	}
}

// --- validation ---

func TestNewRejectsBadParams(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		params  []float64
		lv      Levels
		wantErr error
	}{
		{"linear reversed", Linear, []float64{8, 2}, DefaultLevels, ErrParamOrder},
		{"linear degenerate", Linear, []float64{3, 3}, DefaultLevels, ErrParamOrder},
		{"triangle peak outside", Triangle, []float64{1, 7, 5}, DefaultLevels, ErrParamOrder},
		{"trapezoid shoulders swapped", Trapezoid, []float64{1, 6, 4, 9}, DefaultLevels, ErrParamOrder},
		{"s reversed", S, []float64{5, 1}, DefaultLevels, ErrParamOrder},
		{"gauss zero sigma", Gauss, []float64{5, 0}, DefaultLevels, ErrParamOrder},
		{"gauss negative sigma", Gauss, []float64{5, -1}, DefaultLevels, ErrParamOrder},
		{"too few params", Triangle, []float64{1, 3}, DefaultLevels, ErrParamCount},
		{"too many params", S, []float64{1, 3, 5}, DefaultLevels, ErrParamCount},
		{"y_min negative", S, []float64{2, 8}, Levels{Min: -0.1, Max: 1}, ErrLevel},
		{"y_min at one", S, []float64{2, 8}, Levels{Min: 1, Max: 1}, ErrLevel},
		{"y_max above one", S, []float64{2, 8}, Levels{Min: 0, Max: 1.1}, ErrLevel},
		{"y_max zero", S, []float64{2, 8}, Levels{Min: 0, Max: 0}, ErrLevel},
		{"inverted levels", S, []float64{2, 8}, Levels{Min: 0.8, Max: 0.4}, ErrLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.kind, tt.params, tt.lv)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	if _, err := New(Kind("sigmoid"), []float64{1, 2}, DefaultLevels); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

// --- kinds and parsing ---

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"linear", Linear, false},
		{"L", Linear, false},
		{"Tri", Triangle, false},
		{"TRA", Trapezoid, false},
		{"s", S, false},
		{"Z", Z, false},
		{"pi", Pi, false},
		{"gauss", Gauss, false},
		{"g", Gauss, false},
		{" triangle ", Triangle, false},
		{"", "", true},
		{"sigmoid", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestKindsHaveSignatures(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 7 {
		t.Fatalf("len(Kinds()) = %d, want 7", len(kinds))
	}
	for _, k := range kinds {
		params, ok := Signature(k)
		if !ok || len(params) == 0 {
			t.Errorf("Signature(%s) missing", k)
		}
	}
}

// --- definitions ---

func TestDefinitionSubstitutesValues(t *testing.T) {
	tests := []struct {
		name     string
		f        func(t *testing.T) Func
		contains []string
	}{
		{
			name: "s with shifted floor",
			f: func(t *testing.T) Func {
				return mustNew(t, S, []float64{2, 8}, Levels{Min: 0.5, Max: 1})
			},
			contains: []string{"S := {", "x <= 2: 0.5", "x > 8: 1", "(x - 2)/6"},
		},
		{
			name: "triangle folds slopes",
			f: func(t *testing.T) Func {
				return mustNew(t, Triangle, []float64{1, 3, 5}, DefaultLevels)
			},
			contains: []string{"Triangle := {", "x <= 1 or x >= 5: 0", "0.5*(x - 1)", "0.5*(x - 3)"},
		},
		{
			name: "pi nests s and z",
			f: func(t *testing.T) Func {
				return mustNew(t, Pi, []float64{2, 5, 8}, DefaultLevels)
			},
			contains: []string{"Pi := {", "x <= 5:", "x > 5:", "S := {", "Z := {"},
		},
		{
			name: "gauss single branch",
			f: func(t *testing.T) Func {
				return mustNew(t, Gauss, []float64{5, 1}, DefaultLevels)
			},
			contains: []string{"Gauss := {", "exp(-(x - 5)^2 / 2)"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := tt.f(t).Definition()
			for _, want := range tt.contains {
				if !strings.Contains(def, want) {
					t.Errorf("Definition() missing %q:\n%s", want, def)
				}
			}
		})
	}
}
