// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"math"
	"testing"
)

func TestSamplePadsSupport(t *testing.T) {
	f := mustNew(t, S, []float64{2, 8}, DefaultLevels)

	s, err := Sample(f, 101)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	if s.Len() != 101 {
		t.Fatalf("Len() = %d, want 101", s.Len())
	}

	// Support [2, 8] padded by (8-2)/8 = 0.75 on each side.
	if got := s.X[0]; !almostEqual(got, 1.25) {
		t.Errorf("first x = %g, want 1.25", got)
	}
	if got := s.X[len(s.X)-1]; !almostEqual(got, 8.75) {
		t.Errorf("last x = %g, want 8.75", got)
	}
}

func TestSampleXStrictlyIncreasing(t *testing.T) {
	f := mustNew(t, Triangle, []float64{1, 3, 5}, DefaultLevels)
	s, err := Sample(f, 64)
	if err != nil {
		t.Fatalf("Sample: %v", err)
	}
	for i := 1; i < s.Len(); i++ {
		if s.X[i] <= s.X[i-1] {
			t.Fatalf("x[%d] = %g not above x[%d] = %g", i, s.X[i], i-1, s.X[i-1])
		}
	}
}

func TestSampleYWithinUnitInterval(t *testing.T) {
	for _, kind := range Kinds() {
		params := map[Kind][]float64{
			Linear:    {2, 8},
			Triangle:  {1, 3, 5},
			Trapezoid: {1, 4, 6, 9},
			S:         {2, 8},
			Z:         {2, 8},
			Pi:        {2, 5, 8},
			Gauss:     {5, 1},
		}[kind]
		f := mustNew(t, kind, params, DefaultLevels)
		s, err := Sample(f, 256)
		if err != nil {
			t.Fatalf("Sample(%s): %v", kind, err)
		}
		for i, y := range s.Y {
			if y < 0 || y > 1 || math.IsNaN(y) {
				t.Fatalf("%s: y[%d] = %g outside [0, 1]", kind, i, y)
			}
		}
	}
}

func TestSampleRangeValidation(t *testing.T) {
	f := mustNew(t, Linear, []float64{2, 8}, DefaultLevels)

	if _, err := SampleRange(f, 0, 10, 1); err == nil {
		t.Error("expected error for n < 2")
	}
	if _, err := SampleRange(f, 10, 0, 16); err == nil {
		t.Error("expected error for inverted range")
	}
	if _, err := SampleRange(f, 5, 5, 16); err == nil {
		t.Error("expected error for empty range")
	}
}

func TestSampleRangeHitsEndpoints(t *testing.T) {
	f := mustNew(t, Z, []float64{2, 8}, DefaultLevels)
	s, err := SampleRange(f, -1, 11, 7)
	if err != nil {
		t.Fatalf("SampleRange: %v", err)
	}
	if s.X[0] != -1 || s.X[6] != 11 {
		t.Errorf("endpoints = (%g, %g), want (-1, 11)", s.X[0], s.X[6])
	}
}
