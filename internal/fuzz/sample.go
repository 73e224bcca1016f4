// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"fmt"

	"github.com/pdiddy/fuzzplot/pkg/types"
)

// Sample evaluates f over its support padded by an eighth of the support
// width on each side, at n evenly spaced points. The padding shows the
// flat tails around the shaped region.
func Sample(f Func, n int) (types.Series, error) {
	lo, hi := f.Support()
	pad := (hi - lo) / 8
	return SampleRange(f, lo-pad, hi+pad, n)
}

// SampleRange evaluates f at n evenly spaced points over [lo, hi].
func SampleRange(f Func, lo, hi float64, n int) (types.Series, error) {
	if n < 2 {
		return types.Series{}, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	if lo >= hi {
		return types.Series{}, fmt.Errorf("sample range [%s, %s] is empty", fmtFloat(lo), fmtFloat(hi))
	}

	s := types.Series{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		s.X[i] = x
		s.Y[i] = f.Eval(x)
	}
	return s, nil
}
