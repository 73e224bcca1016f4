// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fuzz

import (
	"fmt"
	"math"
	"strings"
)

// --- Linear ---

// linearFunc rises linearly from y_min at a to y_max at b.
type linearFunc struct {
	a, b float64
	lv   Levels
}

// NewLinear builds a linear membership function with foot a and shoulder b.
func NewLinear(a, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if a >= b {
		return nil, orderErr(Linear, "a < b", a, b)
	}
	return linearFunc{a: a, b: b, lv: lv}, nil
}

func (f linearFunc) Kind() Kind { return Linear }

func (f linearFunc) Eval(x float64) float64 {
	switch {
	case x <= f.a:
		return f.lv.Min
	case x >= f.b:
		return f.lv.Max
	default:
		return f.lv.Min + f.lv.delta()/(f.b-f.a)*(x-f.a)
	}
}

func (f linearFunc) Params() []Param {
	return []Param{{"a", f.a}, {"b", f.b}}
}

func (f linearFunc) Levels() Levels { return f.lv }

func (f linearFunc) Support() (float64, float64) { return f.a, f.b }

func (f linearFunc) Definition() string {
	k := f.lv.delta() / (f.b - f.a)
	return piecewise(Linear,
		branch{fmt.Sprintf("x <= %s", fmtFloat(f.a)), fmtFloat(f.lv.Min)},
		branch{fmt.Sprintf("%s < x < %s", fmtFloat(f.a), fmtFloat(f.b)),
			fmt.Sprintf("%s + %s*(x - %s)", fmtFloat(f.lv.Min), fmtFloat(k), fmtFloat(f.a))},
		branch{fmt.Sprintf("x >= %s", fmtFloat(f.b)), fmtFloat(f.lv.Max)},
	)
}

// --- Triangle ---

// triangleFunc peaks at m between feet a and b.
type triangleFunc struct {
	a, m, b float64
	lv      Levels
}

// NewTriangle builds a triangular membership function with feet a, b and
// peak m.
func NewTriangle(a, m, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if !(a < m && m < b) {
		return nil, orderErr(Triangle, "a < m < b", a, m, b)
	}
	return triangleFunc{a: a, m: m, b: b, lv: lv}, nil
}

func (f triangleFunc) Kind() Kind { return Triangle }

func (f triangleFunc) Eval(x float64) float64 {
	switch {
	case x <= f.a || x >= f.b:
		return f.lv.Min
	case x < f.m:
		return f.lv.Min + f.lv.delta()/(f.m-f.a)*(x-f.a)
	default:
		return f.lv.Max - f.lv.delta()/(f.b-f.m)*(x-f.m)
	}
}

func (f triangleFunc) Params() []Param {
	return []Param{{"a", f.a}, {"m", f.m}, {"b", f.b}}
}

func (f triangleFunc) Levels() Levels { return f.lv }

func (f triangleFunc) Support() (float64, float64) { return f.a, f.b }

func (f triangleFunc) Definition() string {
	rise := f.lv.delta() / (f.m - f.a)
	fall := f.lv.delta() / (f.b - f.m)
	return piecewise(Triangle,
		branch{fmt.Sprintf("x <= %s or x >= %s", fmtFloat(f.a), fmtFloat(f.b)), fmtFloat(f.lv.Min)},
		branch{fmt.Sprintf("%s < x < %s", fmtFloat(f.a), fmtFloat(f.m)),
			fmt.Sprintf("%s + %s*(x - %s)", fmtFloat(f.lv.Min), fmtFloat(rise), fmtFloat(f.a))},
		branch{fmt.Sprintf("%s <= x < %s", fmtFloat(f.m), fmtFloat(f.b)),
			fmt.Sprintf("%s - %s*(x - %s)", fmtFloat(f.lv.Max), fmtFloat(fall), fmtFloat(f.m))},
	)
}

// --- Trapezoid ---

// trapezoidFunc has a flat top between shoulders m1 and m2.
type trapezoidFunc struct {
	a, m1, m2, b float64
	lv           Levels
}

// NewTrapezoid builds a trapezoidal membership function with feet a, b and
// shoulders m1, m2.
func NewTrapezoid(a, m1, m2, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if !(a < m1 && m1 < m2 && m2 < b) {
		return nil, orderErr(Trapezoid, "a < m1 < m2 < b", a, m1, m2, b)
	}
	return trapezoidFunc{a: a, m1: m1, m2: m2, b: b, lv: lv}, nil
}

func (f trapezoidFunc) Kind() Kind { return Trapezoid }

func (f trapezoidFunc) Eval(x float64) float64 {
	switch {
	case x <= f.a || x >= f.b:
		return f.lv.Min
	case x <= f.m1:
		return f.lv.Min + f.lv.delta()/(f.m1-f.a)*(x-f.a)
	case x < f.m2:
		return f.lv.Max
	default:
		return f.lv.Max - f.lv.delta()/(f.b-f.m2)*(x-f.m2)
	}
}

func (f trapezoidFunc) Params() []Param {
	return []Param{{"a", f.a}, {"m1", f.m1}, {"m2", f.m2}, {"b", f.b}}
}

func (f trapezoidFunc) Levels() Levels { return f.lv }

func (f trapezoidFunc) Support() (float64, float64) { return f.a, f.b }

func (f trapezoidFunc) Definition() string {
	rise := f.lv.delta() / (f.m1 - f.a)
	fall := f.lv.delta() / (f.b - f.m2)
	return piecewise(Trapezoid,
		branch{fmt.Sprintf("x <= %s or x >= %s", fmtFloat(f.a), fmtFloat(f.b)), fmtFloat(f.lv.Min)},
		branch{fmt.Sprintf("%s < x <= %s", fmtFloat(f.a), fmtFloat(f.m1)),
			fmt.Sprintf("%s + %s*(x - %s)", fmtFloat(f.lv.Min), fmtFloat(rise), fmtFloat(f.a))},
		branch{fmt.Sprintf("%s < x < %s", fmtFloat(f.m1), fmtFloat(f.m2)), fmtFloat(f.lv.Max)},
		branch{fmt.Sprintf("%s <= x < %s", fmtFloat(f.m2), fmtFloat(f.b)),
			fmt.Sprintf("%s - %s*(x - %s)", fmtFloat(f.lv.Max), fmtFloat(fall), fmtFloat(f.m2))},
	)
}

// --- S ---

// sFunc rises smoothly from y_min at a to y_max at b along two parabolic
// arcs joined at the midpoint.
type sFunc struct {
	a, b float64
	lv   Levels
}

// NewS builds an S-shaped membership function with foot a and shoulder b.
func NewS(a, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if a >= b {
		return nil, orderErr(S, "a < b", a, b)
	}
	return sFunc{a: a, b: b, lv: lv}, nil
}

// sCurve evaluates the S shape between a and b at x, scaled to lv. Shared
// with the Z and pi shapes, which are defined in terms of it.
func sCurve(a, b float64, lv Levels, x float64) float64 {
	switch {
	case x <= a:
		return lv.Min
	case x > b:
		return lv.Max
	case x <= (a+b)/2:
		t := (x - a) / (b - a)
		return lv.Min + 2*t*t*lv.delta()
	default:
		t := (b - x) / (b - a)
		return lv.Min + (1-2*t*t)*lv.delta()
	}
}

func (f sFunc) Kind() Kind { return S }

func (f sFunc) Eval(x float64) float64 { return sCurve(f.a, f.b, f.lv, x) }

func (f sFunc) Params() []Param {
	return []Param{{"a", f.a}, {"b", f.b}}
}

func (f sFunc) Levels() Levels { return f.lv }

func (f sFunc) Support() (float64, float64) { return f.a, f.b }

func (f sFunc) Definition() string {
	return piecewise(S, sBranches(f.a, f.b, f.lv, false)...)
}

// sBranches renders the four S branches; inverted flips them into the Z
// form y_max + y_min - S(x).
func sBranches(a, b float64, lv Levels, inverted bool) []branch {
	mid := (a + b) / 2
	w := b - a
	c := 2 * lv.delta()
	lo, hi := fmtFloat(lv.Min), fmtFloat(lv.Max)
	riseLow := fmt.Sprintf("%s + %s*((x - %s)/%s)^2", lo, fmtFloat(c), fmtFloat(a), fmtFloat(w))
	riseHigh := fmt.Sprintf("%s - %s*((%s - x)/%s)^2", hi, fmtFloat(c), fmtFloat(b), fmtFloat(w))
	if inverted {
		sum := lv.Max + lv.Min
		lo, hi = hi, lo
		riseLow = fmt.Sprintf("%s - (%s)", fmtFloat(sum), riseLow)
		riseHigh = fmt.Sprintf("%s - (%s)", fmtFloat(sum), riseHigh)
	}
	return []branch{
		{fmt.Sprintf("x <= %s", fmtFloat(a)), lo},
		{fmt.Sprintf("%s < x <= %s", fmtFloat(a), fmtFloat(mid)), riseLow},
		{fmt.Sprintf("%s < x <= %s", fmtFloat(mid), fmtFloat(b)), riseHigh},
		{fmt.Sprintf("x > %s", fmtFloat(b)), hi},
	}
}

// --- Z ---

// zFunc is the mirror image of the S shape: y_max + y_min - S(x).
type zFunc struct {
	a, b float64
	lv   Levels
}

// NewZ builds a Z-shaped membership function falling from y_max at a to
// y_min at b.
func NewZ(a, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if a >= b {
		return nil, orderErr(Z, "a < b", a, b)
	}
	return zFunc{a: a, b: b, lv: lv}, nil
}

func (f zFunc) Kind() Kind { return Z }

func (f zFunc) Eval(x float64) float64 {
	return f.lv.Max + f.lv.Min - sCurve(f.a, f.b, f.lv, x)
}

func (f zFunc) Params() []Param {
	return []Param{{"a", f.a}, {"b", f.b}}
}

func (f zFunc) Levels() Levels { return f.lv }

func (f zFunc) Support() (float64, float64) { return f.a, f.b }

func (f zFunc) Definition() string {
	return piecewise(Z, sBranches(f.a, f.b, f.lv, true)...)
}

// --- Pi ---

// piFunc rises like an S up to m, then falls like a Z.
type piFunc struct {
	a, m, b float64
	lv      Levels
}

// NewPi builds a pi-shaped membership function with feet a, b and peak m.
func NewPi(a, m, b float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if !(a < m && m < b) {
		return nil, orderErr(Pi, "a < m < b", a, m, b)
	}
	return piFunc{a: a, m: m, b: b, lv: lv}, nil
}

func (f piFunc) Kind() Kind { return Pi }

func (f piFunc) Eval(x float64) float64 {
	if x <= f.m {
		return sCurve(f.a, f.m, f.lv, x)
	}
	return f.lv.Max + f.lv.Min - sCurve(f.m, f.b, f.lv, x)
}

func (f piFunc) Params() []Param {
	return []Param{{"a", f.a}, {"m", f.m}, {"b", f.b}}
}

func (f piFunc) Levels() Levels { return f.lv }

func (f piFunc) Support() (float64, float64) { return f.a, f.b }

func (f piFunc) Definition() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pi := {\n")
	fmt.Fprintf(&sb, "x <= %s:\n", fmtFloat(f.m))
	sb.WriteString(indent(piecewise(S, sBranches(f.a, f.m, f.lv, false)...)))
	fmt.Fprintf(&sb, "x > %s:\n", fmtFloat(f.m))
	sb.WriteString(indent(piecewise(Z, sBranches(f.m, f.b, f.lv, true)...)))
	sb.WriteString("}\n")
	return sb.String()
}

// --- Gauss ---

// gaussFunc is the bell curve y_min + delta*exp(-(x-m)^2 / (2*sigma^2)).
type gaussFunc struct {
	m, sigma float64
	lv       Levels
}

// NewGauss builds a Gaussian membership function centered at m with
// standard deviation sigma.
func NewGauss(m, sigma float64, lv Levels) (Func, error) {
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	if sigma <= 0 {
		return nil, orderErr(Gauss, "sigma > 0", m, sigma)
	}
	return gaussFunc{m: m, sigma: sigma, lv: lv}, nil
}

func (f gaussFunc) Kind() Kind { return Gauss }

func (f gaussFunc) Eval(x float64) float64 {
	d := x - f.m
	return f.lv.Min + f.lv.delta()*math.Exp(-d*d/(2*f.sigma*f.sigma))
}

func (f gaussFunc) Params() []Param {
	return []Param{{"m", f.m}, {"sigma", f.sigma}}
}

func (f gaussFunc) Levels() Levels { return f.lv }

// Support covers m ± 4 sigma, beyond which the curve is flat to within
// ~0.03% of the range.
func (f gaussFunc) Support() (float64, float64) {
	return f.m - 4*f.sigma, f.m + 4*f.sigma
}

func (f gaussFunc) Definition() string {
	return piecewise(Gauss,
		branch{"all x",
			fmt.Sprintf("%s + %s*exp(-(x - %s)^2 / %s)",
				fmtFloat(f.lv.Min), fmtFloat(f.lv.delta()), fmtFloat(f.m), fmtFloat(2*f.sigma*f.sigma))},
	)
}

// --- definition rendering ---

// branch is one condition/expression pair of a piecewise definition.
type branch struct {
	cond string
	expr string
}

// piecewise renders a named piecewise definition, one branch per line.
func piecewise(kind Kind, branches ...branch) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s := {\n", displayName(kind))
	for _, br := range branches {
		fmt.Fprintf(&sb, "  %s: %s\n", br.cond, br.expr)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}
