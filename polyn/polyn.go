// Package polyn is for arithmetic with cubic polynomials and their real roots.
/*
BSD 3-Clause License

Copyright (c) the trajekt project authors.

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
   list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
   this list of conditions and the following disclaimer in the documentation
   and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
   contributors may be used to endorse or promote products derived from
   this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package polyn

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the equations tracer.
func T() tracing.Trace {
	return gtrace.EquationsTracer
}

// === Cubic Polynomials =====================================================

// Cubic is a dense polynomial of degree ≤ 3 in one variable,
//
//	A⋅t³ + B⋅t² + C⋅t + D
//
// with lower degrees expressed by zero leading coefficients.
type Cubic struct {
	A, B, C, D float64
}

// Eval evaluates the polynomial at t.
func (p Cubic) Eval(t float64) float64 {
	return ((p.A*t+p.B)*t+p.C)*t + p.D
}

// Deriv evaluates the first derivative at t.
func (p Cubic) Deriv(t float64) float64 {
	return (3*p.A*t+2*p.B)*t + p.C
}

// Deriv2 evaluates the second derivative at t.
func (p Cubic) Deriv2(t float64) float64 {
	return 6*p.A*t + 2*p.B
}

// Roots returns all real solutions of p(t) = 0.
func (p Cubic) Roots() []float64 {
	return SolveCubic(p.A, p.B, p.C, p.D)
}

// RootsInUnitInterval returns the real solutions of p(t) = 0 within [0,1].
func (p Cubic) RootsInUnitInterval() []float64 {
	return SolveCubicInUnitInterval(p.A, p.B, p.C, p.D)
}

// Pretty Stringer for polynomials.
func (p Cubic) String() string {
	return fmt.Sprintf("%g⋅t³ + %g⋅t² + %g⋅t + %g", p.A, p.B, p.C, p.D)
}

// === Root Solvers ==========================================================

// SolveQuadratic returns the real solutions of a⋅x² + b⋅x + c = 0 in
// ascending order. A vanishing leading coefficient degrades the equation
// to the linear case; without any real solution the result is empty.
//
// The quotient form for the second root avoids cancellation, see
// https://math.stackexchange.com/questions/866331
func SolveQuadratic(a, b, c float64) []float64 {
	sc := c / a
	sb := b / a
	if !finite(sc) || !finite(sb) {
		// leading coefficient is (nearly) zero
		T().Debugf("quadratic %g⋅x² + %g⋅x + %g degrades to linear", a, b, c)
		if root := -c / b; finite(root) {
			return []float64{root}
		}
		if b == 0 && c == 0 {
			return []float64{0}
		}
		return nil
	}
	arg := sb*sb - 4*sc
	if !finite(arg) {
		// discriminant overflowed, recover one root from b⋅x + x² = 0
		root := -sb
		return sorted2(root, sc/root)
	}
	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sb}
	}
	root := -0.5 * (sb + math.Copysign(math.Sqrt(arg), sb))
	return sorted2(root, sc/root)
}

// sorted2 orders a root pair ascending, dropping a non-finite second root.
func sorted2(root1, root2 float64) []float64 {
	if !finite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// SolveCubic returns the real solutions of a⋅x³ + b⋅x² + c⋅x + d = 0, not
// necessarily sorted. A vanishing leading coefficient degrades the
// equation to SolveQuadratic.
//
// The method is Blinn's, as presented on
// https://momentsingraphics.de/CubicRoots.html
func SolveCubic(a, b, c, d float64) []float64 {
	const oneThird = 1.0 / 3.0
	aRecip := 1 / a
	c2 := b * (oneThird * aRecip)
	c1 := c * (oneThird * aRecip)
	c0 := d * aRecip
	if !finite(c0) || !finite(c1) || !finite(c2) {
		T().Debugf("cubic with leading coefficient %g degrades to quadratic", a)
		return SolveQuadratic(b, c, d)
	}
	// (d0, d1, d2) is "Delta" in the article, disc the discriminant
	d0 := -c2*c2 + c1
	d1 := -c1*c2 + c0
	d2 := c2*c0 - c1*c1
	disc := 4*d0*d2 - d1*d1
	// de is "Depressed.x"; "Depressed.y" equals d0
	de := -2*c2*d0 + d1
	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * de
		root := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return []float64{root - c2}
	case disc == 0:
		root := math.Copysign(math.Sqrt(-d0), de)
		return []float64{root - c2, -2*root - c2}
	}
	th := math.Atan2(math.Sqrt(disc), -de) * oneThird
	thSin, thCos := math.Sincos(th)
	span := thSin * math.Sqrt(3)
	scale := 2 * math.Sqrt(-d0)
	return []float64{
		scale*thCos - c2,
		scale*0.5*(-thCos+span) - c2,
		scale*0.5*(-thCos-span) - c2,
	}
}

// SolveQuadraticInUnitInterval returns the real solutions of
// a⋅x² + b⋅x + c = 0 within [0,1].
func SolveQuadraticInUnitInterval(a, b, c float64) []float64 {
	return unitInterval(SolveQuadratic(a, b, c))
}

// SolveCubicInUnitInterval returns the real solutions of
// a⋅x³ + b⋅x² + c⋅x + d = 0 within [0,1].
func SolveCubicInUnitInterval(a, b, c, d float64) []float64 {
	return unitInterval(SolveCubic(a, b, c, d))
}

// unitInterval keeps the roots inside [0,1]. Roots within a small band
// around the boundaries are clamped onto them.
func unitInterval(roots []float64) []float64 {
	const eps = 1e-12
	var kept []float64
	for _, root := range roots {
		if root < -eps || root > 1+eps {
			continue
		}
		kept = append(kept, math.Min(1, math.Max(0, root)))
	}
	return kept
}

// finite is a predicate: is x neither Inf nor NaN ?
func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
