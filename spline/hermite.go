package spline

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/trajekt/geom"
	"github.com/trajekt/geom/polyn"
)

// arcSamples is the number of uniform parameter intervals in a segment's
// arc length table.
const arcSamples = 64

// quadOrder is the Gauss-Legendre order used per table interval.
const quadOrder = 5

// Hermite is one cubic segment of a spline, given by per-axis polynomials
// in the curve parameter t in [0,1]. Construction precomputes an arc
// length table, so queries by arc length are cheap afterwards.
type Hermite struct {
	x, y, z polyn.Cubic
	arc     []float64 // cumulative arc length at t = i/arcSamples
	maxCurv float64   // largest planar curvature over the table knots
}

// NewHermite builds a segment from per-axis cubics. The arc length table
// integrates the speed over each parameter interval with Gauss-Legendre
// quadrature.
func NewHermite(x, y, z polyn.Cubic) Hermite {
	h := Hermite{x: x, y: y, z: z}
	speed := func(t float64) float64 {
		return r3.Vector{X: h.x.Deriv(t), Y: h.y.Deriv(t), Z: h.z.Deriv(t)}.Norm()
	}
	steps := make([]float64, arcSamples+1)
	for i := 1; i <= arcSamples; i++ {
		a := float64(i-1) / arcSamples
		b := float64(i) / arcSamples
		steps[i] = quad.Fixed(speed, a, b, quadOrder, quad.Legendre{}, 0)
	}
	h.arc = make([]float64, arcSamples+1)
	floats.CumSum(h.arc, steps)
	for i := 0; i <= arcSamples; i++ {
		if k := h.curvature2D(float64(i) / arcSamples); k > h.maxCurv {
			h.maxCurv = k
		}
	}
	return h
}

// Eval returns the segment point at the raw curve parameter t. Parameters
// outside [0,1] evaluate the cubics beyond the segment ends.
func (h Hermite) Eval(t float64) r3.Vector {
	return r3.Vector{X: h.x.Eval(t), Y: h.y.Eval(t), Z: h.z.Eval(t)}
}

// Derivative returns d/dt of the segment at the raw curve parameter t.
func (h Hermite) Derivative(t float64) r3.Vector {
	return r3.Vector{X: h.x.Deriv(t), Y: h.y.Deriv(t), Z: h.z.Deriv(t)}
}

// Length is the arc length of the whole segment.
func (h Hermite) Length() float64 {
	return h.arc[arcSamples]
}

// paramAtLength maps arc length to the curve parameter. Lengths outside
// [0, Length()] map linearly past the segment ends, they never clamp.
func (h Hermite) paramAtLength(s float64) float64 {
	total := h.Length()
	if geom.Is0(total) {
		return 0
	}
	if s <= 0 || s >= total {
		return s / total
	}
	i := sort.SearchFloat64s(h.arc, s) // first knot with arc >= s, i >= 1 here
	t0 := float64(i-1) / arcSamples
	ds := h.arc[i] - h.arc[i-1]
	if geom.Is0(ds) {
		return t0
	}
	return t0 + (s-h.arc[i-1])/(ds*arcSamples)
}

// lengthAtParam maps the curve parameter to arc length from the segment
// start, the inverse of paramAtLength.
func (h Hermite) lengthAtParam(t float64) float64 {
	if t <= 0 || t >= 1 {
		return t * h.Length()
	}
	scaled := t * arcSamples
	i := int(scaled)
	return h.arc[i] + (scaled-float64(i))*(h.arc[i+1]-h.arc[i])
}

// Point returns the point at arc length s from the segment start.
func (h Hermite) Point(s float64) r3.Vector {
	return h.Eval(h.paramAtLength(s))
}

// Tangent returns the unit tangent at arc length s. A vanishing speed
// yields the zero vector.
func (h Hermite) Tangent(s float64) r3.Vector {
	return h.Derivative(h.paramAtLength(s)).Normalize()
}

// Normal returns the unit normal at arc length s. It is the tangent's xy
// projection turned a quarter turn clockwise and points to the right of
// the direction of travel.
func (h Hermite) Normal(s float64) r3.Vector {
	d := h.Derivative(h.paramAtLength(s))
	return r3.Vector{X: d.Y, Y: -d.X}.Normalize()
}

// PoseAt returns position and heading at arc length s. The yaw follows
// the tangent's xy projection.
func (h Hermite) PoseAt(s float64) geom.Pose {
	t := h.paramAtLength(s)
	d := h.Derivative(t)
	return geom.NewPose(h.Eval(t), math.Atan2(d.Y, d.X))
}

// Max2DCurvature is the largest planar curvature found along the segment.
func (h Hermite) Max2DCurvature() float64 {
	return h.maxCurv
}

// SquaredDistanceIn2D is the squared planar distance between p and the
// curve point at arc length s.
func (h Hermite) SquaredDistanceIn2D(p r3.Vector, s float64) float64 {
	return geom.SquaredDistance2D(p, h.Point(s))
}

// SquaredDistanceVector is the offset from the curve point at arc length s
// to p.
func (h Hermite) SquaredDistanceVector(p r3.Vector, s float64) r3.Vector {
	return p.Sub(h.Point(s))
}

// curvature2D is the unsigned planar curvature at the raw parameter t.
func (h Hermite) curvature2D(t float64) float64 {
	dx, dy := h.x.Deriv(t), h.y.Deriv(t)
	ddx, ddy := h.x.Deriv2(t), h.y.Deriv2(t)
	denom := math.Pow(dx*dx+dy*dy, 1.5)
	if geom.Is0(denom) {
		return 0
	}
	return math.Abs(dx*ddy-dy*ddx) / denom
}
