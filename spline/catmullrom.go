package spline

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/trajekt/geom"
	"github.com/trajekt/geom/polygon"
	"github.com/trajekt/geom/polyn"
)

// CatmullRom is a multi-segment spline through a list of control points.
// Depending on the number of points it degenerates to a point or to a
// straight line, see Shape. All positional queries take an arc length
// from the spline start; values outside [0, Length()] extrapolate along
// the terminal segments.
type CatmullRom struct {
	points     []r3.Vector
	shape      Shape
	segments   []Hermite
	lengths    []float64 // arc length per segment
	cumulative []float64 // arc length at the end of segment i
	curvatures []float64 // largest planar curvature per segment
	total      float64
}

// NewCatmullRom interpolates the control points with a uniform Catmull-Rom
// spline. One point yields a degenerate point shape, two points an exact
// line, three or more a piecewise cubic curve with len(points)-1 segments.
func NewCatmullRom(points []r3.Vector) (*CatmullRom, error) {
	c := &CatmullRom{points: points}
	switch len(points) {
	case 0:
		return nil, ErrEmptyControlPoints
	case 1:
		c.shape = ShapePoint
		return c, nil
	case 2:
		c.shape = ShapeLine
		c.total = points[0].Distance(points[1])
		return c, nil
	}
	c.shape = ShapeCurve
	c.segments = make([]Hermite, len(points)-1)
	for i := range c.segments {
		c.segments[i] = fitSegment(points, i)
	}
	if err := c.checkConnection(); err != nil {
		return nil, err
	}
	c.lengths = make([]float64, len(c.segments))
	c.curvatures = make([]float64, len(c.segments))
	for i, seg := range c.segments {
		c.lengths[i] = seg.Length()
		c.curvatures[i] = seg.Max2DCurvature()
	}
	c.cumulative = make([]float64, len(c.lengths))
	floats.CumSum(c.cumulative, c.lengths)
	c.total = c.cumulative[len(c.cumulative)-1]
	tracer().Debugf("catmull-rom spline over %d points, %d segments, length %.4f",
		len(points), len(c.segments), c.total)
	return c, nil
}

func (c *CatmullRom) String() string {
	return fmt.Sprintf("spline[%s, %d points, length %.4f]", c.shape, len(c.points), c.total)
}

// Shape reports the spline's shape category.
func (c *CatmullRom) Shape() Shape {
	return c.shape
}

// Length is the total arc length. A line shape reports the segment
// length, a point shape zero.
func (c *CatmullRom) Length() float64 {
	return c.total
}

// ControlPoints returns a copy of the control points the spline was built
// from.
func (c *CatmullRom) ControlPoints() []r3.Vector {
	cp := make([]r3.Vector, len(c.points))
	copy(cp, c.points)
	return cp
}

// CurveIndexAndS splits a spline arc length into a segment index and a
// local arc length within that segment. A boundary value belongs to the
// following segment. Negative s maps into the first segment and s past
// the total length into the last one, so the local value may lie outside
// the segment's own range.
func (c *CatmullRom) CurveIndexAndS(s float64) (int, float64) {
	if len(c.segments) == 0 {
		invariant("curve index queried on a %s shape", c.shape)
	}
	last := len(c.segments) - 1
	if s < 0 {
		return 0, s
	}
	if s >= c.total {
		return last, s - (c.total - c.lengths[last])
	}
	prev := 0.0
	for i, end := range c.cumulative {
		if s < end {
			return i, s - prev
		}
		prev = end
	}
	invariant("arc length %g not covered by the segment table", s)
	return 0, 0
}

// SInSplineCurve converts a local arc length within the segment at index
// back to a spline arc length, the inverse of CurveIndexAndS.
func (c *CatmullRom) SInSplineCurve(index int, localS float64) float64 {
	if index < 0 || index >= len(c.segments) {
		invariant("segment index %d outside [0,%d)", index, len(c.segments))
	}
	return c.cumulative[index] - c.lengths[index] + localS
}

// Point returns the point at arc length s. A line shape answers with
// straight segment geometry; a point shape does not support the query.
func (c *CatmullRom) Point(s float64) r3.Vector {
	switch c.shape {
	case ShapeLine:
		return c.linePoint(s)
	case ShapeCurve:
		i, local := c.CurveIndexAndS(s)
		return c.segments[i].Point(local)
	}
	invariant("point query on a %s shape", c.shape)
	return r3.Vector{}
}

// Tangent returns the unit tangent at arc length s.
func (c *CatmullRom) Tangent(s float64) r3.Vector {
	switch c.shape {
	case ShapeLine:
		return c.points[1].Sub(c.points[0]).Normalize()
	case ShapeCurve:
		i, local := c.CurveIndexAndS(s)
		return c.segments[i].Tangent(local)
	}
	invariant("tangent query on a %s shape", c.shape)
	return r3.Vector{}
}

// Normal returns the unit normal at arc length s, pointing to the right
// of the direction of travel.
func (c *CatmullRom) Normal(s float64) r3.Vector {
	switch c.shape {
	case ShapeLine:
		d := c.points[1].Sub(c.points[0])
		return r3.Vector{X: d.Y, Y: -d.X}.Normalize()
	case ShapeCurve:
		i, local := c.CurveIndexAndS(s)
		return c.segments[i].Normal(local)
	}
	invariant("normal query on a %s shape", c.shape)
	return r3.Vector{}
}

// PoseAt returns position and heading at arc length s.
func (c *CatmullRom) PoseAt(s float64) geom.Pose {
	switch c.shape {
	case ShapeLine:
		d := c.points[1].Sub(c.points[0])
		return geom.NewPose(c.linePoint(s), math.Atan2(d.Y, d.X))
	case ShapeCurve:
		i, local := c.CurveIndexAndS(s)
		return c.segments[i].PoseAt(local)
	}
	invariant("pose query on a %s shape", c.shape)
	return geom.Pose{}
}

// OffsetPoint displaces the curve point at arc length s sideways along
// the normal. Positive offsets go to the right of the direction of
// travel; the curve point's height is kept.
func (c *CatmullRom) OffsetPoint(s, offset float64) r3.Vector {
	base := c.Point(s)
	n := c.Normal(s)
	theta := math.Atan2(n.Y, n.X)
	return r3.Vector{
		X: base.X + offset*math.Cos(theta),
		Y: base.Y + offset*math.Sin(theta),
		Z: base.Z,
	}
}

// SquaredDistanceIn2D is the squared planar distance between p and the
// curve point at arc length s.
func (c *CatmullRom) SquaredDistanceIn2D(p r3.Vector, s float64) float64 {
	return geom.SquaredDistance2D(p, c.Point(s))
}

// SquaredDistanceVector is the offset from the curve point at arc length
// s to p.
func (c *CatmullRom) SquaredDistanceVector(p r3.Vector, s float64) r3.Vector {
	return p.Sub(c.Point(s))
}

// MaximumCurvature is the largest planar curvature over all segments.
// Point and line shapes carry no curvature table and do not support the
// query.
func (c *CatmullRom) MaximumCurvature() float64 {
	if len(c.curvatures) == 0 {
		invariant("maximum curvature queried on a %s shape", c.shape)
	}
	return floats.Max(c.curvatures)
}

// lineSegment views a two-point spline as a straight segment.
func (c *CatmullRom) lineSegment() polygon.LineSegment {
	return polygon.LineSegment{Start: c.points[0], End: c.points[1]}
}

// linePoint is the line shape fallback for Point, mapping arc length to
// the segment parameter.
func (c *CatmullRom) linePoint(s float64) r3.Vector {
	seg := c.lineSegment()
	if geom.Is0(c.total) {
		return seg.Start
	}
	return seg.Point(s / c.total)
}

// checkConnection verifies that every segment spans exactly its two
// control points, within Epsilon per component. Fitted coefficients that
// miss their control points indicate malformed input, typically non-finite
// coordinates.
func (c *CatmullRom) checkConnection() error {
	if len(c.segments) == 0 {
		return ErrNoSegments
	}
	if len(c.points) != len(c.segments)+1 {
		return fmt.Errorf("%w: %d control points cannot yield %d segments",
			ErrEndpointMismatch, len(c.points), len(c.segments))
	}
	for i, seg := range c.segments {
		start, end := seg.Eval(0), seg.Eval(1)
		if !geom.Equal(start, c.points[i]) || !geom.Equal(end, c.points[i+1]) {
			tracer().Errorf("segment %d spans %v..%v, control points are %v..%v",
				i, start, end, c.points[i], c.points[i+1])
			return fmt.Errorf("%w: segment %d misses its control points", ErrEndpointMismatch, i)
		}
	}
	return nil
}

// fitSegment builds the cubic segment from control point i to i+1. Inner
// segments take four consecutive points; the first and last segment use a
// one-sided three-point rule so the spline meets the terminal control
// points exactly.
func fitSegment(points []r3.Vector, i int) Hermite {
	switch {
	case i == 0:
		p0, p1, p2 := points[0], points[1], points[2]
		return NewHermite(
			openingAxis(p0.X, p1.X, p2.X),
			openingAxis(p0.Y, p1.Y, p2.Y),
			openingAxis(p0.Z, p1.Z, p2.Z),
		)
	case i == len(points)-2:
		p0, p1, p2 := points[i-1], points[i], points[i+1]
		return NewHermite(
			closingAxis(p0.X, p1.X, p2.X),
			closingAxis(p0.Y, p1.Y, p2.Y),
			closingAxis(p0.Z, p1.Z, p2.Z),
		)
	}
	p0, p1, p2, p3 := points[i-1], points[i], points[i+1], points[i+2]
	return NewHermite(
		interiorAxis(p0.X, p1.X, p2.X, p3.X),
		interiorAxis(p0.Y, p1.Y, p2.Y, p3.Y),
		interiorAxis(p0.Z, p1.Z, p2.Z, p3.Z),
	)
}

// The uniform Catmull-Rom coefficient rules, one axis at a time. The
// factor 1/2 is the uniform tension.

func openingAxis(p0, p1, p2 float64) polyn.Cubic {
	return polyn.Cubic{
		B: 0.5 * (p0 - 2*p1 + p2),
		C: 0.5 * (-3*p0 + 4*p1 - p2),
		D: p0,
	}
}

func interiorAxis(p0, p1, p2, p3 float64) polyn.Cubic {
	return polyn.Cubic{
		A: 0.5 * (-p0 + 3*p1 - 3*p2 + p3),
		B: 0.5 * (2*p0 - 5*p1 + 4*p2 - p3),
		C: 0.5 * (p2 - p0),
		D: p1,
	}
}

func closingAxis(p0, p1, p2 float64) polyn.Cubic {
	return polyn.Cubic{
		B: 0.5 * (p0 - 2*p1 + p2),
		C: 0.5 * (p2 - p0),
		D: p1,
	}
}
