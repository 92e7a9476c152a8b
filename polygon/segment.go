package polygon

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/trajekt/geom"
)

// LineSegment is a directed straight segment between two 3D points. The
// 2D queries operate on its XY projection; heights only contribute to the
// 3D length.
type LineSegment struct {
	Start r3.Vector
	End   r3.Vector
}

// Vector is the direction End−Start, not normalized.
func (seg LineSegment) Vector() r3.Vector {
	return seg.End.Sub(seg.Start)
}

// Length is the 3D length of the segment.
func (seg LineSegment) Length() float64 {
	return seg.Start.Distance(seg.End)
}

// Length2D is the length of the XY projection of the segment.
func (seg LineSegment) Length2D() float64 {
	return geom.Distance2D(seg.Start, seg.End)
}

// Point evaluates the segment at parameter t. Values outside [0,1]
// extrapolate along the carrier line.
func (seg LineSegment) Point(t float64) r3.Vector {
	return seg.Start.Add(seg.Vector().Mul(t))
}

// Intersection2D intersects the XY projections of two segments and
// returns the crossing point, with the height interpolated along the
// receiver. Parallel and collinear configurations yield no intersection.
func (seg LineSegment) Intersection2D(other LineSegment) (r3.Vector, bool) {
	t, ok := seg.intersectionParam(other)
	if !ok {
		return r3.Vector{}, false
	}
	return seg.Point(t), true
}

// Intersection2DSValue returns the arc length along the receiver at which
// the XY projections of the two segments cross.
func (seg LineSegment) Intersection2DSValue(other LineSegment) (float64, bool) {
	t, ok := seg.intersectionParam(other)
	if !ok {
		return 0, false
	}
	return t * seg.Length(), true
}

// intersectionParam solves the 2×2 crossing system of the two XY
// projections. Both parameters must fall into [0,1], with an epsilon band
// admitting endpoint touches.
func (seg LineSegment) intersectionParam(other LineSegment) (float64, bool) {
	d1 := seg.Vector()
	d2 := other.Vector()
	det := d1.X*d2.Y - d1.Y*d2.X
	if geom.Is0(det) {
		return 0, false
	}
	ex := other.Start.X - seg.Start.X
	ey := other.Start.Y - seg.Start.Y
	t := (ex*d2.Y - ey*d2.X) / det
	u := (ex*d1.Y - ey*d1.X) / det
	if t < -geom.Epsilon || t > 1+geom.Epsilon || u < -geom.Epsilon || u > 1+geom.Epsilon {
		return 0, false
	}
	return math.Min(1, math.Max(0, t)), true
}

// Edges decomposes an ordered point sequence into its consecutive
// segments. With closed set, an additional segment connects the last
// point back to the first, forming a polygon boundary.
func Edges(points []r3.Vector, closed bool) []LineSegment {
	n := len(points)
	if n < 2 {
		return nil
	}
	segments := make([]LineSegment, 0, n)
	for i := 0; i+1 < n; i++ {
		segments = append(segments, LineSegment{Start: points[i], End: points[i+1]})
	}
	if closed {
		segments = append(segments, LineSegment{Start: points[n-1], End: points[0]})
	}
	return segments
}
