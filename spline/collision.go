package spline

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/floats"

	"github.com/trajekt/geom"
	"github.com/trajekt/geom/polygon"
	"github.com/trajekt/geom/polyn"
)

// CollisionPointIn2DWithLine intersects the segment's xy projection with
// a straight line segment. Of all crossings it returns the one with the
// smallest local arc length, or the largest if searchBackward is set.
func (h Hermite) CollisionPointIn2DWithLine(line polygon.LineSegment, searchBackward bool) (float64, bool) {
	e := line.End.Y - line.Start.Y
	f := line.Start.X - line.End.X
	g := e*line.Start.X + f*line.Start.Y
	crossing := polyn.Cubic{
		A: e*h.x.A + f*h.y.A,
		B: e*h.x.B + f*h.y.B,
		C: e*h.x.C + f*h.y.C,
		D: e*h.x.D + f*h.y.D - g,
	}
	var hits []float64
	for _, t := range crossing.RootsInUnitInterval() {
		if within2D(h.Eval(t), line) {
			hits = append(hits, h.lengthAtParam(t))
		}
	}
	return pickHit(hits, searchBackward)
}

// CollisionPointIn2D intersects the segment's xy projection with the
// boundary of a closed polygon. See CollisionPointIn2DWithLine for the
// direction convention.
func (h Hermite) CollisionPointIn2D(poly []r3.Vector, searchBackward bool) (float64, bool) {
	var hits []float64
	for _, edge := range polygon.Edges(poly, true) {
		if s, ok := h.CollisionPointIn2DWithLine(edge, searchBackward); ok {
			hits = append(hits, s)
		}
	}
	return pickHit(hits, searchBackward)
}

// SValue finds the local arc length of the segment point closest to the
// pose position in the xy plane. It reports false if that point is
// farther away than threshold.
func (h Hermite) SValue(pose geom.Pose, threshold float64) (float64, bool) {
	t, d2 := h.nearest2D(pose.Position)
	if d2 > threshold*threshold {
		return 0, false
	}
	return h.lengthAtParam(t), true
}

// CollisionPointIn2D finds the spline arc length at which the spline
// crosses the boundary of poly in the xy plane. Forward search yields the
// first crossing along the spline, backward search the last one. A point
// shape never collides.
func (c *CatmullRom) CollisionPointIn2D(poly []r3.Vector, searchBackward bool) (float64, bool) {
	switch c.shape {
	case ShapeLine:
		return c.lineCollision(polygon.Edges(poly, true), searchBackward)
	case ShapeCurve:
		return c.scanSegments(searchBackward, func(seg Hermite) (float64, bool) {
			return seg.CollisionPointIn2D(poly, searchBackward)
		})
	}
	return 0, false
}

// CollisionPointIn2DWithLine finds the spline arc length at which the
// spline crosses a straight line segment in the xy plane.
func (c *CatmullRom) CollisionPointIn2DWithLine(line polygon.LineSegment, searchBackward bool) (float64, bool) {
	switch c.shape {
	case ShapeLine:
		return c.lineCollision([]polygon.LineSegment{line}, searchBackward)
	case ShapeCurve:
		return c.scanSegments(searchBackward, func(seg Hermite) (float64, bool) {
			return seg.CollisionPointIn2DWithLine(line, searchBackward)
		})
	}
	return 0, false
}

// SValue finds the arc length at which the spline passes the pose
// position in the xy plane, closer than threshold. Segments are walked
// in order and the first one matching wins. Line shapes project onto
// the straight segment, point shapes never answer.
func (c *CatmullRom) SValue(pose geom.Pose, threshold float64) (float64, bool) {
	switch c.shape {
	case ShapeLine:
		return c.lineSValue(pose, threshold)
	case ShapeCurve:
		for i, seg := range c.segments {
			if local, ok := seg.SValue(pose, threshold); ok {
				return c.SInSplineCurve(i, local), true
			}
		}
	}
	return 0, false
}

// scanSegments walks the segments in search direction and converts the
// first hit to a spline arc length. The partition is ordered, so the
// first segment reporting a hit holds the extremal one.
func (c *CatmullRom) scanSegments(searchBackward bool, query func(Hermite) (float64, bool)) (float64, bool) {
	if searchBackward {
		for i := len(c.segments) - 1; i >= 0; i-- {
			if s, ok := query(c.segments[i]); ok {
				return c.SInSplineCurve(i, s), true
			}
		}
		return 0, false
	}
	for i, seg := range c.segments {
		if s, ok := query(seg); ok {
			return c.SInSplineCurve(i, s), true
		}
	}
	return 0, false
}

// lineCollision intersects the two-point spline with each candidate edge
// and aggregates the crossing arc lengths.
func (c *CatmullRom) lineCollision(edges []polygon.LineSegment, searchBackward bool) (float64, bool) {
	seg := c.lineSegment()
	var hits []float64
	for _, edge := range edges {
		if s, ok := seg.Intersection2DSValue(edge); ok {
			hits = append(hits, s)
		}
	}
	return pickHit(hits, searchBackward)
}

// lineSValue projects the pose position onto the two-point segment,
// clamped to the segment range.
func (c *CatmullRom) lineSValue(pose geom.Pose, threshold float64) (float64, bool) {
	seg := c.lineSegment()
	d := seg.End.Sub(seg.Start)
	den := d.X*d.X + d.Y*d.Y
	t := 0.0
	if !geom.Is0(den) {
		t = ((pose.Position.X-seg.Start.X)*d.X + (pose.Position.Y-seg.Start.Y)*d.Y) / den
		t = math.Max(0, math.Min(1, t))
	}
	if geom.SquaredDistance2D(pose.Position, seg.Point(t)) > threshold*threshold {
		return 0, false
	}
	return t * c.total, true
}

// nearest2D locates the curve parameter closest to p in the xy plane. It
// scans the arc table knots and refines around the best one with a golden
// section search.
func (h Hermite) nearest2D(p r3.Vector) (t, d2 float64) {
	dist := func(t float64) float64 {
		return geom.SquaredDistance2D(p, h.Eval(t))
	}
	best, bestT := math.Inf(1), 0.0
	for i := 0; i <= arcSamples; i++ {
		knot := float64(i) / arcSamples
		if d := dist(knot); d < best {
			best, bestT = d, knot
		}
	}
	lo := math.Max(0, bestT-1.0/arcSamples)
	hi := math.Min(1, bestT+1.0/arcSamples)
	t = refineMin2D(dist, lo, hi)
	return t, dist(t)
}

const invPhi = 0.6180339887498949

// refineMin2D shrinks [lo,hi] around a minimum of f with a golden section
// search and returns the bracket midpoint.
func refineMin2D(f func(float64) float64, lo, hi float64) float64 {
	a, b := lo, hi
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for i := 0; i < 40; i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	return 0.5 * (a + b)
}

// pickHit aggregates candidate arc lengths, the smallest one forward and
// the largest one backward.
func pickHit(hits []float64, searchBackward bool) (float64, bool) {
	if len(hits) == 0 {
		return 0, false
	}
	if searchBackward {
		return floats.Max(hits), true
	}
	return floats.Min(hits), true
}

// within2D reports whether p lies within the xy bounding box of the
// segment, padded by Epsilon.
func within2D(p r3.Vector, seg polygon.LineSegment) bool {
	return p.X >= math.Min(seg.Start.X, seg.End.X)-geom.Epsilon &&
		p.X <= math.Max(seg.Start.X, seg.End.X)+geom.Epsilon &&
		p.Y >= math.Min(seg.Start.Y, seg.End.Y)-geom.Epsilon &&
		p.Y <= math.Max(seg.Start.Y, seg.End.Y)+geom.Epsilon
}
