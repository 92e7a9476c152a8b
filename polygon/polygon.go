/*
Package polygon provides planar polygon primitives over 3D road geometry:
boundary edge decomposition, convex hulls, pose-aligned footprint
rectangles, and corridor outlines with boolean overlap checks through
polyclip.

# BSD License

# Copyright (c) the trajekt project authors

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"math"
	"sort"

	"github.com/akavel/polyclip-go"
	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing"

	"github.com/trajekt/geom"
)

// L traces to a tracer with key 'geom.polygon'.
func L() tracing.Trace {
	return tracing.Select("geom.polygon")
}

// Box spans an axis-aligned rectangle between two corner points. The XY
// extent comes from both arguments, the height from the first. Corners
// are returned counterclockwise starting at the minimum corner.
func Box(a, b r3.Vector) []r3.Vector {
	minX, maxX := math.Min(a.X, b.X), math.Max(a.X, b.X)
	minY, maxY := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return []r3.Vector{
		{X: minX, Y: minY, Z: a.Z},
		{X: maxX, Y: minY, Z: a.Z},
		{X: maxX, Y: maxY, Z: a.Z},
		{X: minX, Y: maxY, Z: a.Z},
	}
}

// Rectangle builds the world-frame footprint of a pose: length extends
// along the pose heading, width across it. Corners are returned
// counterclockwise starting at the front left.
func Rectangle(pose geom.Pose, length, width float64) []r3.Vector {
	l, w := length/2, width/2
	return geom.TransformAll(pose, []r3.Vector{
		{X: l, Y: w},
		{X: -l, Y: w},
		{X: -l, Y: -w},
		{X: l, Y: -w},
	})
}

// ConvexHull2D computes the convex hull of the XY projection of the given
// points, in counterclockwise order without repeating the first point.
// Heights of the winning points are carried along. Fewer than three
// distinct points are returned as they are (sorted).
func ConvexHull2D(points []r3.Vector) []r3.Vector {
	pts := make([]r3.Vector, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	n := len(pts)
	if n < 3 {
		return pts
	}
	hull := make([]r3.Vector, 0, 2*n)
	for _, p := range pts { // lower chain
		for len(hull) >= 2 && cross2D(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := n - 2; i >= 0; i-- { // upper chain
		p := pts[i]
		for len(hull) >= lower && cross2D(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

// cross2D is the z component of (b−a)×(c−a).
func cross2D(a, b, c r3.Vector) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// === polyclip Adapters =====================================================

// ToPolyclip projects a point ring onto the XY plane as a single-contour
// polyclip polygon.
func ToPolyclip(points []r3.Vector) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, len(points))
	for _, p := range points {
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	return polyclip.Polygon{contour}
}

// Corridor builds the closed outline of a curve corridor from its left
// bound walked forward and its right bound walked backward. Both bounds
// must run in the same curve direction, the way the spline emits them.
func Corridor(left, right []r3.Vector) polyclip.Polygon {
	contour := make(polyclip.Contour, 0, len(left)+len(right))
	for _, p := range left {
		contour = append(contour, polyclip.Point{X: p.X, Y: p.Y})
	}
	for i := len(right) - 1; i >= 0; i-- {
		contour = append(contour, polyclip.Point{X: right[i].X, Y: right[i].Y})
	}
	return polyclip.Polygon{contour}
}

// Overlap reports whether two polygons share area in the XY plane.
func Overlap(a, b polyclip.Polygon) bool {
	clipped := a.Construct(polyclip.INTERSECTION, b)
	L().Debugf("overlap construction yields %d contours", len(clipped))
	return len(clipped) > 0
}
