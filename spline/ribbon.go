package spline

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/trajekt/geom"
)

// Trajectory samples points from arc length start toward end, one every
// resolution meters, with both ends included. The walk follows the sign
// of end-start and the resolution is taken as a magnitude. All samples
// are displaced sideways by offset, see OffsetPoint. A zero resolution
// panics.
func (c *CatmullRom) Trajectory(start, end, resolution, offset float64) []r3.Vector {
	if geom.Is0(resolution) {
		panic("spline: trajectory resolution must not be zero")
	}
	steps := trajectorySteps(start, end, resolution)
	step := math.Abs(resolution)
	if end < start {
		step = -step
	}
	points := make([]r3.Vector, 0, steps+1)
	for i := 0; i < steps; i++ {
		points = append(points, c.OffsetPoint(start+float64(i)*step, offset))
	}
	return append(points, c.OffsetPoint(end, offset))
}

// trajectorySteps is the number of full steps before the terminal pose.
// A span that is an exact multiple of the resolution, up to float noise,
// rounds instead of ceiling up.
func trajectorySteps(start, end, resolution float64) int {
	q := math.Abs(end-start) / math.Abs(resolution)
	if r := math.Round(q); math.Abs(q-r) <= geom.Epsilon {
		return int(r)
	}
	return int(math.Ceil(q))
}

// LeftBound samples the left edge of a corridor of the given width
// centered on the spline, lifted by zOffset. numPoints counts sampling
// intervals, see bound.
func (c *CatmullRom) LeftBound(width float64, numPoints int, zOffset float64) []r3.Vector {
	return c.bound(-0.5*width, numPoints, zOffset)
}

// RightBound samples the right edge of a corridor of the given width
// centered on the spline, lifted by zOffset.
func (c *CatmullRom) RightBound(width float64, numPoints int, zOffset float64) []r3.Vector {
	return c.bound(0.5*width, numPoints, zOffset)
}

// Polygon triangulates a corridor of the given width centered on the
// spline into a flat triangle list, two triangles per sampling interval.
// Each interval contributes its six vertices in the order right-left-right,
// left-left-right.
func (c *CatmullRom) Polygon(width float64, numPoints int, zOffset float64) []r3.Vector {
	right := c.RightBound(width, numPoints, zOffset)
	left := c.LeftBound(width, numPoints, zOffset)
	tri := make([]r3.Vector, 0, 6*numPoints)
	for i := 0; i+1 < len(right); i++ {
		tri = append(tri,
			right[i], left[i], right[i+1],
			left[i], left[i+1], right[i+1],
		)
	}
	return tri
}

// bound samples offset points along the whole spline. numPoints counts
// the sampling intervals, so the result has numPoints+1 entries, the last
// one at the spline end. Fewer than one interval panics.
func (c *CatmullRom) bound(offset float64, numPoints int, zOffset float64) []r3.Vector {
	if numPoints < 1 {
		panic("spline: bound needs at least one sampling interval")
	}
	step := c.total / float64(numPoints)
	points := make([]r3.Vector, numPoints+1)
	for i := range points {
		p := c.OffsetPoint(float64(i)*step, offset)
		p.Z += zOffset
		points[i] = p
	}
	return points
}
