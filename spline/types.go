package spline

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geom.spline'
func tracer() tracing.Trace {
	return tracing.Select("geom.spline")
}

var (
	// ErrEmptyControlPoints indicates construction from an empty point list.
	ErrEmptyControlPoints = errors.New("control points are empty, cannot determine curve shape")
	// ErrEndpointMismatch indicates consecutive segments whose endpoints do not meet.
	ErrEndpointMismatch = errors.New("consecutive segments do not connect")
	// ErrNoSegments indicates a curve-shaped spline without any segments.
	ErrNoSegments = errors.New("spline curve has no segments")
	// ErrInternal wraps broken invariants, found at runtime. It is used as a
	// panic value and may be matched with errors.Is after recovering.
	ErrInternal = errors.New("internal spline error")
)

// Shape classifies a spline by the number of control points it was built
// from. Geometric queries are only defined for lines and curves; a
// degenerate point supports none of them.
type Shape int8

// Shape categories.
const (
	ShapePoint Shape = iota // a single control point
	ShapeLine               // two control points
	ShapeCurve              // three or more control points
)

func (shape Shape) String() string {
	switch shape {
	case ShapePoint:
		return "point"
	case ShapeLine:
		return "line"
	case ShapeCurve:
		return "curve"
	}
	return "unknown"
}

// invariant panics with an ErrInternal-wrapped error. Callers use it for
// conditions that cannot occur unless the spline's bookkeeping is broken.
func invariant(format string, args ...interface{}) {
	tracer().Errorf(format, args...)
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrInternal}, args...)...))
}
