/*
Package geom implements the shared spatial arithmetic for road and
trajectory geometry: an epsilon regime for float comparison, planar
distance helpers, and rigid poses composed of 3D positions and
quaternion orientations.

# BSD License

# Copyright (c) the trajekt project authors

All rights reserved.

Please refer to the license file for more information.
*/
package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/gonum/num/quat"
)

// tracer writes to trace with key 'geom'
func tracer() tracing.Trace {
	return tracing.Select("geom")
}

// === Numeric Regime ========================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// === Points and Vectors ====================================================

// P is a quick notation for constructing a 3D point from floats.
func P(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Origin represents the frequently used constant (0,0,0).
var Origin = P(0, 0, 0)

// Equal compares two points under the epsilon regime, component-wise.
func Equal(p, q r3.Vector) bool {
	return Is0(p.X-q.X) && Is0(p.Y-q.Y) && Is0(p.Z-q.Z)
}

// SquaredDistance2D is the squared distance between the XY projections
// of p and q. Height differences do not contribute.
func SquaredDistance2D(p, q r3.Vector) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance2D is the distance between the XY projections of p and q.
func Distance2D(p, q r3.Vector) float64 {
	return math.Sqrt(SquaredDistance2D(p, q))
}

// === Poses and Orientations ================================================

// Pose is a rigid placement in space: a position together with a unit
// quaternion orientation.
type Pose struct {
	Position    r3.Vector
	Orientation quat.Number
}

// NewPose assembles a pose from a position and a heading angle (radians,
// counterclockwise around the vertical axis).
func NewPose(position r3.Vector, yaw float64) Pose {
	return Pose{Position: position, Orientation: RotationFromYaw(yaw)}
}

// Pretty Stringer for poses.
func (pose Pose) String() string {
	return fmt.Sprintf("(%g,%g,%g|%g°)",
		pose.Position.X, pose.Position.Y, pose.Position.Z,
		Yaw(pose.Orientation)/Deg2Rad)
}

// RotationFromYaw builds the unit quaternion for a rotation by yaw
// (radians, counterclockwise) around the vertical axis.
func RotationFromYaw(yaw float64) quat.Number {
	return quat.Number{Real: math.Cos(yaw / 2), Kmag: math.Sin(yaw / 2)}
}

// Yaw extracts the heading angle around the vertical axis from a unit
// quaternion.
func Yaw(q quat.Number) float64 {
	siny := 2 * (q.Real*q.Kmag + q.Imag*q.Jmag)
	cosy := 1 - 2*(q.Jmag*q.Jmag+q.Kmag*q.Kmag)
	return math.Atan2(siny, cosy)
}

// Rotate applies a unit quaternion rotation to a vector.
func Rotate(q quat.Number, v r3.Vector) r3.Vector {
	p := quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
	r := quat.Mul(quat.Mul(q, p), quat.Conj(q))
	return r3.Vector{X: r.Imag, Y: r.Jmag, Z: r.Kmag}
}

// Transform maps a point from the pose frame to the world frame.
func Transform(pose Pose, p r3.Vector) r3.Vector {
	return pose.Position.Add(Rotate(pose.Orientation, p))
}

// TransformAll maps points from the pose frame to the world frame.
// The argument is unchanged and a new slice is returned.
func TransformAll(pose Pose, points []r3.Vector) []r3.Vector {
	world := make([]r3.Vector, len(points))
	for i, p := range points {
		world[i] = Transform(pose, p)
	}
	return world
}

// RelativePose expresses target in the frame of ref.
func RelativePose(ref, target Pose) Pose {
	inv := quat.Conj(ref.Orientation)
	return Pose{
		Position:    Rotate(inv, target.Position.Sub(ref.Position)),
		Orientation: quat.Mul(inv, target.Orientation),
	}
}

// Slerp interpolates between two unit quaternions along the shorter great
// arc. Arguments must be normalized; the interpolation parameter is not
// clamped.
func Slerp(q0, q1 quat.Number, t float64) quat.Number {
	dot := q0.Real*q1.Real + q0.Imag*q1.Imag + q0.Jmag*q1.Jmag + q0.Kmag*q1.Kmag
	if dot < 0 {
		q1 = quat.Scale(-1, q1)
		dot = -dot
	}
	if dot > 1+Epsilon {
		tracer().Errorf("slerp expects unit quaternions, |q0|=%g |q1|=%g",
			quat.Abs(q0), quat.Abs(q1))
	}
	if dot > 1-Epsilon {
		// angle too small for the sine weights, interpolate linearly
		lerp := quat.Add(quat.Scale(1-t, q0), quat.Scale(t, q1))
		return quat.Scale(1/quat.Abs(lerp), lerp)
	}
	theta := math.Acos(math.Min(dot, 1))
	sin := math.Sin(theta)
	return quat.Add(
		quat.Scale(math.Sin((1-t)*theta)/sin, q0),
		quat.Scale(math.Sin(t*theta)/sin, q1))
}
