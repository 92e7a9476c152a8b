package geom

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := 0.000000008
	if !Is0(a) {
		t.Errorf("Expected a to be zero, is not")
	}
	if Zap(a) != 0 {
		t.Errorf("Expected a to be zapped to 0, is not")
	}
	if r := Round(1.00000004); math.Abs(r-1) > Epsilon {
		t.Errorf("Expected 1.00000004 to round to 1, got %g", r)
	}
}

func TestPointBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2, 1)
	q := P(-3, -2, -1)
	if !Equal(p.Add(q), Origin) {
		t.Errorf("Expected p + q to be (0,0,0), is %v", p.Add(q))
	}
}

func TestDistance2DIgnoresHeight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(0, 0, 0)
	q := P(3, 4, 12)
	if d := Distance2D(p, q); math.Abs(d-5) > Epsilon {
		t.Errorf("Expected 2D distance 5, got %g", d)
	}
	if d := SquaredDistance2D(p, q); math.Abs(d-25) > Epsilon {
		t.Errorf("Expected squared 2D distance 25, got %g", d)
	}
}

func TestYawRoundtrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, yaw := range []float64{0, 0.5, -1.2, math.Pi / 2, 3} {
		q := RotationFromYaw(yaw)
		if got := Yaw(q); math.Abs(got-yaw) > Epsilon {
			t.Errorf("Expected yaw %g back from quaternion, got %g", yaw, got)
		}
	}
}

func TestRotateVector(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := RotationFromYaw(90 * Deg2Rad)
	v := Rotate(q, P(1, 0, 0))
	if !Equal(v, P(0, 1, 0)) {
		t.Errorf("Expected (1,0,0) rotated by 90° to be (0,1,0), is %v", v)
	}
}

func TestTransform(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pose := NewPose(P(1, 2, 0), 90*Deg2Rad)
	if world := Transform(pose, P(1, 0, 0)); !Equal(world, P(1, 3, 0)) {
		t.Errorf("Expected transformed point (1,3,0), is %v", world)
	}
	all := TransformAll(pose, []r3.Vector{P(1, 0, 0), P(0, 1, 0)})
	if len(all) != 2 || !Equal(all[1], P(0, 2, 0)) {
		t.Errorf("Expected second transformed point (0,2,0), got %v", all)
	}
}

func TestRelativePose(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ref := NewPose(P(10, 0, 0), 90*Deg2Rad)
	target := NewPose(P(10, 5, 0), 180*Deg2Rad)
	rel := RelativePose(ref, target)
	if !Equal(rel.Position, P(5, 0, 0)) {
		t.Errorf("Expected relative position (5,0,0), is %v", rel.Position)
	}
	if yaw := Yaw(rel.Orientation); math.Abs(yaw-90*Deg2Rad) > Epsilon {
		t.Errorf("Expected relative yaw 90°, got %g°", yaw/Deg2Rad)
	}
}

func TestSlerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q0 := RotationFromYaw(0)
	q1 := RotationFromYaw(90 * Deg2Rad)
	if got := Yaw(Slerp(q0, q1, 0)); math.Abs(got) > Epsilon {
		t.Errorf("Expected slerp at t=0 to stay at yaw 0, got %g", got)
	}
	if got := Yaw(Slerp(q0, q1, 1)); math.Abs(got-90*Deg2Rad) > Epsilon {
		t.Errorf("Expected slerp at t=1 to reach yaw 90°, got %g°", got/Deg2Rad)
	}
	if got := Yaw(Slerp(q0, q1, 0.5)); math.Abs(got-45*Deg2Rad) > Epsilon {
		t.Errorf("Expected slerp midpoint at yaw 45°, got %g°", got/Deg2Rad)
	}
	if got := Yaw(Slerp(q0, q0, 0.5)); math.Abs(got) > Epsilon {
		t.Errorf("Expected slerp between equal rotations to stay put, got %g", got)
	}
}
