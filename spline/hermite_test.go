package spline

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/trajekt/geom"
	"github.com/trajekt/geom/polygon"
	"github.com/trajekt/geom/polyn"
)

// x(t) = 10t, a straight run along the x axis.
func straightSegment() Hermite {
	return NewHermite(polyn.Cubic{C: 10}, polyn.Cubic{}, polyn.Cubic{})
}

// x(t) = t, y(t) = t*t, the unit parabola.
func parabolaSegment() Hermite {
	return NewHermite(polyn.Cubic{C: 1}, polyn.Cubic{B: 1}, polyn.Cubic{})
}

func TestHermiteStraight(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	if math.Abs(h.Length()-10) > geom.Epsilon {
		t.Errorf("Expected length 10, got %g", h.Length())
	}
	if p := h.Point(5); !geom.Equal(p, geom.P(5, 0, 0)) {
		t.Errorf("Expected midpoint (5,0,0), got %v", p)
	}
	if tg := h.Tangent(5); !geom.Equal(tg, geom.P(1, 0, 0)) {
		t.Errorf("Expected tangent (1,0,0), got %v", tg)
	}
	if n := h.Normal(5); !geom.Equal(n, geom.P(0, -1, 0)) {
		t.Errorf("Expected normal (0,-1,0), got %v", n)
	}
	pose := h.PoseAt(2.5)
	if !geom.Equal(pose.Position, geom.P(2.5, 0, 0)) || math.Abs(geom.Yaw(pose.Orientation)) > geom.Epsilon {
		t.Errorf("Expected a level pose at (2.5,0,0), got %s", pose)
	}
	if h.Max2DCurvature() > geom.Epsilon {
		t.Errorf("Expected zero curvature on a straight segment, got %g", h.Max2DCurvature())
	}
}

func TestHermiteParabolaLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := parabolaSegment()
	want := math.Sqrt(5)/2 + math.Asinh(2)/4 // closed form for int sqrt(1+4t^2)
	if math.Abs(h.Length()-want) > 1e-9 {
		t.Errorf("Expected arc length %.10f, got %.10f", want, h.Length())
	}
}

func TestHermiteParamRoundtrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := parabolaSegment()
	for _, s := range []float64{0, 0.3, 0.7, 1.1, h.Length()} {
		back := h.lengthAtParam(h.paramAtLength(s))
		if math.Abs(back-s) > geom.Epsilon {
			t.Errorf("Expected arc length %g back from the table, got %g", s, back)
		}
	}
}

func TestHermiteCurvature(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := parabolaSegment()
	if k := h.Max2DCurvature(); math.Abs(k-2) > 1e-9 {
		t.Errorf("Expected maximum curvature 2 at the apex, got %g", k)
	}
	if k, want := h.curvature2D(1), 2/math.Pow(5, 1.5); math.Abs(k-want) > 1e-12 {
		t.Errorf("Expected curvature %g at t=1, got %g", want, k)
	}
}

func TestHermiteExtrapolation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	if p := h.Point(-5); !geom.Equal(p, geom.P(-5, 0, 0)) {
		t.Errorf("Expected backward extension to (-5,0,0), got %v", p)
	}
	if p := h.Point(15); !geom.Equal(p, geom.P(15, 0, 0)) {
		t.Errorf("Expected forward extension to (15,0,0), got %v", p)
	}
	if p := h.Eval(-0.5); !geom.Equal(p, geom.P(-5, 0, 0)) {
		t.Errorf("Expected Eval(-0.5) at (-5,0,0), got %v", p)
	}
}

func TestHermiteLineCollision(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	gate := polygon.LineSegment{Start: geom.P(5, -1, 0), End: geom.P(5, 1, 0)}
	s, ok := h.CollisionPointIn2DWithLine(gate, false)
	if !ok || math.Abs(s-5) > 1e-6 {
		t.Errorf("Expected a crossing at s=5, got %g (%v)", s, ok)
	}
	missed := polygon.LineSegment{Start: geom.P(20, -1, 0), End: geom.P(20, 1, 0)}
	if _, ok := h.CollisionPointIn2DWithLine(missed, false); ok {
		t.Errorf("Expected no crossing past the segment end")
	}
	aside := polygon.LineSegment{Start: geom.P(5, 2, 0), End: geom.P(5, 4, 0)}
	if _, ok := h.CollisionPointIn2DWithLine(aside, false); ok {
		t.Errorf("Expected no crossing besides the segment")
	}
}

func TestHermitePolygonCollision(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	box := polygon.Box(geom.P(4, -1, 0), geom.P(6, 1, 0))
	front, ok := h.CollisionPointIn2D(box, false)
	if !ok || math.Abs(front-4) > 1e-6 {
		t.Errorf("Expected to enter the box at s=4, got %g (%v)", front, ok)
	}
	rear, ok := h.CollisionPointIn2D(box, true)
	if !ok || math.Abs(rear-6) > 1e-6 {
		t.Errorf("Expected to leave the box at s=6, got %g (%v)", rear, ok)
	}
}

func TestHermiteSValue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	pose := geom.NewPose(geom.P(5, 0.5, 0), 0)
	s, ok := h.SValue(pose, 1)
	if !ok || math.Abs(s-5) > 1e-6 {
		t.Errorf("Expected the closest point at s=5, got %g (%v)", s, ok)
	}
	if _, ok := h.SValue(pose, 0.1); ok {
		t.Errorf("Expected no match beyond the distance threshold")
	}
}

func TestHermiteSquaredDistance(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := straightSegment()
	p := geom.P(3, 4, 7)
	if d2 := h.SquaredDistanceIn2D(p, 3); math.Abs(d2-16) > 1e-9 {
		t.Errorf("Expected squared distance 16, got %g", d2)
	}
	if v := h.SquaredDistanceVector(p, 3); !geom.Equal(v, geom.P(0, 4, 7)) {
		t.Errorf("Expected offset (0,4,7), got %v", v)
	}
}
