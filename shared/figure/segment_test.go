package figure

import (
	"math"
	"testing"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

func TestSegmentLengthFloor(t *testing.T) {
	s := newSegment("stub", gamemath.Vec{}, 0.0001, 0, 0, math.Pi)
	if s.Length() != MinSegmentLength {
		t.Errorf("Length = %v; want floor %v", s.Length(), MinSegmentLength)
	}
}

func TestSegmentEnd(t *testing.T) {
	s := newSegment("arm", gamemath.Vec{X: 10, Y: 20}, 5, 0, 0, math.Pi)
	if end := s.End(); !end.Equal(gamemath.Vec{X: 15, Y: 20}) {
		t.Errorf("End = %v; want {15 20}", end)
	}
	s.RotateTo(math.Pi / 2)
	if end := s.End(); !end.Equal(gamemath.Vec{X: 10, Y: 25}) {
		t.Errorf("End after rotate = %v; want {10 25}", end)
	}
}

func TestRotateToReportsConstraint(t *testing.T) {
	s := newSegment("elbow", gamemath.Vec{}, 10, math.Pi/4, 0, math.Pi/2)

	if !s.RotateTo(math.Pi / 3) {
		t.Error("in-range rotation reported constrained")
	}
	if s.RotateTo(math.Pi) {
		t.Error("out-of-range rotation reported unconstrained")
	}
	if s.Angle() != math.Pi/2 {
		t.Errorf("angle after constrained rotate = %v; want max %v", s.Angle(), math.Pi/2)
	}
}

func TestRotateAccumulatesFromCurrentAngle(t *testing.T) {
	s := newSegment("elbow", gamemath.Vec{}, 10, 0, 0, math.Pi)
	s.Rotate(math.Pi / 4)
	s.Rotate(math.Pi / 4)
	if math.Abs(s.Angle()-math.Pi/2) > gamemath.Epsilon {
		t.Errorf("angle = %v; want π/2", s.Angle())
	}
}

func TestSetAngleLimitsRejectsInvertedRange(t *testing.T) {
	s := newSegment("elbow", gamemath.Vec{}, 10, math.Pi/4, 0, math.Pi)
	s.SetAngleLimits(math.Pi, 0)
	if s.MinAngle() != 0 || s.MaxAngle() != math.Pi {
		t.Error("inverted limits should be ignored")
	}
	s.SetAngleLimits(math.Pi/2, math.Pi)
	if s.Angle() != math.Pi/2 {
		t.Errorf("angle not re-clamped to new limits: %v", s.Angle())
	}
}

func TestClosestPointProjection(t *testing.T) {
	s := newSegment("bar", gamemath.Vec{X: 0, Y: 0}, 10, 0, 0, math.Pi)

	// Point above the middle projects straight down.
	if got := s.ClosestPointTo(gamemath.Vec{X: 5, Y: 7}); !got.Equal(gamemath.Vec{X: 5, Y: 0}) {
		t.Errorf("ClosestPointTo mid = %v; want {5 0}", got)
	}
	// Projection clamps to the segment extent.
	if got := s.ClosestPointTo(gamemath.Vec{X: -3, Y: 2}); !got.Equal(gamemath.Vec{X: 0, Y: 0}) {
		t.Errorf("ClosestPointTo before start = %v; want {0 0}", got)
	}
	if got := s.ClosestPointTo(gamemath.Vec{X: 14, Y: -2}); !got.Equal(gamemath.Vec{X: 10, Y: 0}) {
		t.Errorf("ClosestPointTo past end = %v; want {10 0}", got)
	}

	if d := s.DistanceToPoint(gamemath.Vec{X: 5, Y: 7}); math.Abs(d-7) > gamemath.Epsilon {
		t.Errorf("DistanceToPoint = %v; want 7", d)
	}
	if !s.ContainsPoint(gamemath.Vec{X: 5, Y: 0.5}, 1) {
		t.Error("point within threshold not contained")
	}
}

func TestGroundContactEndpoints(t *testing.T) {
	s := newSegment("shin", gamemath.Vec{X: 0, Y: 400}, 10, 0, 0, math.Pi)
	if !s.StartOnGround(400, 1) {
		t.Error("start on ground not detected")
	}
	if !s.EndOnGround(400.5, 1) {
		t.Error("end within threshold not detected")
	}
	if s.StartOnGround(300, 1) {
		t.Error("far ground level should not contact")
	}
}
