package gamemath

import (
	"math"
	"testing"
)

func TestCircleContains(t *testing.T) {
	c := NewCircle(Vec{X: 10, Y: 10}, 5)
	if !c.Contains(Vec{X: 12, Y: 13}) {
		t.Error("point inside circle reported outside")
	}
	if !c.Contains(Vec{X: 15, Y: 10}) {
		t.Error("point on rim should be contained")
	}
	if c.Contains(Vec{X: 16, Y: 10}) {
		t.Error("point outside circle reported inside")
	}
}

func TestCircleIntersects(t *testing.T) {
	a := NewCircle(Vec{X: 0, Y: 0}, 5)
	b := NewCircle(Vec{X: 8, Y: 0}, 4)
	if !a.Intersects(b) {
		t.Error("overlapping circles reported separate")
	}
	far := NewCircle(Vec{X: 100, Y: 0}, 4)
	if a.Intersects(far) {
		t.Error("distant circles reported intersecting")
	}
}

func TestCircleAdvanceWithoutPhysicsIsNoop(t *testing.T) {
	c := NewCircle(Vec{X: 1, Y: 2}, 3)
	c.Advance(1.0)
	if !c.Center.Equal(Vec{X: 1, Y: 2}) {
		t.Errorf("center moved without ballistics: %v", c.Center)
	}
}

func TestCircleBallisticIntegration(t *testing.T) {
	c := NewCircle(Vec{}, 1)
	c.SetBallistics(Vec{X: 10, Y: 0}, 9.8)

	c.Advance(0.5)
	// Semi-implicit Euler: velocity updates before the position.
	wantVel := Vec{X: 10, Y: 4.9}
	if !c.Velocity().Equal(wantVel) {
		t.Errorf("velocity = %v; want %v", c.Velocity(), wantVel)
	}
	wantPos := Vec{X: 5, Y: 2.45}
	if !c.Center.Equal(wantPos) {
		t.Errorf("center = %v; want %v", c.Center, wantPos)
	}
}

func TestCircleOnGround(t *testing.T) {
	c := NewCircle(Vec{X: 0, Y: 395}, 5)
	if !c.OnGround(400) {
		t.Error("circle resting on ground reported airborne")
	}
	c.Center.Y = 394
	if c.OnGround(400) {
		t.Error("airborne circle reported grounded")
	}
}

func TestCircleMeasures(t *testing.T) {
	c := NewCircle(Vec{}, 2)
	if got := c.Area(); math.Abs(got-4*math.Pi) > Epsilon {
		t.Errorf("Area = %v; want 4π", got)
	}
	if got := c.Circumference(); math.Abs(got-4*math.Pi) > Epsilon {
		t.Errorf("Circumference = %v; want 4π", got)
	}
	o := NewCircle(Vec{X: 10, Y: 0}, 3)
	if got := c.DistanceTo(o); math.Abs(got-5) > Epsilon {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
}

func TestNegativeRadiusFloorsToZero(t *testing.T) {
	c := NewCircle(Vec{}, -3)
	if c.Radius != 0 {
		t.Errorf("Radius = %v; want 0", c.Radius)
	}
}
