package gamemath

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: -1, Y: 2}

	if got := a.Add(b); got != (Vec{X: 2, Y: 6}) {
		t.Errorf("Add = %v; want {2 6}", got)
	}
	if got := a.Sub(b); got != (Vec{X: 4, Y: 2}) {
		t.Errorf("Sub = %v; want {4 2}", got)
	}
	if got := a.Scale(2); got != (Vec{X: 6, Y: 8}) {
		t.Errorf("Scale = %v; want {6 8}", got)
	}
	if got := a.Div(2); got != (Vec{X: 1.5, Y: 2}) {
		t.Errorf("Div = %v; want {1.5 2}", got)
	}
	if got := a.Div(0); got != (Vec{}) {
		t.Errorf("Div by zero = %v; want zero vector", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot = %v; want 5", got)
	}
	if got := a.Cross(b); got != 10 {
		t.Errorf("Cross = %v; want 10", got)
	}
}

func TestVecLengthAndDistance(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v; want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq = %v; want 25", got)
	}
	if got := (Vec{X: 1, Y: 1}).Distance(Vec{X: 4, Y: 5}); got != 5 {
		t.Errorf("Distance = %v; want 5", got)
	}
}

func TestVecNormalized(t *testing.T) {
	n := Vec{X: 0, Y: -7}.Normalized()
	if !n.Equal(Vec{X: 0, Y: -1}) {
		t.Errorf("Normalized = %v; want {0 -1}", n)
	}
	if got := (Vec{}).Normalized(); got != (Vec{}) {
		t.Errorf("Normalized zero vector = %v; want zero vector", got)
	}
}

func TestVecRotated(t *testing.T) {
	r := Vec{X: 1, Y: 0}.Rotated(math.Pi / 2)
	if !r.Equal(Vec{X: 0, Y: 1}) {
		t.Errorf("Rotated 90° = %v; want {0 1}", r)
	}
	full := Vec{X: 2, Y: 3}.Rotated(2 * math.Pi)
	if !full.Equal(Vec{X: 2, Y: 3}) {
		t.Errorf("Rotated 360° = %v; want {2 3}", full)
	}
}

func TestVecAngle(t *testing.T) {
	if got := (Vec{X: 0, Y: 1}).Angle(); math.Abs(got-math.Pi/2) > Epsilon {
		t.Errorf("Angle = %v; want π/2", got)
	}
	between := Vec{X: 1, Y: 0}.AngleTo(Vec{X: 0, Y: 5})
	if math.Abs(between-math.Pi/2) > Epsilon {
		t.Errorf("AngleTo = %v; want π/2", between)
	}
}

func TestVecEqualUsesEpsilon(t *testing.T) {
	a := Vec{X: 1, Y: 1}
	if !a.Equal(Vec{X: 1 + 1e-9, Y: 1 - 1e-9}) {
		t.Error("vectors within epsilon should compare equal")
	}
	if a.Equal(Vec{X: 1.001, Y: 1}) {
		t.Error("vectors outside epsilon should not compare equal")
	}
}
