package gamemath

import "math"

// Epsilon absorbs floating-point drift in position comparisons.
const Epsilon = 1e-6

// Vec is a 2D vector with value semantics.
type Vec struct {
	X, Y float64
}

func NewVec(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

func (v Vec) Div(s float64) Vec {
	if s == 0 {
		return Vec{}
	}
	return Vec{X: v.X / s, Y: v.Y / s}
}

func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar z-component of the 3D cross product.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec) Distance(o Vec) float64 {
	return v.Sub(o).Length()
}

func (v Vec) DistanceSq(o Vec) float64 {
	return v.Sub(o).LengthSq()
}

// Normalized returns a unit-length copy, or the zero vector when the
// length is too small to divide by.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l < Epsilon {
		return Vec{}
	}
	return v.Div(l)
}

// Rotated returns the vector rotated by angle radians around the origin.
func (v Vec) Rotated(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Angle returns the direction of the vector in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the unsigned angle between two vectors.
func (v Vec) AngleTo(o Vec) float64 {
	ll := v.Length() * o.Length()
	if ll < Epsilon {
		return 0
	}
	// Clamp against rounding before acos.
	c := v.Dot(o) / ll
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Equal compares component-wise within Epsilon.
func (v Vec) Equal(o Vec) bool {
	return math.Abs(v.X-o.X) < Epsilon && math.Abs(v.Y-o.Y) < Epsilon
}
