// Package figure models an articulated figure as a forest of named,
// rotation-constrained line segments with forward-kinematics
// propagation from roots to leaves.
package figure

import (
	"math"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

// MinSegmentLength is the enforced floor for segment lengths.
const MinSegmentLength = 0.1

// DefaultGroundThreshold is how close (in world units) an endpoint must
// be to the ground level to count as a ground contact.
const DefaultGroundThreshold = 1.0

// Segment is a rigid link: a start point, a fixed length and a current
// angle held inside [MinAngle, MaxAngle]. MinAngle > MaxAngle denotes a
// range that wraps across 0.
type Segment struct {
	id       string
	start    gamemath.Vec
	length   float64
	angle    float64
	minAngle float64
	maxAngle float64
}

func newSegment(id string, start gamemath.Vec, length, angle, minAngle, maxAngle float64) *Segment {
	s := &Segment{
		id:       id,
		start:    start,
		length:   math.Max(MinSegmentLength, length),
		minAngle: minAngle,
		maxAngle: maxAngle,
	}
	s.angle = gamemath.ClampAngle(angle, minAngle, maxAngle)
	return s
}

func (s *Segment) ID() string        { return s.id }
func (s *Segment) Start() gamemath.Vec { return s.start }
func (s *Segment) Length() float64   { return s.length }
func (s *Segment) Angle() float64    { return s.angle }
func (s *Segment) MinAngle() float64 { return s.minAngle }
func (s *Segment) MaxAngle() float64 { return s.maxAngle }

// End derives the far endpoint from start, length and angle.
func (s *Segment) End() gamemath.Vec {
	sin, cos := math.Sincos(s.angle)
	return gamemath.Vec{
		X: s.start.X + s.length*cos,
		Y: s.start.Y + s.length*sin,
	}
}

func (s *Segment) SetStart(start gamemath.Vec) {
	s.start = start
}

// SetAngle snaps the requested angle into the constrained range.
func (s *Segment) SetAngle(angle float64) {
	s.angle = gamemath.ClampAngle(angle, s.minAngle, s.maxAngle)
}

// SetAngleLimits replaces the joint limits and re-clamps the current
// angle. Ignored when min > max; wrapped limits must be set at
// construction time.
func (s *Segment) SetAngleLimits(min, max float64) {
	if min > max {
		return
	}
	s.minAngle = min
	s.maxAngle = max
	s.angle = gamemath.ClampAngle(s.angle, min, max)
}

// Rotate turns the segment by delta radians. It reports whether the
// requested angle survived unclamped; false means the joint limit was
// hit.
func (s *Segment) Rotate(delta float64) bool {
	return s.RotateTo(s.angle + delta)
}

// RotateTo turns the segment to the target angle, clamped to the joint
// limits. Reports whether the target was reached without constraint.
func (s *Segment) RotateTo(target float64) bool {
	clamped := gamemath.ClampAngle(target, s.minAngle, s.maxAngle)
	s.angle = clamped
	return clamped == target
}

// MoveBy translates the start point, carrying the endpoint with it.
func (s *Segment) MoveBy(displacement gamemath.Vec) {
	s.start = s.start.Add(displacement)
}

// ClosestPointTo projects a point onto the segment, clamped to its
// extent.
func (s *Segment) ClosestPointTo(point gamemath.Vec) gamemath.Vec {
	segVec := s.End().Sub(s.start)
	lenSq := segVec.LengthSq()
	if lenSq < gamemath.Epsilon {
		return s.start
	}
	t := point.Sub(s.start).Dot(segVec) / lenSq
	t = math.Max(0, math.Min(1, t))
	return s.start.Add(segVec.Scale(t))
}

func (s *Segment) DistanceToPoint(point gamemath.Vec) float64 {
	return point.Distance(s.ClosestPointTo(point))
}

// ContainsPoint reports whether the point lies within threshold of the
// segment line.
func (s *Segment) ContainsPoint(point gamemath.Vec, threshold float64) bool {
	return s.DistanceToPoint(point) <= threshold
}

func (s *Segment) StartOnGround(groundLevel, threshold float64) bool {
	return math.Abs(s.start.Y-groundLevel) <= threshold
}

func (s *Segment) EndOnGround(groundLevel, threshold float64) bool {
	return math.Abs(s.End().Y-groundLevel) <= threshold
}
