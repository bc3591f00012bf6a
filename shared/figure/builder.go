package figure

import (
	"math"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

type segmentSpec struct {
	name     string
	length   float64
	angle    float64
	minAngle float64
	maxAngle float64
}

type connection struct {
	parent, child string
}

// Builder accumulates segment specs and parent/child links and
// materializes a fully-positioned Body. Specs are applied in
// declaration order.
type Builder struct {
	base        gamemath.Vec
	groundLevel float64
	specs       []segmentSpec
	links       []connection
}

func NewBuilder() *Builder {
	return &Builder{
		base:        gamemath.Vec{X: 100, Y: 400},
		groundLevel: 400,
	}
}

func (b *Builder) Base(position gamemath.Vec) *Builder {
	b.base = position
	return b
}

func (b *Builder) Ground(level float64) *Builder {
	b.groundLevel = level
	return b
}

func (b *Builder) Segment(name string, length, angle, minAngle, maxAngle float64) *Builder {
	b.specs = append(b.specs, segmentSpec{name, length, angle, minAngle, maxAngle})
	return b
}

func (b *Builder) Connect(parent, child string) *Builder {
	b.links = append(b.links, connection{parent, child})
	return b
}

// Humanoid replaces any accumulated specs with the 14-segment humanoid
// topology: torso carrying a head, two three-link arms and two
// three-link legs. Angle ranges encode anthropomorphic joint limits.
func (b *Builder) Humanoid() *Builder {
	b.reset()

	b.Segment("torso", 60, -math.Pi/2, -math.Pi, math.Pi)

	b.Segment("head", 30, -math.Pi/2, -math.Pi/4, math.Pi/4)
	b.Connect("torso", "head")

	b.Segment("left_upper_arm", 40, -math.Pi, -math.Pi, 0)
	b.Connect("torso", "left_upper_arm")
	b.Segment("left_lower_arm", 40, -math.Pi, -math.Pi, 0)
	b.Connect("left_upper_arm", "left_lower_arm")
	b.Segment("left_hand", 20, -math.Pi, -math.Pi/2, math.Pi/2)
	b.Connect("left_lower_arm", "left_hand")

	b.Segment("right_upper_arm", 40, 0, 0, math.Pi)
	b.Connect("torso", "right_upper_arm")
	b.Segment("right_lower_arm", 40, 0, 0, math.Pi)
	b.Connect("right_upper_arm", "right_lower_arm")
	b.Segment("right_hand", 20, 0, -math.Pi/2, math.Pi/2)
	b.Connect("right_lower_arm", "right_hand")

	b.Segment("left_upper_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("torso", "left_upper_leg")
	b.Segment("left_lower_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("left_upper_leg", "left_lower_leg")
	b.Segment("left_foot", 30, 0, -math.Pi/4, math.Pi/4)
	b.Connect("left_lower_leg", "left_foot")

	b.Segment("right_upper_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("torso", "right_upper_leg")
	b.Segment("right_lower_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("right_upper_leg", "right_lower_leg")
	b.Segment("right_foot", 30, 0, -math.Pi/4, math.Pi/4)
	b.Connect("right_lower_leg", "right_foot")

	return b
}

// Simple replaces any accumulated specs with a 5-segment figure: a
// torso with both arms and both legs attached directly to it.
func (b *Builder) Simple() *Builder {
	b.reset()

	b.Segment("torso", 50, -math.Pi/2, -math.Pi, math.Pi)
	b.Segment("left_arm", 40, -3*math.Pi/4, -math.Pi, 0)
	b.Connect("torso", "left_arm")
	b.Segment("right_arm", 40, -math.Pi/4, 0, math.Pi)
	b.Connect("torso", "right_arm")
	b.Segment("left_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("torso", "left_leg")
	b.Segment("right_leg", 50, math.Pi/2, 0, math.Pi)
	b.Connect("torso", "right_leg")

	return b
}

// Build inserts every spec, applies every connection, then lays the
// figure out once so the initial geometry is consistent.
func (b *Builder) Build() (*Body, error) {
	body := NewBody(b.base, b.groundLevel)
	for _, spec := range b.specs {
		if err := body.AddSegment(spec.name, spec.length, spec.angle, spec.minAngle, spec.maxAngle); err != nil {
			return nil, err
		}
	}
	for _, link := range b.links {
		if err := body.Connect(link.parent, link.child); err != nil {
			return nil, err
		}
	}
	body.Relayout()
	return body, nil
}

func (b *Builder) reset() {
	b.specs = b.specs[:0]
	b.links = b.links[:0]
}
