package gamemath

import "math"

// Circle is a circular object: a center and radius, optionally carrying
// point-mass ballistic state for stepwise flight integration.
type Circle struct {
	Center Vec
	Radius float64

	velocity   Vec
	gravity    float64
	hasPhysics bool
}

func NewCircle(center Vec, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{Center: center, Radius: radius}
}

// SetBallistics arms the circle with an initial velocity and a gravity
// constant; Advance is a no-op until this is called.
func (c *Circle) SetBallistics(velocity Vec, gravity float64) {
	c.velocity = velocity
	c.gravity = gravity
	c.hasPhysics = true
}

// ClearBallistics stops physics integration and zeroes the velocity.
func (c *Circle) ClearBallistics() {
	c.velocity = Vec{}
	c.gravity = 0
	c.hasPhysics = false
}

func (c Circle) Velocity() Vec {
	return c.velocity
}

func (c Circle) HasPhysics() bool {
	return c.hasPhysics
}

// Advance integrates one time step of free fall: gravity into the
// vertical velocity first, then the position update (semi-implicit
// Euler). Gravity only affects the vertical component.
func (c *Circle) Advance(dt float64) {
	if !c.hasPhysics {
		return
	}
	c.velocity.Y += c.gravity * dt
	c.Center = c.Center.Add(c.velocity.Scale(dt))
}

func (c *Circle) MoveBy(displacement Vec) {
	c.Center = c.Center.Add(displacement)
}

func (c Circle) Contains(point Vec) bool {
	return c.Center.DistanceSq(point) <= c.Radius*c.Radius
}

func (c Circle) Intersects(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.DistanceSq(o.Center) <= r*r
}

// OnGround reports whether the bottom edge is at or below ground level.
// Screen coordinates grow downward, so "below" means a larger Y.
func (c Circle) OnGround(groundLevel float64) bool {
	return c.Center.Y+c.Radius >= groundLevel
}

func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// DistanceTo returns the gap between the circle edges, negative when
// they overlap.
func (c Circle) DistanceTo(o Circle) float64 {
	return c.Center.Distance(o.Center) - c.Radius - o.Radius
}
