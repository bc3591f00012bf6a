package planner

import (
	"errors"
	"math"

	"github.com/automoto/snowcatcher/shared/figure"
	"github.com/automoto/snowcatcher/shared/gamemath"
	"github.com/automoto/snowcatcher/shared/simlog"
)

const (
	// DefaultSnowballRadius is the projectile radius.
	DefaultSnowballRadius = 10.0
	// DefaultGravity is the downward acceleration in world units/s².
	DefaultGravity = 9.8
	// DefaultLaunchStandoff is how far above the body base the
	// projectile is released.
	DefaultLaunchStandoff = 50.0
)

// ErrBadTrajectory is returned when the flat-range aim formula has no
// real solution for the current geometry (target behind the thrower, or
// non-positive gravity). The throw is rejected before any velocity is
// computed so no NaN enters the physics state.
var ErrBadTrajectory = errors.New("planner: no ballistic solution for target")

// Snowball computes a ballistic launch velocity, integrates point-mass
// flight and detects ground or target collision. States: idle until the
// throw, active while flying, then exactly one of hitTarget/hitGround.
type Snowball struct {
	body   *figure.Body
	target *gamemath.Circle
	log    simlog.Logger

	projectile gamemath.Circle
	gravity    float64
	standoff   float64

	prepared  bool
	active    bool
	hitTarget bool
	hitGround bool
}

func NewSnowball(body *figure.Body, target *gamemath.Circle, radius, gravity float64, log simlog.Logger) *Snowball {
	if radius <= 0 {
		radius = DefaultSnowballRadius
	}
	if gravity == 0 {
		gravity = DefaultGravity
	}
	return &Snowball{
		body:       body,
		target:     target,
		log:        simlog.OrNop(log),
		projectile: gamemath.NewCircle(gamemath.Vec{}, radius),
		gravity:    gravity,
		standoff:   DefaultLaunchStandoff,
	}
}

// SetStandoff adjusts the launch height above the body base.
func (s *Snowball) SetStandoff(standoff float64) {
	if standoff > 0 {
		s.standoff = standoff
	}
}

// PlanSequence resets to the idle state; the throw parameters are
// computed lazily on the first execution.
func (s *Snowball) PlanSequence() {
	s.Reset()
	s.log.Message("snowball sequence planned")
}

// PrepareThrow overrides the lazy aim with an explicit launch position
// and velocity.
func (s *Snowball) PrepareThrow(position, velocity gamemath.Vec) {
	s.projectile = gamemath.NewCircle(position, s.projectile.Radius)
	s.projectile.SetBallistics(velocity, s.gravity)
	s.prepared = true
	s.active = false
	s.hitTarget = false
	s.hitGround = false
}

// ExecuteNextMove throws the snowball. If no explicit throw was
// prepared it aims first; an unsolvable aim rejects the throw and
// leaves the state untouched. Once the ball is in flight, or an
// outcome is already decided, there is nothing left to execute.
func (s *Snowball) ExecuteNextMove() bool {
	if s.active || s.hitTarget || s.hitGround {
		return false
	}
	if !s.prepared {
		if err := s.aim(); err != nil {
			s.log.Message("throw rejected: " + err.Error())
			return false
		}
	}
	s.active = true
	s.log.SnowballThrow(s.projectile.Center, s.projectile.Velocity())
	return true
}

// aim solves the flat-range approximation: launch from a fixed standoff
// above the base, time of flight t = sqrt(2·dx/g), then the velocity
// that crosses dx horizontally and dy vertically in that time.
func (s *Snowball) aim() error {
	base := s.body.BasePosition()
	launch := gamemath.Vec{X: base.X, Y: base.Y - s.standoff}
	dx := s.target.Center.X - launch.X
	dy := s.target.Center.Y - launch.Y

	if s.gravity <= 0 || dx/s.gravity <= 0 {
		return ErrBadTrajectory
	}

	t := math.Sqrt(2 * dx / s.gravity)
	velocity := gamemath.Vec{
		X: dx / t,
		Y: -s.gravity*t/2 + dy/t,
	}
	s.projectile = gamemath.NewCircle(launch, s.projectile.Radius)
	s.projectile.SetBallistics(velocity, s.gravity)
	s.prepared = true
	return nil
}

// Update advances the flight by dt and then checks collisions in fixed
// order: ground first, then target. The first check that triggers wins
// the tick.
func (s *Snowball) Update(dt float64) {
	if !s.active {
		return
	}
	s.projectile.Advance(dt)

	if s.projectile.OnGround(s.body.GroundLevel()) {
		s.hitGround = true
		s.active = false
		s.log.SnowballHit(s.projectile.Center, false)
		return
	}
	if s.projectile.Intersects(*s.target) {
		s.hitTarget = true
		s.active = false
		s.log.SnowballHit(s.projectile.Center, true)
	}
}

// Reset returns to idle with zeroed position and velocity, discarding
// any in-flight state.
func (s *Snowball) Reset() {
	s.projectile = gamemath.NewCircle(gamemath.Vec{}, s.projectile.Radius)
	s.prepared = false
	s.active = false
	s.hitTarget = false
	s.hitGround = false
}

// SequenceComplete is true whenever the ball is not in flight: before a
// throw and after either outcome.
func (s *Snowball) SequenceComplete() bool {
	return !s.active
}

func (s *Snowball) Active() bool    { return s.active }
func (s *Snowball) HitTarget() bool { return s.hitTarget }
func (s *Snowball) HitGround() bool { return s.hitGround }

func (s *Snowball) Position() gamemath.Vec { return s.projectile.Center }
func (s *Snowball) Velocity() gamemath.Vec { return s.projectile.Velocity() }
func (s *Snowball) Radius() float64        { return s.projectile.Radius }

var _ Strategy = (*Snowball)(nil)

func (s *Snowball) Status() Status {
	return Status{
		Kind:      KindSnowball,
		Complete:  s.SequenceComplete(),
		Active:    s.active,
		HitTarget: s.hitTarget,
		HitGround: s.hitGround,
	}
}
