package planner

import (
	"fmt"
	"math"

	"github.com/automoto/snowcatcher/shared/figure"
	"github.com/automoto/snowcatcher/shared/gamemath"
	"github.com/automoto/snowcatcher/shared/simlog"
)

const (
	// DefaultReachDistance is how close (horizontally) the figure walks
	// before it starts reaching for the object.
	DefaultReachDistance = 50.0
	// DefaultWalkSpeed is the base displacement of one walk move.
	DefaultWalkSpeed = 5.0

	minGroundContacts = 2
	minObjectContacts = 3
)

// reachSegments are the end-effectors rotated toward the object during
// the reach phase, in execution order.
var reachSegments = []string{"left_lower_arm", "right_lower_arm", "left_hand", "right_hand"}

type moveKind int

const (
	moveWalk moveKind = iota
	moveReach
	moveGrab
)

// move is one planned atomic action; produced during planning, consumed
// in FIFO order, never mutated.
type move struct {
	kind     moveKind
	position gamemath.Vec
	segment  string
	rotation float64
}

// Walker plans and executes walk-then-reach-then-grab sequences against
// a target circle. It holds shared references to the body and target
// and assumes single-writer access.
type Walker struct {
	body   *figure.Body
	target *gamemath.Circle
	log    simlog.Logger

	walkSpeed     float64
	reachDistance float64

	moves    []move
	executed int
	caught   bool
}

func NewWalker(body *figure.Body, target *gamemath.Circle, walkSpeed float64, log simlog.Logger) *Walker {
	if walkSpeed <= 0 {
		walkSpeed = DefaultWalkSpeed
	}
	return &Walker{
		body:          body,
		target:        target,
		log:           simlog.OrNop(log),
		walkSpeed:     walkSpeed,
		reachDistance: DefaultReachDistance,
	}
}

func (w *Walker) SetWalkSpeed(speed float64) {
	if speed > 0 {
		w.walkSpeed = speed
	}
}

func (w *Walker) WalkSpeed() float64 { return w.walkSpeed }

// PlanSequence builds the move queue from the current body and target
// state, discarding any prior progress.
func (w *Walker) PlanSequence() {
	w.moves = w.moves[:0]
	w.executed = 0
	w.caught = false

	objectPos := w.target.Center
	w.log.Message("planning catch sequence")
	w.log.Message(fmt.Sprintf("distance to object: %.2f", objectPos.Sub(w.body.BasePosition()).Length()))

	w.planWalk(objectPos)
	w.planReach(objectPos)
	w.moves = append(w.moves, move{kind: moveGrab})

	w.log.Message(fmt.Sprintf("planned %d moves", len(w.moves)))
}

// planWalk appends one walk move per walkSpeed increment of the
// horizontal gap between the base and the reach point, the last one
// clamped to the exact remainder. No moves are planned when the figure
// already stands within reach.
func (w *Walker) planWalk(objectPos gamemath.Vec) {
	base := w.body.BasePosition()
	dx := objectPos.X - base.X
	dir := 1.0
	if dx < 0 {
		dir = -1
	}
	walkDist := math.Abs(dx) - w.reachDistance
	if walkDist <= 0 {
		return
	}

	steps := int(math.Ceil(walkDist / w.walkSpeed))
	for i := 1; i <= steps; i++ {
		travelled := math.Min(float64(i)*w.walkSpeed, walkDist)
		w.moves = append(w.moves, move{
			kind:     moveWalk,
			position: gamemath.Vec{X: base.X + dir*travelled, Y: base.Y},
		})
	}
	w.log.Message(fmt.Sprintf("walk phase: %d moves", steps))
}

// planReach appends one rotation per designated end-effector, aiming it
// at the object from its current geometry.
func (w *Walker) planReach(objectPos gamemath.Vec) {
	planned := 0
	for _, name := range reachSegments {
		seg, ok := w.body.Segment(name)
		if !ok {
			continue
		}
		targetAngle := objectPos.Sub(seg.Start()).Angle()
		w.moves = append(w.moves, move{
			kind:     moveReach,
			segment:  name,
			position: objectPos,
			rotation: gamemath.NormalizeDelta(targetAngle - seg.Angle()),
		})
		planned++
	}
	w.log.Message(fmt.Sprintf("reach phase: %d moves", planned))
}

// ExecuteNextMove pops and performs one queued action. A failed action
// still consumes its queue position; the planner advances rather than
// retrying.
func (w *Walker) ExecuteNextMove() bool {
	if len(w.moves) == 0 {
		return false
	}
	m := w.moves[0]
	w.moves = w.moves[1:]
	w.executed++

	switch m.kind {
	case moveWalk:
		return w.executeWalk(m)
	case moveReach:
		return w.executeReach(m)
	case moveGrab:
		return w.executeGrab()
	}
	return false
}

func (w *Walker) executeWalk(m move) bool {
	if !w.body.HasMinimumGroundContacts(minGroundContacts) {
		w.log.Message("cannot walk: insufficient ground contacts")
		return false
	}
	w.body.MoveBaseTo(m.position)
	return true
}

func (w *Walker) executeReach(m move) bool {
	if !w.body.HasMinimumGroundContacts(minGroundContacts) {
		w.log.Message("cannot reach: insufficient ground contacts")
		return false
	}
	if _, ok := w.body.Segment(m.segment); !ok {
		w.log.Message("reach segment missing: " + m.segment)
		return false
	}
	return w.body.RotateSegment(m.segment, m.rotation)
}

func (w *Walker) executeGrab() bool {
	if w.body.CanReach(*w.target, minObjectContacts) {
		w.caught = true
		w.log.Message("object caught")
		return true
	}
	w.log.Message("grab failed: object out of reach")
	return false
}

func (w *Walker) SequenceComplete() bool {
	return len(w.moves) == 0
}

// Caught reports whether a grab move has succeeded since the last plan.
func (w *Walker) Caught() bool {
	return w.caught
}

// MovesLeft returns the number of unexecuted moves.
func (w *Walker) MovesLeft() int {
	return len(w.moves)
}

func (w *Walker) Status() Status {
	return Status{
		Kind:      KindWalker,
		Complete:  w.SequenceComplete(),
		MovesLeft: len(w.moves),
		Caught:    w.caught,
	}
}

var _ Strategy = (*Walker)(nil)
