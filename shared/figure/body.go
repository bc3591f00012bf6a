package figure

import (
	"errors"
	"fmt"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

var (
	// ErrDuplicateSegment is returned when a segment name is already taken.
	ErrDuplicateSegment = errors.New("figure: duplicate segment name")
	// ErrUnknownSegment is returned when a named segment does not exist.
	ErrUnknownSegment = errors.New("figure: unknown segment")
	// ErrAlreadyLinked is returned when a child already has a parent.
	ErrAlreadyLinked = errors.New("figure: segment already has a parent")
	// ErrWouldCycle is returned when a connection would close a loop.
	ErrWouldCycle = errors.New("figure: connection would create a cycle")
)

const noParent = -1

// Body owns an arena of Segments addressed by stable name. Parent/child
// relationships live in an edge table of indices, so cycle-freedom is
// checked structurally when an edge is added. Roots are tracked in an
// explicit list maintained at insertion time; layout never depends on
// map iteration order.
//
// Invariant: after any mutating method returns, child.Start() equals
// parent.End() for every edge.
type Body struct {
	segments []*Segment
	names    map[string]int
	children map[int][]int
	parents  []int
	roots    []int

	basePosition gamemath.Vec
	groundLevel  float64
}

func NewBody(basePosition gamemath.Vec, groundLevel float64) *Body {
	return &Body{
		names:        make(map[string]int),
		children:     make(map[int][]int),
		basePosition: basePosition,
		groundLevel:  groundLevel,
	}
}

func (b *Body) BasePosition() gamemath.Vec { return b.basePosition }
func (b *Body) GroundLevel() float64       { return b.groundLevel }
func (b *Body) Len() int                   { return len(b.segments) }

// AddSegment inserts a new segment starting at the current base
// position. A duplicate name is rejected and prior state is unchanged.
func (b *Body) AddSegment(name string, length, angle, minAngle, maxAngle float64) error {
	if _, exists := b.names[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateSegment, name)
	}
	idx := len(b.segments)
	b.segments = append(b.segments, newSegment(name, b.basePosition, length, angle, minAngle, maxAngle))
	b.names[name] = idx
	b.parents = append(b.parents, noParent)
	b.roots = append(b.roots, idx)
	return nil
}

// Connect records a parent→child edge and snaps the child's start to
// the parent's end. Both segments must exist, the child must not have a
// parent yet, and the edge must not close a loop.
func (b *Body) Connect(parentName, childName string) error {
	pi, ok := b.names[parentName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSegment, parentName)
	}
	ci, ok := b.names[childName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSegment, childName)
	}
	if b.parents[ci] != noParent {
		return fmt.Errorf("%w: %q", ErrAlreadyLinked, childName)
	}
	// Walk up from the parent; hitting the child means a loop.
	for i := pi; i != noParent; i = b.parents[i] {
		if i == ci {
			return fmt.Errorf("%w: %q -> %q", ErrWouldCycle, parentName, childName)
		}
	}

	b.children[pi] = append(b.children[pi], ci)
	b.parents[ci] = pi
	b.removeRoot(ci)
	b.segments[ci].SetStart(b.segments[pi].End())
	return nil
}

// Segment returns the named segment for direct inspection or mutation.
// Callers that mutate geometry through it must propagate afterwards.
func (b *Body) Segment(name string) (*Segment, bool) {
	idx, ok := b.names[name]
	if !ok {
		return nil, false
	}
	return b.segments[idx], true
}

// SegmentNames returns all names in insertion order.
func (b *Body) SegmentNames() []string {
	names := make([]string, len(b.segments))
	for i, s := range b.segments {
		names[i] = s.ID()
	}
	return names
}

// RotateSegment turns the named segment by delta and repositions all of
// its descendants. It reports false when the segment is unknown or the
// rotation was constrained by the joint limits; the descendants follow
// the actual angle either way.
func (b *Body) RotateSegment(name string, delta float64) bool {
	idx, ok := b.names[name]
	if !ok {
		return false
	}
	unclamped := b.segments[idx].Rotate(delta)
	b.propagate(idx)
	return unclamped
}

// RotateSegmentTo turns the named segment to the target angle. Same
// contract as RotateSegment.
func (b *Body) RotateSegmentTo(name string, target float64) bool {
	idx, ok := b.names[name]
	if !ok {
		return false
	}
	unclamped := b.segments[idx].RotateTo(target)
	b.propagate(idx)
	return unclamped
}

// MoveBaseTo translates the whole figure: every root segment is moved
// by the base displacement and its descendants follow.
func (b *Body) MoveBaseTo(newBase gamemath.Vec) {
	displacement := newBase.Sub(b.basePosition)
	b.basePosition = newBase
	for _, ri := range b.roots {
		b.segments[ri].MoveBy(displacement)
		b.propagate(ri)
	}
}

// Relayout re-derives every segment position from scratch: roots are
// pinned to the base position and descendants follow. Idempotent on an
// unchanged body.
func (b *Body) Relayout() {
	for _, ri := range b.roots {
		b.segments[ri].SetStart(b.basePosition)
		b.propagate(ri)
	}
}

// CountGroundContacts counts segment endpoints (start and end each
// count separately) lying within the contact threshold of the ground.
func (b *Body) CountGroundContacts() int {
	count := 0
	for _, s := range b.segments {
		if s.StartOnGround(b.groundLevel, DefaultGroundThreshold) {
			count++
		}
		if s.EndOnGround(b.groundLevel, DefaultGroundThreshold) {
			count++
		}
	}
	return count
}

// HasMinimumGroundContacts gates moves that would lift the figure off
// the ground.
func (b *Body) HasMinimumGroundContacts(min int) bool {
	return b.CountGroundContacts() >= min
}

// SegmentsOnGround returns the names of segments with at least one
// endpoint contacting the ground.
func (b *Body) SegmentsOnGround() []string {
	var names []string
	for _, s := range b.segments {
		if s.StartOnGround(b.groundLevel, DefaultGroundThreshold) ||
			s.EndOnGround(b.groundLevel, DefaultGroundThreshold) {
			names = append(names, s.ID())
		}
	}
	return names
}

// IsLeaf reports whether the named segment has no children. Only
// leaves act as end-effectors for object contact.
func (b *Body) IsLeaf(name string) bool {
	idx, ok := b.names[name]
	if !ok {
		return false
	}
	return len(b.children[idx]) == 0
}

// SegmentsTouching returns the leaf segments in contact with the
// circle: endpoint inside it, or segment line within its radius.
func (b *Body) SegmentsTouching(object gamemath.Circle) []string {
	var names []string
	for idx, s := range b.segments {
		if len(b.children[idx]) != 0 {
			continue
		}
		if object.Contains(s.End()) || s.DistanceToPoint(object.Center) <= object.Radius {
			names = append(names, s.ID())
		}
	}
	return names
}

// CanReach reports whether at least minPoints leaf segments touch the
// object.
func (b *Body) CanReach(object gamemath.Circle, minPoints int) bool {
	return len(b.SegmentsTouching(object)) >= minPoints
}

// SegmentLines returns one (start, end) pair per segment in insertion
// order; the sole data surface rendering consumes.
func (b *Body) SegmentLines() []Line {
	lines := make([]Line, len(b.segments))
	for i, s := range b.segments {
		lines[i] = Line{Start: s.Start(), End: s.End()}
	}
	return lines
}

// Line is a drawable segment span.
type Line struct {
	Start, End gamemath.Vec
}

// propagate resets each descendant's start to its parent's current end,
// depth-first.
func (b *Body) propagate(idx int) {
	for _, ci := range b.children[idx] {
		b.segments[ci].SetStart(b.segments[idx].End())
		b.propagate(ci)
	}
}

func (b *Body) removeRoot(idx int) {
	for i, ri := range b.roots {
		if ri == idx {
			b.roots = append(b.roots[:i], b.roots[i+1:]...)
			return
		}
	}
}
