package figure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

// newTestChain builds base -> a -> b -> c with permissive joint limits.
func newTestChain(t *testing.T) *Body {
	t.Helper()
	b := NewBody(gamemath.Vec{X: 0, Y: 100}, 100)
	require.NoError(t, b.AddSegment("a", 10, 0, 0, 2*math.Pi))
	require.NoError(t, b.AddSegment("b", 10, 0, 0, 2*math.Pi))
	require.NoError(t, b.AddSegment("c", 10, 0, 0, 2*math.Pi))
	require.NoError(t, b.Connect("a", "b"))
	require.NoError(t, b.Connect("b", "c"))
	b.Relayout()
	return b
}

// requireEdgesConsistent asserts the propagation invariant: every
// child's start equals its parent's end.
func requireEdgesConsistent(t *testing.T, b *Body) {
	t.Helper()
	for pi, children := range b.children {
		for _, ci := range children {
			require.True(t, b.segments[ci].Start().Equal(b.segments[pi].End()),
				"edge %s -> %s: child start %v != parent end %v",
				b.segments[pi].ID(), b.segments[ci].ID(),
				b.segments[pi].End(), b.segments[ci].Start())
		}
	}
}

func TestAddSegmentRejectsDuplicates(t *testing.T) {
	b := NewBody(gamemath.Vec{}, 100)
	require.NoError(t, b.AddSegment("torso", 10, 0, 0, math.Pi))

	err := b.AddSegment("torso", 20, 1, 0, math.Pi)
	require.ErrorIs(t, err, ErrDuplicateSegment)

	// Prior state untouched.
	seg, ok := b.Segment("torso")
	require.True(t, ok)
	require.Equal(t, 10.0, seg.Length())
	require.Equal(t, 1, b.Len())
}

func TestConnectValidation(t *testing.T) {
	b := newTestChain(t)

	require.ErrorIs(t, b.Connect("a", "ghost"), ErrUnknownSegment)
	require.ErrorIs(t, b.Connect("ghost", "a"), ErrUnknownSegment)
	// b already hangs off a.
	require.ErrorIs(t, b.Connect("c", "b"), ErrAlreadyLinked)
	// a -> b -> c, so c -> a would close a loop.
	require.ErrorIs(t, b.Connect("c", "a"), ErrWouldCycle)
}

func TestConnectSnapsChildToParentEnd(t *testing.T) {
	b := NewBody(gamemath.Vec{X: 5, Y: 5}, 100)
	require.NoError(t, b.AddSegment("root", 10, 0, 0, math.Pi))
	require.NoError(t, b.AddSegment("tip", 10, 0, 0, math.Pi))
	require.NoError(t, b.Connect("root", "tip"))

	tip, _ := b.Segment("tip")
	root, _ := b.Segment("root")
	require.True(t, tip.Start().Equal(root.End()))
}

func TestPropagationInvariantUnderMutation(t *testing.T) {
	b := newTestChain(t)

	ops := []func(){
		func() { b.RotateSegment("a", math.Pi/3) },
		func() { b.RotateSegment("b", -math.Pi/4) },
		func() { b.RotateSegmentTo("c", math.Pi) },
		func() { b.MoveBaseTo(gamemath.Vec{X: 40, Y: 90}) },
		func() { b.RotateSegment("a", -math.Pi/6) },
		func() { b.MoveBaseTo(gamemath.Vec{X: -10, Y: 100}) },
	}
	for _, op := range ops {
		op()
		requireEdgesConsistent(t, b)
	}
}

func TestRotateConstrainedStillPropagates(t *testing.T) {
	b := NewBody(gamemath.Vec{}, 100)
	require.NoError(t, b.AddSegment("upper", 10, 0, 0, math.Pi/4))
	require.NoError(t, b.AddSegment("lower", 10, 0, 0, 2*math.Pi))
	require.NoError(t, b.Connect("upper", "lower"))
	b.Relayout()

	// Rotation past the joint limit clamps, and the child must follow
	// the clamped geometry.
	require.False(t, b.RotateSegment("upper", math.Pi))
	requireEdgesConsistent(t, b)
}

func TestRotateUnknownSegmentFails(t *testing.T) {
	b := newTestChain(t)
	require.False(t, b.RotateSegment("ghost", 1))
	require.False(t, b.RotateSegmentTo("ghost", 1))
}

func TestRelayoutIdempotent(t *testing.T) {
	b := newTestChain(t)
	b.RotateSegment("b", 1.1)

	b.Relayout()
	first := b.SegmentLines()
	b.Relayout()
	second := b.SegmentLines()

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.True(t, first[i].Start.Equal(second[i].Start))
		require.True(t, first[i].End.Equal(second[i].End))
	}
}

func TestMoveBaseTranslatesWholeFigure(t *testing.T) {
	b := newTestChain(t)
	before := b.SegmentLines()

	b.MoveBaseTo(gamemath.Vec{X: 25, Y: 100})
	displacement := gamemath.Vec{X: 25, Y: 0}

	after := b.SegmentLines()
	for i := range before {
		require.True(t, after[i].Start.Equal(before[i].Start.Add(displacement)))
		require.True(t, after[i].End.Equal(before[i].End.Add(displacement)))
	}
	require.True(t, b.BasePosition().Equal(gamemath.Vec{X: 25, Y: 100}))
}

func TestCountGroundContacts(t *testing.T) {
	// Chain lies flat on the ground: a (0..10), b (10..20), c (20..30),
	// all at y=100 which is the ground level. Six endpoint contacts.
	b := newTestChain(t)
	require.Equal(t, 6, b.CountGroundContacts())
	require.True(t, b.HasMinimumGroundContacts(2))
	require.False(t, b.HasMinimumGroundContacts(7))
	require.Len(t, b.SegmentsOnGround(), 3)

	// Lifting the whole figure clears every contact.
	b.MoveBaseTo(gamemath.Vec{X: 0, Y: 50})
	require.Equal(t, 0, b.CountGroundContacts())
}

func TestLeafDetection(t *testing.T) {
	b := newTestChain(t)
	require.False(t, b.IsLeaf("a"))
	require.False(t, b.IsLeaf("b"))
	require.True(t, b.IsLeaf("c"))
	require.False(t, b.IsLeaf("ghost"))
}

func TestOnlyLeavesTouchObjects(t *testing.T) {
	b := newTestChain(t)

	// Circle around the chain tip: only c, the sole leaf, may report
	// contact even though b's geometry also crosses the circle.
	tip := gamemath.NewCircle(gamemath.Vec{X: 30, Y: 100}, 12)
	touching := b.SegmentsTouching(tip)
	require.Equal(t, []string{"c"}, touching)

	require.True(t, b.CanReach(tip, 1))
	require.False(t, b.CanReach(tip, 2))
}

func TestCanReachThreshold(t *testing.T) {
	// Three disconnected segments, all leaves, all ending inside the
	// circle.
	b := NewBody(gamemath.Vec{X: 0, Y: 0}, 100)
	require.NoError(t, b.AddSegment("f1", 10, 0, 0, 2*math.Pi))
	require.NoError(t, b.AddSegment("f2", 10, math.Pi/8, 0, 2*math.Pi))
	require.NoError(t, b.AddSegment("f3", 10, math.Pi/4, 0, 2*math.Pi))
	b.Relayout()

	object := gamemath.NewCircle(gamemath.Vec{X: 9, Y: 3}, 8)
	require.Len(t, b.SegmentsTouching(object), 3)
	require.True(t, b.CanReach(object, 3), "exactly at threshold must reach")
	require.False(t, b.CanReach(object, 4), "below threshold must not reach")
}

func TestSegmentLinesOrderAndCount(t *testing.T) {
	b := newTestChain(t)
	lines := b.SegmentLines()
	require.Len(t, lines, 3)
	require.Equal(t, []string{"a", "b", "c"}, b.SegmentNames())

	a, _ := b.Segment("a")
	require.True(t, lines[0].Start.Equal(a.Start()))
	require.True(t, lines[0].End.Equal(a.End()))
}
