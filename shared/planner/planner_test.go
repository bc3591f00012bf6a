package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/automoto/snowcatcher/shared/gamemath"
)

func TestPlannerVariantDispatch(t *testing.T) {
	body := newHumanoid(t, gamemath.Vec{X: 100, Y: 400}, 400)
	target := gamemath.NewCircle(gamemath.Vec{X: 500, Y: 350}, 20)

	pw := ForWalker(NewWalker(body, &target, 5, nil))
	require.Equal(t, KindWalker, pw.Kind)
	pw.Strategy().PlanSequence()
	require.Equal(t, 75, pw.Status().MovesLeft)

	ps := ForSnowball(NewSnowball(body, &target, 10, 9.8, nil))
	require.Equal(t, KindSnowball, ps.Kind)
	require.True(t, ps.Strategy().ExecuteNextMove())
	require.True(t, ps.Status().Active)
}

func TestKindString(t *testing.T) {
	require.Equal(t, "walker", KindWalker.String())
	require.Equal(t, "snowball", KindSnowball.String())
	require.Equal(t, "unknown", Kind(99).String())
}
