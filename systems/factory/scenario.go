package factory

import (
	"github.com/automoto/snowcatcher/archetypes"
	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/shared/figure"
	"github.com/automoto/snowcatcher/shared/gamemath"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/automoto/snowcatcher/shared/simlog"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenario spawns the figure, target and simulation entities for
// one scenario run. The strategy holds shared references into the
// target entity, so the scenario owns the full lifecycle: a new
// scenario selection rebuilds everything from scratch.
func CreateScenario(e *ecs.ECS, kind planner.Kind, log simlog.Logger) {
	body, err := figure.NewBuilder().
		Base(gamemath.Vec{X: cfg.Simulation.BaseX, Y: cfg.Simulation.BaseY}).
		Ground(cfg.Simulation.GroundLevel).
		Humanoid().
		Build()
	if err != nil {
		// The humanoid preset is static data; failing to assemble it is
		// a programming error.
		panic("failed to build figure: " + err.Error())
	}

	figEntry := archetypes.Figure.Spawn(e)
	components.Figure.SetValue(figEntry, components.FigureData{Body: body})

	targetEntry := archetypes.Target.Spawn(e)
	components.Target.SetValue(targetEntry, components.TargetData{
		Circle: gamemath.NewCircle(
			gamemath.Vec{X: cfg.Simulation.TargetX, Y: cfg.Simulation.TargetY},
			cfg.Simulation.TargetRadius,
		),
		PulseScale: 1,
	})
	components.Tween.Set(targetEntry, gween.NewSequence())
	target := components.Target.Get(targetEntry)

	var p planner.Planner
	switch kind {
	case planner.KindSnowball:
		s := planner.NewSnowball(body, &target.Circle, cfg.Snowball.Radius, cfg.Snowball.Gravity, log)
		s.SetStandoff(cfg.Snowball.Standoff)
		p = planner.ForSnowball(s)
	default:
		p = planner.ForWalker(planner.NewWalker(body, &target.Circle, cfg.Walker.WalkSpeed, log))
	}
	p.Strategy().PlanSequence()

	simEntry := archetypes.Simulation.Spawn(e)
	components.Simulation.SetValue(simEntry, components.SimulationData{
		Planner:    p,
		AutoRun:    cfg.Simulation.AutoRun,
		LastStatus: p.Status(),
	})
}
