package systems

import (
	cfg "github.com/automoto/snowcatcher/config"

	"github.com/automoto/snowcatcher/components"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// dtPerFrame assumes ebiten's default fixed 60 TPS update loop.
const dtPerFrame = 1.0 / 60.0

// UpdateSimulation advances the active planner. Planner moves are paced
// by StepsPerSecond while auto-run is on, or fired one at a time from
// the step action. Projectile flight is integrated every frame once the
// throw has been released, independent of move pacing.
func UpdateSimulation(e *ecs.ECS) {
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(simEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionReset).JustPressed {
		sim.ResetRequested = true
		return
	}
	if GetAction(input, cfg.ActionReplan).JustPressed {
		sim.Planner.Strategy().PlanSequence()
		sim.Complete = false
		sim.StepAccum = 0
	}
	if GetAction(input, cfg.ActionToggleAuto).JustPressed {
		sim.AutoRun = !sim.AutoRun
	}

	strategy := sim.Planner.Strategy()

	if sim.AutoRun && !sim.Complete {
		sim.StepAccum += cfg.Simulation.StepsPerSecond * dtPerFrame
		for sim.StepAccum >= 1 {
			sim.StepAccum--
			strategy.ExecuteNextMove()
		}
	} else if GetAction(input, cfg.ActionStep).JustPressed {
		strategy.ExecuteNextMove()
	}

	if sim.Planner.Kind == planner.KindSnowball && sim.Planner.Snowball.Active() {
		sim.Planner.Snowball.Update(dtPerFrame * cfg.Snowball.TimeScale)
	}

	status := sim.Planner.Status()
	switch sim.Planner.Kind {
	case planner.KindSnowball:
		sim.Complete = status.HitTarget || status.HitGround
	default:
		sim.Complete = status.Complete
	}

	if (status.Caught && !sim.LastStatus.Caught) ||
		(status.HitTarget && !sim.LastStatus.HitTarget) {
		pulseTarget(e)
	}
	sim.LastStatus = status
}

// IsResetRequested reports whether the player asked for the scenario to
// be rebuilt. The scene reacts by recreating itself.
func IsResetRequested(e *ecs.ECS) bool {
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return false
	}
	return components.Simulation.Get(simEntry).ResetRequested
}

// pulseTarget restarts the scale pulse on the target marker.
func pulseTarget(e *ecs.ECS) {
	entry, ok := components.Target.First(e.World)
	if !ok || !entry.HasComponent(components.Tween) {
		return
	}
	components.Tween.Set(entry, gween.NewSequence(
		gween.New(1, 1.6, 0.15, ease.OutQuad),
		gween.New(1.6, 1, 0.35, ease.InQuad),
	))
}
