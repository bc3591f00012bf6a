package systems

import (
	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawSimulation renders the scenario: backdrop, ground band, target,
// the articulated figure as segment strokes, and the projectile while
// it is in flight.
func DrawSimulation(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Scene.BackgroundColor)

	groundY := float32(cfg.Simulation.GroundLevel)
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	if groundY < height {
		vector.DrawFilledRect(screen, 0, groundY, width, height-groundY, cfg.Scene.GroundColor, false)
	}
	vector.StrokeLine(screen, 0, groundY, width, groundY, 1, cfg.Scene.FigureColor, true)

	components.Target.Each(e.World, func(entry *donburi.Entry) {
		target := components.Target.Get(entry)
		r := float32(target.Circle.Radius * target.PulseScale)
		vector.DrawFilledCircle(screen,
			float32(target.Circle.Center.X), float32(target.Circle.Center.Y),
			r, cfg.Scene.TargetColor, true)
	})

	components.Figure.Each(e.World, func(entry *donburi.Entry) {
		body := components.Figure.Get(entry).Body
		if body == nil {
			return
		}
		for _, line := range body.SegmentLines() {
			vector.StrokeLine(screen,
				float32(line.Start.X), float32(line.Start.Y),
				float32(line.End.X), float32(line.End.Y),
				cfg.Scene.LineWidth, cfg.Scene.FigureColor, true)
		}
	})

	drawProjectile(e, screen)
}

func drawProjectile(e *ecs.ECS, screen *ebiten.Image) {
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(simEntry)
	if sim.Planner.Kind != planner.KindSnowball {
		return
	}
	s := sim.Planner.Snowball
	if !s.Active() && !s.HitTarget() && !s.HitGround() {
		return
	}
	pos := s.Position()
	vector.DrawFilledCircle(screen,
		float32(pos.X), float32(pos.Y),
		float32(s.Radius()), cfg.Scene.SnowballColor, true)
}
