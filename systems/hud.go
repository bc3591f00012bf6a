package systems

import (
	"fmt"

	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/fonts"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the status overlay in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	simEntry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(simEntry)
	status := sim.Planner.Status()

	lines := []string{
		fmt.Sprintf("Mode: %s", status.Kind),
	}

	switch sim.Planner.Kind {
	case planner.KindSnowball:
		lines = append(lines, snowballStatusLine(status))
	default:
		lines = append(lines, fmt.Sprintf("Moves left: %d", status.MovesLeft))
		if status.Caught {
			lines = append(lines, "Object caught!")
		} else if status.Complete {
			lines = append(lines, "Sequence exhausted")
		}
	}

	auto := "off"
	if sim.AutoRun {
		auto = "on"
	}
	lines = append(lines,
		fmt.Sprintf("Auto-run: %s", auto),
		"Space: step   A: auto   P: replan   R: reset   Esc: menu",
	)

	face := fonts.Body.Get()
	x := int(cfg.HUD.Margin)
	y := int(cfg.HUD.Margin) + 12
	for _, line := range lines {
		text.Draw(screen, line, face, x, y, cfg.HUD.TextColor)
		y += int(cfg.HUD.LineGap)
	}
}

func snowballStatusLine(status planner.Status) string {
	switch {
	case status.HitTarget:
		return "Snowball hit the target!"
	case status.HitGround:
		return "Snowball hit the ground"
	case status.Active:
		return "Snowball in flight"
	default:
		return "Ready to throw (Space)"
	}
}
