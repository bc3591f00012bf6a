package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/automoto/snowcatcher/shared/simlog"
	"github.com/automoto/snowcatcher/systems"
	"github.com/automoto/snowcatcher/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationScene runs one scenario. Resetting tears the scene down and
// builds a fresh one so the figure, target and strategy start clean.
type SimulationScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	kind         planner.Kind
	log          simlog.Logger
	once         sync.Once
}

// NewSimulationScene creates a scenario scene for the given strategy kind
func NewSimulationScene(sc SceneChanger, kind planner.Kind, log simlog.Logger) *SimulationScene {
	return &SimulationScene{sceneChanger: sc, kind: kind, log: simlog.OrNop(log)}
}

func (ss *SimulationScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if systems.IsResetRequested(ss.ecs) {
		ss.sceneChanger.ChangeScene(NewSimulationScene(ss.sceneChanger, ss.kind, ss.log))
		return
	}

	input := systems.GetOrCreateInput(ss.ecs)
	if systems.GetAction(input, cfg.ActionMenuBack).JustPressed {
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.log))
	}
}

func (ss *SimulationScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SimulationScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateSimulation)
	ss.ecs.AddSystem(systems.UpdateEffects)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawSimulation)
	ss.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	factory.CreateScenario(ss.ecs, ss.kind, ss.log)
}
