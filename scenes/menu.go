package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/automoto/snowcatcher/shared/simlog"
	"github.com/automoto/snowcatcher/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	log          simlog.Logger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, log simlog.Logger) *MenuScene {
	return &MenuScene{sceneChanger: sc, log: simlog.OrNop(log)}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createWalkerScene := func() interface{} {
		return NewSimulationScene(ms.sceneChanger, planner.KindWalker, ms.log)
	}
	createSnowballScene := func() interface{} {
		return NewSimulationScene(ms.sceneChanger, planner.KindSnowball, ms.log)
	}

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWalkerScene, createSnowballScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
