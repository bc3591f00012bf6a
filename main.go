package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/fonts"
	"github.com/automoto/snowcatcher/scenes"
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/automoto/snowcatcher/shared/simlog"
	"github.com/automoto/snowcatcher/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(logger simlog.Logger) *Game {
	fonts.LoadDefaults()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewSimulationScene(g, planner.KindWalker, logger)
	} else {
		g.scene = scenes.NewMenuScene(g, logger)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "snowcatcher.yaml", "path to the YAML config file")
	skipMenu := flag.Bool("skip-menu", false, "skip the menu and start the walker scenario")
	quiet := flag.Bool("quiet", false, "disable simulation event logging")
	flag.Parse()

	if err := config.LoadFile(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.Debug.SkipMenu = *skipMenu

	var logger simlog.Logger = simlog.Nop{}
	if !*quiet {
		zl, err := zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
		defer zl.Sync() //nolint:errcheck
		logger = simlog.NewZap(zl)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Snowcatcher")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	if err := ebiten.RunGame(NewGame(logger)); err != nil {
		log.Fatal(err)
	}
}
