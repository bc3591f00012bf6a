package config

import "image/color"

// SimulationConfig contains the scenario setup values
type SimulationConfig struct {
	// Figure
	BaseX       float64
	BaseY       float64
	GroundLevel float64

	// Target object
	TargetX      float64
	TargetY      float64
	TargetRadius float64

	// Pacing: planner moves executed per second while auto-run is on
	StepsPerSecond float64
	AutoRun        bool
}

// WalkerConfig contains walk/reach/grab scenario configuration
type WalkerConfig struct {
	WalkSpeed float64
}

// SnowballConfig contains throw scenario configuration
type SnowballConfig struct {
	Radius    float64
	Gravity   float64
	Standoff  float64 // Launch height above the body base
	TimeScale float64 // Flight time multiplier so slow arcs stay watchable
}

// MenuConfig contains main menu layout and colors
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains status overlay configuration
type HUDConfig struct {
	Margin    float64
	LineGap   float64
	TextColor color.RGBA
}

// SceneConfig contains simulation drawing configuration
type SceneConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	FigureColor     color.RGBA
	TargetColor     color.RGBA
	SnowballColor   color.RGBA
	LineWidth       float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the walker scenario
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Simulation SimulationConfig
var Walker WalkerConfig
var Snowball SnowballConfig
var Menu MenuConfig
var HUD HUDConfig
var Scene SceneConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	Green     = color.RGBA{R: 100, G: 180, B: 100, A: 255}
	Blue      = color.RGBA{R: 50, G: 50, B: 200, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Snow      = color.RGBA{R: 240, G: 240, B: 250, A: 255}
	Backdrop  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Simulation = SimulationConfig{
		BaseX:          100,
		BaseY:          400,
		GroundLevel:    400,
		TargetX:        500,
		TargetY:        350,
		TargetRadius:   20,
		StepsPerSecond: 30,
		AutoRun:        false,
	}

	Walker = WalkerConfig{
		WalkSpeed: 5,
	}

	Snowball = SnowballConfig{
		Radius:    10,
		Gravity:   9.8,
		Standoff:  50,
		TimeScale: 3,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 24, B: 38, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            140,
		MenuStartY:        240,
		MenuItemHeight:    16,
		MenuItemGap:       18,
	}

	HUD = HUDConfig{
		Margin:    10,
		LineGap:   16,
		TextColor: color.RGBA{R: 30, G: 30, B: 30, A: 255},
	}

	Scene = SceneConfig{
		BackgroundColor: Backdrop,
		GroundColor:     Green,
		FigureColor:     Blue,
		TargetColor:     Red,
		SnowballColor:   Snow,
		LineWidth:       3,
	}
}
