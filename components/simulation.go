package components

import (
	"github.com/automoto/snowcatcher/shared/planner"
	"github.com/yohamta/donburi"
)

// SimulationData is the per-scenario state machine driver: the active
// strategy variant, pacing for auto-run, and the last observed status
// for edge detection.
type SimulationData struct {
	Planner planner.Planner

	AutoRun   bool
	StepAccum float64

	Complete   bool
	LastStatus planner.Status

	// ResetRequested asks the scene to rebuild the scenario from
	// scratch on the next update.
	ResetRequested bool
}

var Simulation = donburi.NewComponentType[SimulationData]()
