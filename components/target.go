package components

import (
	"github.com/automoto/snowcatcher/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TargetData holds the circular object the active scenario is aimed
// at. PulseScale is a transient draw-time multiplier driven by the
// effects system; 1 means idle.
type TargetData struct {
	Circle     gamemath.Circle
	PulseScale float64
}

var Target = donburi.NewComponentType[TargetData]()
