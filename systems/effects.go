package systems

import (
	"github.com/automoto/snowcatcher/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances the target pulse tween.
func UpdateEffects(e *ecs.ECS) {
	components.Target.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Tween) {
			return
		}
		target := components.Target.Get(entry)
		scale, _, done := components.Tween.Get(entry).Update(dtPerFrame)
		if done {
			target.PulseScale = 1
			return
		}
		target.PulseScale = float64(scale)
	})
}
