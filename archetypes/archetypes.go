package archetypes

import (
	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Figure = newArchetype(
		tags.Figure,
		components.Figure,
	)
	Target = newArchetype(
		tags.Target,
		components.Target,
		components.Tween,
	)
	Simulation = newArchetype(
		components.Simulation,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
