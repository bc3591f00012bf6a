package config

import "github.com/yohamta/donburi/ecs"

// ECS layers; renderers registered on a later layer draw on top.
const (
	Default ecs.LayerID = iota
	Overlay
)
