package tags

import "github.com/yohamta/donburi"

var (
	Figure = donburi.NewTag().SetName("Figure")
	Target = donburi.NewTag().SetName("Target")
)
