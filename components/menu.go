package components

import (
	"github.com/yohamta/donburi"
)

// MainMenuOption identifies a main menu entry
type MainMenuOption int

const (
	MainMenuWalker MainMenuOption = iota
	MainMenuSnowball
	MainMenuExit
)

type MenuData struct {
	Options       []MainMenuOption
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
