package systems

import (
	"os"

	"github.com/automoto/snowcatcher/archetypes"
	"github.com/automoto/snowcatcher/components"
	cfg "github.com/automoto/snowcatcher/config"
	"github.com/automoto/snowcatcher/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition
// capability. Scene constructors are passed as closures to avoid an
// import cycle between systems and scenes.
func NewUpdateMenu(sceneChanger SceneChanger, createWalkerScene, createSnowballScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		// Navigate with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuWalker:
				SaveLastMode(e, "walker")
				sceneChanger.ChangeScene(createWalkerScene())
			case components.MainMenuSnowball:
				SaveLastMode(e, "snowball")
				sceneChanger.ChangeScene(createSnowballScene())
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "SNOWCATCHER"
	titleWidth := len(title) * 7
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Body.Get()
	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := getOptionLabel(option)
		textWidth := len(label) * 7
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, label, menuFont, x, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Quit"
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, fonts.Body.Get(), hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getOptionLabel returns the display text for a menu option
func getOptionLabel(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuWalker:
		return "Walk and Catch"
	case components.MainMenuSnowball:
		return "Throw Snowball"
	case components.MainMenuExit:
		return "Exit"
	default:
		return ""
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		entry := archetypes.Menu.Spawn(e)
		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MainMenuOption{
				components.MainMenuWalker,
				components.MainMenuSnowball,
				components.MainMenuExit,
			},
			SelectedIndex: 0,
		})
	}
	entry, _ := components.Menu.First(e.World)
	return components.Menu.Get(entry)
}
