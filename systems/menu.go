package systems

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/fonts"
	"github.com/automoto/menukit/gui"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// playedOnce survives scene changes so Continue stays unlocked after the
// first run of the playground.
var playedOnce bool

// InitMenu stores the loaded menu definitions on the menu singleton and
// shows the main screen. Scenes call it once before the menu systems run.
func InitMenu(e *ecs.ECS, defs map[string]*gui.MenuDef, assets gui.AssetFinder) {
	menu := GetOrCreateMenu(e)
	menu.Defs = defs
	menu.Assets = assets
	menu.PlayedOnce = playedOnce
	ShowScreen(e, menu, components.ScreenMain)
}

// ShowScreen switches the menu controller to the named screen's definition
// and restores that screen's per-button state.
func ShowScreen(e *ecs.ECS, menu *components.MenuData, screen components.MenuScreen) {
	switch screen {
	case components.ScreenMain:
		menu.Menu.Setup(menu.Defs[cfg.MenuMain], menu.Assets)
		if b := menu.Menu.FindButtonByID(cfg.ButtonContinue); b != nil {
			b.SetActive(menu.PlayedOnce)
		}
	case components.ScreenOptions:
		menu.Menu.Setup(menu.Defs[cfg.MenuOptions], menu.Assets)
		syncOptionFaces(menu, GetOrCreateSettings(e))
	}
	menu.Screen = screen
}

// syncOptionFaces points the options screen's toggle buttons at the
// material matching the current settings.
func syncOptionFaces(menu *components.MenuData, settings *components.SettingsData) {
	if b := menu.Menu.FindButtonByID(cfg.ButtonMusic); b != nil {
		b.SetUpMaterial(toggleIndex(settings.MusicOn))
	}
	if b := menu.Menu.FindButtonByID(cfg.ButtonSound); b != nil {
		b.SetUpMaterial(toggleIndex(settings.SoundOn))
	}
	if b := menu.Menu.FindButtonByID(cfg.ButtonWindow); b != nil {
		b.SetUpMaterial(settings.ResolutionIndex)
	}
}

// toggleIndex maps a boolean onto the on/off material pair order.
func toggleIndex(on bool) int {
	if on {
		return 0
	}
	return 1
}

// NewUpdateMenu creates the menu update system. newPlayScene builds the
// playground scene on demand.
func NewUpdateMenu(sceneChanger SceneChanger, newPlayScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		if !menu.Menu.IsConfigured() {
			return
		}
		input := getOrCreateInput(e)

		canvas := dmath.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)}
		menu.Menu.AdvanceFrame(1.0/60.0, &input.Pointers, canvas)

		prevFocus := menu.Menu.GetFocus()
		for _, dev := range input.Devices {
			menu.Menu.HandleControllerInput(dev.Pressed, dev.Controller)
		}
		if menu.Menu.GetFocus() != prevFocus {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		for {
			sel := menu.Menu.GetRecentSelection()
			if sel == gui.NoSelection {
				break
			}
			handleSelection(e, menu, sel, sceneChanger, newPlayScene)
		}
	}
}

// handleSelection routes one selection event to its effect.
func handleSelection(e *ecs.ECS, menu *components.MenuData, sel gui.Selection, sceneChanger SceneChanger, newPlayScene func() interface{}) {
	settings := GetOrCreateSettings(e)

	switch sel.ButtonID {
	case gui.ButtonInvalidInput:
		PlaySFX(e, cfg.SoundMenuError)

	case gui.ButtonCancel:
		switch menu.Screen {
		case components.ScreenOptions:
			PlaySFX(e, cfg.SoundMenuBack)
			ShowScreen(e, menu, components.ScreenMain)
		case components.ScreenMain:
			os.Exit(0)
		}

	case cfg.ButtonPlay, cfg.ButtonContinue:
		PlaySFX(e, cfg.SoundMenuSelect)
		menu.PlayedOnce = true
		playedOnce = true
		StopMusic(e)
		sceneChanger.ChangeScene(newPlayScene())

	case cfg.ButtonOptions:
		PlaySFX(e, cfg.SoundMenuSelect)
		ShowScreen(e, menu, components.ScreenOptions)

	case cfg.ButtonQuit:
		os.Exit(0)

	case cfg.ButtonMusic:
		PlaySFX(e, cfg.SoundMenuSelect)
		settings.MusicOn = !settings.MusicOn
		ApplySettings(e, settings)
		syncOptionFaces(menu, settings)
		SaveCurrentSettings(settings)

	case cfg.ButtonSound:
		settings.SoundOn = !settings.SoundOn
		ApplySettings(e, settings)
		syncOptionFaces(menu, settings)
		SaveCurrentSettings(settings)
		PlaySFX(e, cfg.SoundMenuSelect)

	case cfg.ButtonWindow:
		PlaySFX(e, cfg.SoundMenuSelect)
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.SettingsMenu.Resolutions)
		ApplySettings(e, settings)
		syncOptionFaces(menu, settings)
		SaveCurrentSettings(settings)

	case cfg.ButtonBack:
		PlaySFX(e, cfg.SoundMenuBack)
		ShowScreen(e, menu, components.ScreenMain)
	}
}

// DrawMenu renders the menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	menu.Menu.Render(screen)

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.UISmall.Get()
	bounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Menu.HintY), cfg.Menu.HintColor)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   B: Back"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Back"
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Menu:   gui.NewMenu(),
			Screen: components.ScreenMain,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
