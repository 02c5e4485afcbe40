package systems

import (
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

// NewUpdatePause creates the pause system for the playground scene. The
// overlay runs its own menu controller, configured from defs when the
// player pauses and torn down again on resume. newMenuScene builds the
// title scene on demand.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(defs map[string]*gui.MenuDef, assets gui.AssetFinder, sceneChanger SceneChanger, newMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		pause := GetOrCreatePause(e)
		input := getOrCreateInput(e)

		// Toggle pause on ESC or P
		if GetAction(input, cfg.ActionPause).JustPressed {
			if pause.IsPaused {
				closePauseMenu(e, pause)
				return
			}
			pause.IsPaused = true
			pause.Menu.Setup(defs[cfg.MenuPause], assets)
			// The press that opened the overlay is not fed to the menu.
			return
		}

		if !pause.IsPaused {
			return
		}

		canvas := dmath.Vec2{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)}
		pause.Menu.AdvanceFrame(1.0/60.0, &input.Pointers, canvas)

		prevFocus := pause.Menu.GetFocus()
		for _, dev := range input.Devices {
			pause.Menu.HandleControllerInput(dev.Pressed, dev.Controller)
		}
		if pause.Menu.GetFocus() != prevFocus {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		for {
			sel := pause.Menu.GetRecentSelection()
			if sel == gui.NoSelection {
				break
			}
			handlePauseSelection(e, pause, sel, sceneChanger, newMenuScene)
			if !pause.IsPaused {
				break
			}
		}
	}
}

// handlePauseSelection routes one pause menu event to its effect.
func handlePauseSelection(e *ecs.ECS, pause *components.PauseData, sel gui.Selection, sceneChanger SceneChanger, newMenuScene func() interface{}) {
	switch sel.ButtonID {
	case gui.ButtonInvalidInput:
		PlaySFX(e, cfg.SoundMenuError)

	case gui.ButtonCancel, cfg.ButtonResume:
		PlaySFX(e, cfg.SoundMenuBack)
		closePauseMenu(e, pause)

	case cfg.ButtonExitToMenu:
		PlaySFX(e, cfg.SoundMenuSelect)
		closePauseMenu(e, pause)
		sceneChanger.ChangeScene(newMenuScene())
	}
}

// closePauseMenu resumes play and tears the overlay's menu down.
func closePauseMenu(e *ecs.ECS, pause *components.PauseData) {
	pause.IsPaused = false
	pause.Menu.Setup(nil, nil)
}

// DrawPause renders the pause overlay and its menu.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	pause.Menu.Render(screen)

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.UISmall.Get()
	bounds := text.BoundString(hintFont, hint) //nolint:staticcheck // TODO: migrate to text/v2
	hintX := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(cfg.Menu.HintY), cfg.Menu.HintColor)
}

// getPauseHint returns the appropriate hint for the pause overlay
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
			Menu:     gui.NewMenu(),
		})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
