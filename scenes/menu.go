package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/gui"
	"github.com/automoto/menukit/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	defs         map[string]*gui.MenuDef
	assets       gui.AssetFinder
	once         sync.Once
}

// NewMenuScene creates a new menu scene. defs and assets must stay alive
// for as long as any scene built from them runs.
func NewMenuScene(sc SceneChanger, defs map[string]*gui.MenuDef, assets gui.AssetFinder) *MenuScene {
	return &MenuScene{sceneChanger: sc, defs: defs, assets: assets}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	// Synthesize cues up front to avoid lag on first use
	systems.PreloadAllCues()

	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Create play scene factory that captures the scene changer
	createPlayScene := func() interface{} {
		return NewPlayScene(ms.sceneChanger, ms.defs, ms.assets)
	}

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createPlayScene))
	ms.ecs.AddSystem(systems.UpdateDecor)

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	systems.InitMenu(ms.ecs, ms.defs, ms.assets)
	systems.SpawnDecor(ms.ecs)

	// Restore the persisted settings; this also starts the menu music
	// when it is enabled.
	saved, _ := systems.LoadSettings()
	systems.ApplySavedSettings(ms.ecs, saved)
}
