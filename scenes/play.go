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

// PlayScene runs the playground: a small walled arena the avatar can run
// and jump around in while the pause overlay exercises a second menu.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	defs         map[string]*gui.MenuDef
	assets       gui.AssetFinder
	once         sync.Once
}

// NewPlayScene creates a new playground scene
func NewPlayScene(sc SceneChanger, defs map[string]*gui.MenuDef, assets gui.AssetFinder) *PlayScene {
	return &PlayScene{sceneChanger: sc, defs: defs, assets: assets}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	// Synthesize cues up front to avoid lag on first use
	systems.PreloadAllCues()

	ps.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(ps.sceneChanger, ps.defs, ps.assets)
	}

	// Audio system (runs first, even when paused for menu sounds)
	ps.ecs.AddSystem(systems.UpdateAudio)

	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.NewUpdatePause(ps.defs, ps.assets, ps.sceneChanger, createMenuScene))

	// Game systems wrapped with pause checks
	ps.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlay))
	ps.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateFloatingPlatforms))

	ps.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	systems.SpawnArena(ps.ecs)

	// The playground has no music, but the cue mix still honors the
	// persisted sound setting.
	if saved, _ := systems.LoadSettings(); saved != nil && !saved.SoundOn {
		systems.SetSFXVolume(ps.ecs, 0)
	}
}
