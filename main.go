package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/menukit/assets"
	"github.com/automoto/menukit/config"
	"github.com/automoto/menukit/fonts"
	"github.com/automoto/menukit/gui"
	"github.com/automoto/menukit/scenes"
	"github.com/automoto/menukit/systems"
	"github.com/automoto/menukit/tiledmenu"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(defs map[string]*gui.MenuDef, mgr *assets.Manager) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlayScene(g, defs, mgr)
	} else {
		g.scene = scenes.NewMenuScene(g, defs, mgr)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// buildMenuAssets bakes every face the menu definitions reference, compiles
// the built-in shaders, and loads the Tiled definitions themselves. Nothing
// here reads from disk.
func buildMenuAssets() (*assets.Manager, map[string]*gui.MenuDef) {
	mgr := assets.NewManager(nil)
	if err := assets.RegisterBuiltinShaders(mgr); err != nil {
		log.Fatalf("Failed to compile menu shaders: %v", err)
	}
	assets.BuildFaces(mgr)

	defs, names, err := tiledmenu.LoadAll(assets.MenusFS, "menus")
	if err != nil {
		log.Fatalf("Failed to load menu definitions: %v", err)
	}
	for _, name := range names {
		gui.LoadAssets(defs[name], mgr)
	}

	return mgr, defs
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the title menu and start in the playground")
	flag.Parse()

	fonts.LoadFontWithSize(fonts.UI, goregular.TTF, config.UI.FaceFontSize)
	fonts.LoadFontWithSize(fonts.UIBold, gobold.TTF, config.UI.FaceFontSize)
	fonts.LoadFontWithSize(fonts.UITitle, gobold.TTF, config.UI.TitleFontSize)
	fonts.LoadFontWithSize(fonts.UISmall, goregular.TTF, 12)

	mgr, defs := buildMenuAssets()

	ebiten.SetWindowTitle("menukit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and pick the saved window size before the
	// window opens. Everything else applies per scene.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	res := config.SettingsMenu.Resolutions[config.SettingsMenu.DefaultResolutionIndex]
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(config.SettingsMenu.Resolutions) {
			res = config.SettingsMenu.Resolutions[saved.ResolutionIndex]
		}
	}
	ebiten.SetWindowSize(res.Width, res.Height)

	if err := ebiten.RunGame(NewGame(defs, mgr)); err != nil {
		log.Fatal(err)
	}
}
