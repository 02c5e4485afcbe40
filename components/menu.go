package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/menukit/gui"
)

// MenuScreen identifies which definition the menu controller currently
// shows.
type MenuScreen int

const (
	ScreenMain MenuScreen = iota
	ScreenOptions
)

// MenuData stores the menu controller and the definitions it switches
// between (singleton component)
type MenuData struct {
	Menu   *gui.Menu
	Screen MenuScreen

	// Defs holds the loaded menu definitions by name; they outlive every
	// Setup call made with them.
	Defs   map[string]*gui.MenuDef
	Assets gui.AssetFinder

	// PlayedOnce is set after the first playground session and unlocks the
	// Continue button.
	PlayedOnce bool
}

// Menu is the component type for menu state
var Menu = donburi.NewComponentType[MenuData]()
