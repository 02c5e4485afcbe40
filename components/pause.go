package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/menukit/gui"
)

// PauseData stores the playground pause state and its menu controller
type PauseData struct {
	IsPaused bool
	Menu     *gui.Menu
}

var Pause = donburi.NewComponentType[PauseData]()
