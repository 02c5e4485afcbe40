package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/menukit/assets/animations"
	"github.com/automoto/menukit/gui"
)

// AnimationData cycles a menu image through its materials.
type AnimationData struct {
	Flipbook *animations.Animation
	ImageID  gui.ButtonID
}

var Animation = donburi.NewComponentType[AnimationData]()
