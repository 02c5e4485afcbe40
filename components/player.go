package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds the playground avatar's motion state.
type PlayerData struct {
	VX       float64
	VY       float64
	OnGround bool
}

var Player = donburi.NewComponentType[PlayerData]()
