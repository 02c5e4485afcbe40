package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the component type for the playground collision space
var Space = donburi.NewComponentType[resolv.Space]()
