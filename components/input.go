package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/gui"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// DeviceEvents carries one device's menu input for the current frame: the
// logical bits that went down this frame, tagged with the controller they
// came from.
type DeviceEvents struct {
	Controller gui.ControllerID
	Pressed    gui.LogicalInput
}

// InputData stores the current and previous frame's pressed state for all
// actions, merged across devices, plus the per-device menu events and the
// pointer snapshot for the frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	Devices  []DeviceEvents
	Pointers gui.InputState
}

var Input = donburi.NewComponentType[InputData]()
