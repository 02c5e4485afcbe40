package systems

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/gui"
)

// Controller IDs handed to the menu: the keyboard is 0, gamepad N is 1+N.
// Pointer input reaches the menu as gui.ControllerTouch.
const keyboardController gui.ControllerID = 0

func gamepadController(id ebiten.GamepadID) gui.ControllerID {
	return gui.ControllerID(1 + int(id))
}

// Reusable slices for device IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// Previous-frame state for per-device edge detection
var (
	prevKeyboardMask gui.LogicalInput
	prevGamepadMask  = make(map[ebiten.GamepadID]gui.LogicalInput)
	prevMouseDown    bool
	prevTouches      = make(map[ebiten.TouchID]struct{})
)

// menuActionBits maps the menu actions to the logical bits the menu
// consumes.
var menuActionBits = map[cfg.ActionID]gui.LogicalInput{
	cfg.ActionMenuUp:     gui.InputUp,
	cfg.ActionMenuDown:   gui.InputDown,
	cfg.ActionMenuLeft:   gui.InputLeft,
	cfg.ActionMenuRight:  gui.InputRight,
	cfg.ActionMenuSelect: gui.InputSelect,
	cfg.ActionMenuBack:   gui.InputCancel,
}

// UpdateInput polls raw input and updates the Input component.
// Must run before the menu and playground systems.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Read analog stick state (with deadzone)
	analogLeft, analogRight, analogUp, analogDown, analogGpID := getAnalogStickState(gamepadIDs)

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Merge analog stick into directional actions
	if analogLeft {
		input.Current[cfg.ActionMoveLeft] = true
		input.Current[cfg.ActionMenuLeft] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogRight {
		input.Current[cfg.ActionMoveRight] = true
		input.Current[cfg.ActionMenuRight] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogUp {
		input.Current[cfg.ActionMenuUp] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}
	if analogDown {
		input.Current[cfg.ActionMenuDown] = true
		gamepadUsed = true
		activeGamepadID = analogGpID
	}

	updateDeviceEvents(input)
	updatePointers(input)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// updateDeviceEvents rebuilds the per-device menu events: each device that
// has logical bits going down this frame contributes one entry.
func updateDeviceEvents(input *components.InputData) {
	input.Devices = input.Devices[:0]

	kbMask := keyboardMenuMask()
	if events := kbMask &^ prevKeyboardMask; events != 0 {
		input.Devices = append(input.Devices, components.DeviceEvents{
			Controller: keyboardController,
			Pressed:    events,
		})
	}
	prevKeyboardMask = kbMask

	for _, gpID := range gamepadIDs {
		mask := gamepadMenuMask(gpID)
		if events := mask &^ prevGamepadMask[gpID]; events != 0 {
			input.Devices = append(input.Devices, components.DeviceEvents{
				Controller: gamepadController(gpID),
				Pressed:    events,
			})
		}
		prevGamepadMask[gpID] = mask
	}
}

// keyboardMenuMask reads the held logical bits from the keyboard bindings.
func keyboardMenuMask() gui.LogicalInput {
	var mask gui.LogicalInput
	for actionID, bit := range menuActionBits {
		for _, key := range cfg.Input.Bindings[actionID].Keys {
			if ebiten.IsKeyPressed(key) {
				mask |= bit
				break
			}
		}
	}
	return mask
}

// gamepadMenuMask reads the held logical bits from one gamepad, merging
// buttons and the left stick.
func gamepadMenuMask(gpID ebiten.GamepadID) gui.LogicalInput {
	if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
		return 0
	}

	var mask gui.LogicalInput
	for actionID, bit := range menuActionBits {
		for _, btn := range cfg.Input.Bindings[actionID].StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				mask |= bit
				break
			}
		}
	}

	deadzone := cfg.Input.AnalogDeadzone
	horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		mask |= gui.InputLeft
	}
	if horizontal > deadzone {
		mask |= gui.InputRight
	}
	if vertical < -deadzone {
		mask |= gui.InputUp
	}
	if vertical > deadzone {
		mask |= gui.InputDown
	}

	return mask
}

// updatePointers rebuilds the pointer snapshot from the mouse cursor and
// any active touches.
func updatePointers(input *components.InputData) {
	input.Pointers.Pointers = input.Pointers.Pointers[:0]

	x, y := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.Pointers.Pointers = append(input.Pointers.Pointers, gui.Pointer{
		Position:    dmath.Vec2{X: float64(x), Y: float64(y)},
		Pressed:     mouseDown,
		JustPressed: mouseDown && !prevMouseDown,
	})
	prevMouseDown = mouseDown

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		tx, ty := ebiten.TouchPosition(id)
		_, held := prevTouches[id]
		input.Pointers.Pointers = append(input.Pointers.Pointers, gui.Pointer{
			Position:    dmath.Vec2{X: float64(tx), Y: float64(ty)},
			Pressed:     true,
			JustPressed: !held,
		})
	}

	for id := range prevTouches {
		delete(prevTouches, id)
	}
	for _, id := range touchIDs {
		prevTouches[id] = struct{}{}
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getAnalogStickState reads the left analog stick from all gamepads
// Returns directional states based on deadzone threshold and the active gamepad ID
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool, activeGpID ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		// Read left stick axes
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		// Apply deadzone
		if horizontal < -deadzone {
			left = true
			activeGpID = gpID
		}
		if horizontal > deadzone {
			right = true
			activeGpID = gpID
		}
		if vertical < -deadzone {
			up = true
			activeGpID = gpID
		}
		if vertical > deadzone {
			down = true
			activeGpID = gpID
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
