package gui

// ButtonID identifies a single control (button or static image) within a
// menu. IDs only need to be unique within one menu definition.
type ButtonID uint16

// Reserved IDs. Menu definitions should number their own controls above
// ButtonCancel; the loader warns when a definition reuses a reserved ID.
const (
	// ButtonUndefined is returned by GetRecentSelection when the queue is
	// empty, and is the focus value of an unconfigured menu.
	ButtonUndefined ButtonID = iota
	// ButtonInvalidInput marks a selection event that landed on nothing
	// usable: a failed navigation, or select/trigger on an inactive button.
	ButtonInvalidInput
	// ButtonCancel is the ID carried by every cancel event, regardless of
	// which button holds focus.
	ButtonCancel
)

// ControllerID identifies the input channel a selection event came from.
// Real devices use non-negative values assigned by the caller; the two
// sentinels are reserved.
type ControllerID int

const (
	// ControllerUndefined accompanies the empty-queue sentinel selection.
	ControllerUndefined ControllerID = -2
	// ControllerTouch marks events produced by pointer input (mouse or
	// touch) and by failed focus moves, which have no owning device.
	ControllerTouch ControllerID = -1
)

// LogicalInput is a bitmask of device-independent menu inputs for one frame.
// Callers translate raw key, button, and axis state into these bits before
// handing them to HandleControllerInput.
type LogicalInput uint32

const (
	InputUp LogicalInput = 1 << iota
	InputDown
	InputLeft
	InputRight
	InputSelect
	InputCancel
)
