package gui

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// TouchScreenDevice reports whether the player is driving the game with a
// touch screen. Definitions may name touch-specific texture variants; when
// this returns true those variants are preferred when a menu resolves its
// materials. The default assumes a desktop build; mobile builds swap it in
// at startup.
var TouchScreenDevice = func() bool { return false }

// Pointer is the per-frame state of one pointing device: the mouse cursor
// or a single touch.
type Pointer struct {
	Position dmath.Vec2
	// Pressed is true while the button or touch is held down.
	Pressed bool
	// JustPressed is true only on the frame the press started.
	JustPressed bool
}

// InputState is the pointer snapshot a menu consumes each frame. Callers
// rebuild it every frame from whatever input layer they use; the menu never
// polls devices itself.
type InputState struct {
	Pointers []Pointer
}
