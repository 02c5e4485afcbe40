package gui

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// TextureDef names the material for one visual slot, with an optional
// variant for touch-screen builds.
type TextureDef struct {
	Standard    string
	TouchScreen string
}

// Name picks the variant for the current device. The touch name is used only
// when one is given and TouchScreenDevice reports true.
func (t TextureDef) Name() string {
	if t.TouchScreen != "" && TouchScreenDevice() {
		return t.TouchScreen
	}
	return t.Standard
}

// ButtonDef describes one pressable control. Position and Size are top-left
// and extent in canonical space (see MenuDef.CanonicalSize).
//
// The four Nav lists hold candidate destinations for focus movement, in
// priority order. A nil list means the direction leads nowhere.
type ButtonDef struct {
	ID       ButtonID
	Position dmath.Vec2
	Size     dmath.Vec2

	// TextureNormal is the list of selectable up-state materials; game logic
	// can switch between them, for example to show a toggle state.
	TextureNormal  []TextureDef
	TexturePressed *TextureDef

	// Shader and InactiveShader override the menu-wide defaults when set.
	Shader         string
	InactiveShader string

	StartsActive bool

	NavUp    []ButtonID
	NavDown  []ButtonID
	NavLeft  []ButtonID
	NavRight []ButtonID
}

// ImageDef describes one non-interactive visual. Images with
// RenderAfterButtons set draw on top of the buttons, everything else draws
// beneath them.
type ImageDef struct {
	ID       ButtonID
	Position dmath.Vec2
	Size     dmath.Vec2

	Textures []TextureDef
	Shader   string

	RenderAfterButtons bool
}

// MenuDef is one screen's worth of menu content. A Menu borrows the
// definition it is set up with and reads it every frame, so the definition
// must stay alive and unmodified until the next Setup call.
//
// CanonicalSize is the virtual canvas the positions and sizes are authored
// against. Rendering and hit-testing scale uniformly by
// windowHeight/CanonicalSize.Y, so CanonicalSize.Y must be positive; that is
// the caller's responsibility (the Tiled loader enforces it for loaded
// definitions).
type MenuDef struct {
	CanonicalSize dmath.Vec2
	StartingFocus ButtonID

	// DefaultShader and DefaultInactiveShader apply to any button or image
	// that does not name its own.
	DefaultShader         string
	DefaultInactiveShader string

	Buttons []ButtonDef
	Images  []ImageDef
}
