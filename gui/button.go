package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	dmath "github.com/yohamta/donburi/features/math"
)

// Press and highlight animation tuning, in seconds.
const (
	pressedScale  = 0.92
	pressDuration = 0.08
	pulseDuration = 0.45
)

// TouchButton is the runtime state of one pressable control. Menu.Setup
// builds these from ButtonDefs; the def itself stays with the definition and
// is only borrowed here.
type TouchButton struct {
	def *ButtonDef

	upMaterials    []*ebiten.Image
	downMaterial   *ebiten.Image
	shader         *ebiten.Shader
	inactiveShader *ebiten.Shader

	canonicalHeight float64
	upIndex         int

	active      bool
	visible     bool
	highlighted bool
	pressed     bool
	triggered   bool

	// Screen-space rect, refreshed by AdvanceFrame from the window size.
	x, y, w, h float64

	scale      float32
	press      *gween.Tween
	pulse      *gween.Tween
	pulseUp    bool
	pulseValue float32
}

// AdvanceFrame refreshes the button's screen rect, tests the frame's
// pointers against it, and steps the press and pulse animations. A button is
// triggered on the frame a pointer goes down inside it; invisible buttons
// ignore pointers entirely.
func (b *TouchButton) AdvanceFrame(dt float64, in *InputState, windowSize dmath.Vec2) {
	b.updateRect(windowSize)

	wasPressed := b.pressed
	b.pressed = false
	b.triggered = false
	if b.visible && in != nil {
		for _, p := range in.Pointers {
			if !b.contains(p.Position) {
				continue
			}
			if p.Pressed {
				b.pressed = true
			}
			if p.JustPressed {
				b.triggered = true
			}
		}
	}

	if b.pressed && !wasPressed {
		b.press = gween.New(b.scale, pressedScale, pressDuration, ease.OutQuad)
	} else if !b.pressed && wasPressed {
		b.press = gween.New(b.scale, 1, pressDuration, ease.OutQuad)
	}
	if b.press != nil {
		v, done := b.press.Update(float32(dt))
		b.scale = v
		if done {
			b.press = nil
		}
	}

	// The pulse runs continuously; it only becomes visible through the
	// Highlight shader uniform while the button holds focus.
	if b.pulse != nil {
		v, done := b.pulse.Update(float32(dt))
		b.pulseValue = v
		if done {
			b.pulseUp = !b.pulseUp
			from, to := float32(1), float32(0)
			if b.pulseUp {
				from, to = 0, 1
			}
			b.pulse = gween.New(from, to, pulseDuration, ease.InOutSine)
		}
	}
}

// Render draws the button's current material into dst at the rect computed
// by the last AdvanceFrame, scaled about its center by the press animation.
// Inactive buttons draw with the inactive shader; a missing material or
// shader falls back to skipping or an unshaded draw.
func (b *TouchButton) Render(dst *ebiten.Image) {
	if !b.visible {
		return
	}
	mat := b.currentMaterial()
	if mat == nil {
		return
	}
	shader := b.shader
	if !b.active {
		shader = b.inactiveShader
	}
	var highlight float32
	if b.highlighted {
		highlight = b.pulseValue
	}
	drawMaterial(dst, mat, shader, b.x, b.y, b.w, b.h, float64(b.scale), highlight)
}

func (b *TouchButton) updateRect(windowSize dmath.Vec2) {
	s := 1.0
	if b.canonicalHeight > 0 {
		s = windowSize.Y / b.canonicalHeight
	}
	b.x = b.def.Position.X * s
	b.y = b.def.Position.Y * s
	b.w = b.def.Size.X * s
	b.h = b.def.Size.Y * s
}

func (b *TouchButton) contains(p dmath.Vec2) bool {
	return p.X >= b.x && p.X < b.x+b.w && p.Y >= b.y && p.Y < b.y+b.h
}

func (b *TouchButton) currentMaterial() *ebiten.Image {
	if b.pressed && b.downMaterial != nil {
		return b.downMaterial
	}
	if len(b.upMaterials) == 0 {
		return nil
	}
	return b.upMaterials[b.upIndex]
}

// startAnimations seeds the press scale and highlight pulse. Setup calls it
// once per button.
func (b *TouchButton) startAnimations() {
	b.scale = 1
	b.press = nil
	b.pulseUp = true
	b.pulseValue = 0
	b.pulse = gween.New(0, 1, pulseDuration, ease.InOutSine)
}

func (b *TouchButton) ID() ButtonID {
	return b.def.ID
}

func (b *TouchButton) Def() *ButtonDef {
	return b.def
}

// IsTriggered reports whether a pointer went down inside the button during
// the last AdvanceFrame. It stays true until the next AdvanceFrame.
func (b *TouchButton) IsTriggered() bool {
	return b.triggered
}

// IsPressed reports whether a pointer is currently held inside the button.
func (b *TouchButton) IsPressed() bool {
	return b.pressed
}

func (b *TouchButton) IsActive() bool {
	return b.active
}

// SetActive toggles whether the button accepts selection. Inactive buttons
// still render (with the inactive shader) and still take part in focus
// navigation; selecting one queues ButtonInvalidInput instead of its ID.
func (b *TouchButton) SetActive(active bool) {
	b.active = active
}

func (b *TouchButton) IsVisible() bool {
	return b.visible
}

// SetVisible toggles rendering and pointer response. Invisible buttons are
// also skipped as focus-navigation destinations.
func (b *TouchButton) SetVisible(visible bool) {
	b.visible = visible
}

// IsHighlighted reports whether this button held the menu focus as of the
// last AdvanceFrame. There is no setter; the menu derives it every frame
// from the focus.
func (b *TouchButton) IsHighlighted() bool {
	return b.highlighted
}

// SetUpMaterial selects which normal-state material renders, for buttons
// whose definition lists several (toggle faces and the like). Out-of-range
// indexes are ignored.
func (b *TouchButton) SetUpMaterial(i int) {
	if i < 0 || i >= len(b.upMaterials) {
		return
	}
	b.upIndex = i
}
