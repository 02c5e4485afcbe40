package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// StaticImage is the runtime state of one non-interactive visual. Unlike
// buttons, images have no per-frame update; their rect is computed at render
// time from the destination size.
type StaticImage struct {
	def       *ImageDef
	materials []*ebiten.Image
	shader    *ebiten.Shader

	canonicalHeight float64
	current         int
	visible         bool
}

// Render draws the image's current material into dst, scaled by
// dstHeight/canonicalHeight like everything else in the menu.
func (si *StaticImage) Render(dst *ebiten.Image) {
	if !si.visible {
		return
	}
	if si.current < 0 || si.current >= len(si.materials) {
		return
	}
	mat := si.materials[si.current]
	if mat == nil {
		return
	}

	s := 1.0
	if si.canonicalHeight > 0 {
		s = float64(dst.Bounds().Dy()) / si.canonicalHeight
	}
	x := si.def.Position.X * s
	y := si.def.Position.Y * s
	w := si.def.Size.X * s
	h := si.def.Size.Y * s
	drawMaterial(dst, mat, si.shader, x, y, w, h, 1, 0)
}

func (si *StaticImage) ID() ButtonID {
	return si.def.ID
}

func (si *StaticImage) Def() *ImageDef {
	return si.def
}

// SetCurrentMaterial selects which of the definition's textures renders.
// Game logic uses this to flip indicator images (checkmarks, toggles).
// Out-of-range indexes are ignored.
func (si *StaticImage) SetCurrentMaterial(i int) {
	if i < 0 || i >= len(si.materials) {
		return
	}
	si.current = i
}

// CurrentMaterial returns the selected texture index.
func (si *StaticImage) CurrentMaterial() int {
	return si.current
}

func (si *StaticImage) IsVisible() bool {
	return si.visible
}

func (si *StaticImage) SetVisible(visible bool) {
	si.visible = visible
}
