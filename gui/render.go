package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// drawMaterial draws mat into the screen-space rect (x, y, w, h), scaled
// about the rect center by scale. With a shader the draw goes through
// DrawRectShader and the shader receives the material as Images[0] plus a
// Highlight float uniform; without one it is a plain DrawImage.
func drawMaterial(dst, mat *ebiten.Image, shader *ebiten.Shader, x, y, w, h, scale float64, highlight float32) {
	bounds := mat.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || w <= 0 || h <= 0 {
		return
	}

	var geo ebiten.GeoM
	geo.Scale(w/float64(srcW)*scale, h/float64(srcH)*scale)
	geo.Translate(x+(w-w*scale)/2, y+(h-h*scale)/2)

	if shader == nil {
		op := &ebiten.DrawImageOptions{GeoM: geo}
		dst.DrawImage(mat, op)
		return
	}

	op := &ebiten.DrawRectShaderOptions{GeoM: geo}
	op.Images[0] = mat
	op.Uniforms = map[string]any{
		"Highlight": highlight,
	}
	dst.DrawRectShader(srcW, srcH, shader, op)
}
