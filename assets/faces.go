package assets

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	cfg "github.com/automoto/menukit/config"
	"github.com/automoto/menukit/fonts"
)

// BuildFaces bakes every material the menu definitions reference and
// registers them with the manager. Faces are drawn once at startup, so the
// menus need no image files on disk.
func BuildFaces(m *Manager) {
	labelFont := fonts.UIBold.Get()
	toggleFont := fonts.UI.Get()

	buttons := []struct {
		name  string
		label string
	}{
		{"btn_play", "PLAY"},
		{"btn_continue", "CONTINUE"},
		{"btn_options", "OPTIONS"},
		{"btn_quit", "QUIT"},
		{"btn_back", "BACK"},
		{"btn_resume", "RESUME"},
		{"btn_exit", "EXIT TO MENU"},
	}
	for _, b := range buttons {
		m.Register("faces/"+b.name, bakeButton(labelFont, b.label, cfg.UI.FaceFill, cfg.UI.FaceText))
		m.Register("faces/"+b.name+"_down", bakeButton(labelFont, b.label, cfg.UI.FaceFillDown, cfg.UI.FaceText))
	}

	toggles := []struct {
		name  string
		label string
	}{
		{"btn_music_on", "MUSIC  ON"},
		{"btn_music_off", "MUSIC  OFF"},
		{"btn_sound_on", "SOUND  ON"},
		{"btn_sound_off", "SOUND  OFF"},
	}
	for _, t := range toggles {
		m.Register("faces/"+t.name, bakeButton(toggleFont, t.label, cfg.UI.FaceFill, cfg.UI.FaceTextToggle))
	}

	for i, res := range cfg.SettingsMenu.Resolutions {
		name := fmt.Sprintf("faces/btn_window_%d", i)
		m.Register(name, bakeButton(toggleFont, "WINDOW  "+res.Label, cfg.UI.FaceFill, cfg.UI.FaceTextToggle))
	}

	titleFont := fonts.UITitle.Get()
	m.Register("faces/title_main", bakeTitle(titleFont, "MENUKIT"))
	m.Register("faces/title_options", bakeTitle(titleFont, "OPTIONS"))

	for frame := 0; frame < cfg.UI.SparkFrames; frame++ {
		m.Register(fmt.Sprintf("faces/spark_%d", frame), bakeSpark(frame))
	}
}

// bakeButton draws one button face: filled rounded-off rectangle, border,
// centered label.
func bakeButton(face font.Face, label string, fill, textColor color.RGBA) *ebiten.Image {
	w := int(cfg.UI.ButtonWidth)
	h := int(cfg.UI.ButtonHeight)
	img := ebiten.NewImage(w, h)

	vector.FillRect(img, 0, 0, float32(w), float32(h), fill, false)
	vector.StrokeRect(img, 1, 1, float32(w-2), float32(h-2), 2, cfg.UI.FaceBorder, false)

	drawCentered(img, face, label, textColor)
	return img
}

// bakeTitle draws a title banner: large centered text on a transparent
// background.
func bakeTitle(face font.Face, label string) *ebiten.Image {
	img := ebiten.NewImage(int(cfg.UI.TitleWidth), int(cfg.UI.TitleHeight))
	drawCentered(img, face, label, cfg.UI.TitleText)
	return img
}

// bakeSpark draws one frame of the corner decoration: a dot orbiting a
// smaller center dot, a quarter turn per frame.
func bakeSpark(frame int) *ebiten.Image {
	size := int(cfg.UI.SparkSize)
	img := ebiten.NewImage(size, size)

	c := float32(size) / 2
	angle := float64(frame) / float64(cfg.UI.SparkFrames) * 2 * math.Pi
	orbit := float64(size) * 0.3

	vector.DrawFilledCircle(img, c, c, float32(size)/12, cfg.UI.FaceBorder, true)
	vector.DrawFilledCircle(img,
		c+float32(orbit*math.Cos(angle)),
		c+float32(orbit*math.Sin(angle)),
		float32(size)/8, cfg.UI.FaceTextToggle, true)

	return img
}

func drawCentered(img *ebiten.Image, face font.Face, label string, clr color.RGBA) {
	bounds := text.BoundString(face, label) //nolint:staticcheck // TODO: migrate to text/v2
	x := (img.Bounds().Dx()-bounds.Dx())/2 - bounds.Min.X
	y := (img.Bounds().Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(img, label, face, x, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
