package gui_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/gui"
)

// Not parallel: it swaps the package-level touch detector and must finish
// before the parallel tests start calling Name through Setup.
func TestTextureDefPicksTouchVariant(t *testing.T) {
	tex := gui.TextureDef{Standard: "faces/btn", TouchScreen: "faces/btn_touch"}
	bare := gui.TextureDef{Standard: "faces/btn"}

	require.Equal(t, "faces/btn", tex.Name())

	orig := gui.TouchScreenDevice
	defer func() { gui.TouchScreenDevice = orig }()
	gui.TouchScreenDevice = func() bool { return true }

	require.Equal(t, "faces/btn_touch", tex.Name())
	require.Equal(t, "faces/btn", bare.Name())
}

func TestImageMaterialSelection(t *testing.T) {
	t.Parallel()

	def := &gui.MenuDef{
		CanonicalSize: dmath.Vec2{X: 640, Y: 360},
		StartingFocus: idTop,
		Buttons: []gui.ButtonDef{
			{
				ID: idTop, Position: dmath.Vec2{X: 0, Y: 0}, Size: dmath.Vec2{X: 10, Y: 10},
				StartsActive: true,
			},
		},
		Images: []gui.ImageDef{
			{
				ID: 64, Position: dmath.Vec2{X: 600, Y: 8}, Size: dmath.Vec2{X: 24, Y: 24},
				Textures: []gui.TextureDef{
					{Standard: "faces/spark_0"},
					{Standard: "faces/spark_1"},
				},
			},
		},
	}
	m := gui.NewMenu()
	m.Setup(def, nullAssets{})

	img := m.FindImageByID(64)
	require.NotNil(t, img)
	require.Nil(t, m.FindImageByID(65))
	require.Equal(t, 0, img.CurrentMaterial())

	img.SetCurrentMaterial(1)
	require.Equal(t, 1, img.CurrentMaterial())

	// Out-of-range indexes are ignored.
	img.SetCurrentMaterial(2)
	require.Equal(t, 1, img.CurrentMaterial())
	img.SetCurrentMaterial(-1)
	require.Equal(t, 1, img.CurrentMaterial())

	require.True(t, img.IsVisible())
	img.SetVisible(false)
	require.False(t, img.IsVisible())
}

func TestButtonMaterialIndexBounds(t *testing.T) {
	t.Parallel()

	def := &gui.MenuDef{
		CanonicalSize: dmath.Vec2{X: 640, Y: 360},
		StartingFocus: idTop,
		Buttons: []gui.ButtonDef{
			{
				ID: idTop, Position: dmath.Vec2{X: 0, Y: 0}, Size: dmath.Vec2{X: 10, Y: 10},
				StartsActive: true,
				TextureNormal: []gui.TextureDef{
					{Standard: "faces/btn_music_on"},
					{Standard: "faces/btn_music_off"},
				},
			},
		},
	}
	m := gui.NewMenu()
	m.Setup(def, nullAssets{})

	b := m.FindButtonByID(idTop)
	require.NotPanics(t, func() {
		b.SetUpMaterial(1)
		b.SetUpMaterial(5)
		b.SetUpMaterial(-1)
	})
}
