package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"

	"github.com/automoto/menukit/assets"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRegisterAndFindMaterial(t *testing.T) {
	t.Parallel()

	m := assets.NewManager(nil)
	require.Nil(t, m.FindMaterial("textures/dot"))

	first := ebiten.NewImage(2, 2)
	m.Register("textures/dot", first)
	require.Same(t, first, m.FindMaterial("textures/dot"))

	second := ebiten.NewImage(4, 4)
	m.Register("textures/dot", second)
	require.Same(t, second, m.FindMaterial("textures/dot"))
}

func TestLoadMaterialDecodesFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"textures/dot.png": &fstest.MapFile{Data: pngBytes(t, 3, 2)},
	}
	m := assets.NewManager(fsys)

	require.NoError(t, m.LoadMaterial("textures/dot.png"))

	img := m.FindMaterial("textures/dot.png")
	require.NotNil(t, img)
	require.Equal(t, 3, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	// A cached name must not hit the filesystem again.
	delete(fsys, "textures/dot.png")
	require.NoError(t, m.LoadMaterial("textures/dot.png"))
}

func TestLoadMaterialFailures(t *testing.T) {
	t.Parallel()

	noFS := assets.NewManager(nil)
	err := noFS.LoadMaterial("textures/dot.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no backing filesystem")

	fsys := fstest.MapFS{
		"textures/noise.png": &fstest.MapFile{Data: []byte("not an image")},
	}
	m := assets.NewManager(fsys)

	require.Error(t, m.LoadMaterial("textures/missing.png"))

	err = m.LoadMaterial("textures/noise.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode material")
}

func TestLoadShaderCompilesFromFS(t *testing.T) {
	t.Parallel()

	src := []byte(`//kage:unit pixels

package main

var Highlight float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	return imageSrc0At(srcPos) * (1.0 + Highlight)
}
`)
	fsys := fstest.MapFS{
		"shaders/flat.kage":   &fstest.MapFile{Data: src},
		"shaders/broken.kage": &fstest.MapFile{Data: []byte("package main\nfunc Fragment(")},
	}
	m := assets.NewManager(fsys)

	require.NoError(t, m.LoadShader("shaders/flat.kage"))
	require.NotNil(t, m.FindShader("shaders/flat.kage"))

	err := m.LoadShader("shaders/broken.kage")
	require.Error(t, err)
	require.Contains(t, err.Error(), "compile shader")
}

func TestRegisterBuiltinShaders(t *testing.T) {
	t.Parallel()

	m := assets.NewManager(nil)
	require.NoError(t, assets.RegisterBuiltinShaders(m))

	require.NotNil(t, m.FindShader(assets.ShaderUI))
	require.NotNil(t, m.FindShader(assets.ShaderUIInactive))
	require.Nil(t, m.FindShader("glow"))
}
