package tiledmenu_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/gui"
	"github.com/automoto/menukit/tiledmenu"
)

const menuTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="80" height="45" tilewidth="8" tileheight="8" infinite="0" nextlayerid="3" nextobjectid="4">
 <properties>
  <property name="startingFocus" type="int" value="16"/>
  <property name="defaultShader" value="ui"/>
  <property name="defaultInactiveShader" value="ui_inactive"/>
 </properties>
 <objectgroup id="1" name="Buttons">
  <object id="1" name="toggle" x="220" y="128" width="200" height="36">
   <properties>
    <property name="buttonID" type="int" value="16"/>
    <property name="textures" value="faces/on, faces/off"/>
    <property name="texturesTouch" value="faces/on_touch"/>
    <property name="texturePressed" value="faces/on_down"/>
    <property name="navUp" value="17"/>
    <property name="navDown" value="17, 16"/>
   </properties>
  </object>
  <object id="2" name="locked" x="220" y="172" width="200" height="36">
   <properties>
    <property name="buttonID" type="int" value="17"/>
    <property name="textures" value="faces/locked"/>
    <property name="shader" value="custom"/>
    <property name="startsActive" type="bool" value="false"/>
    <property name="navUp" value="16"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Images">
  <object id="3" name="spark" x="600" y="8" width="24" height="24">
   <properties>
    <property name="imageID" type="int" value="64"/>
    <property name="textures" value="faces/spark_0,faces/spark_1"/>
    <property name="renderAfterButtons" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="2">
 <properties>
  <property name="startingFocus" type="int" value="20"/>
 </properties>
 <objectgroup id="1" name="Buttons">
  <object id="1" name="only" x="0" y="0" width="8" height="8">
   <properties>
    <property name="buttonID" type="int" value="20"/>
    <property name="textures" value="faces/only"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func menuFS(t *testing.T, files map[string]string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadParsesMenuDefinition(t *testing.T) {
	t.Parallel()

	fsys := menuFS(t, map[string]string{"menus/main.tmx": menuTMX})

	def, err := tiledmenu.Load(fsys, "menus/main.tmx")
	require.NoError(t, err)

	require.Equal(t, dmath.Vec2{X: 640, Y: 360}, def.CanonicalSize)
	require.Equal(t, gui.ButtonID(16), def.StartingFocus)
	require.Equal(t, "ui", def.DefaultShader)
	require.Equal(t, "ui_inactive", def.DefaultInactiveShader)

	require.Len(t, def.Buttons, 2)

	toggle := def.Buttons[0]
	require.Equal(t, gui.ButtonID(16), toggle.ID)
	require.Equal(t, dmath.Vec2{X: 220, Y: 128}, toggle.Position)
	require.Equal(t, dmath.Vec2{X: 200, Y: 36}, toggle.Size)
	require.Equal(t, []gui.TextureDef{
		{Standard: "faces/on", TouchScreen: "faces/on_touch"},
		{Standard: "faces/off"},
	}, toggle.TextureNormal)
	require.NotNil(t, toggle.TexturePressed)
	require.Equal(t, "faces/on_down", toggle.TexturePressed.Standard)
	require.True(t, toggle.StartsActive)
	require.Equal(t, []gui.ButtonID{17}, toggle.NavUp)
	require.Equal(t, []gui.ButtonID{17, 16}, toggle.NavDown)
	require.Nil(t, toggle.NavLeft)
	require.Nil(t, toggle.NavRight)

	locked := def.Buttons[1]
	require.Equal(t, gui.ButtonID(17), locked.ID)
	require.False(t, locked.StartsActive)
	require.Equal(t, "custom", locked.Shader)
	require.Nil(t, locked.TexturePressed)
	require.Nil(t, locked.NavDown)

	require.Len(t, def.Images, 1)
	spark := def.Images[0]
	require.Equal(t, gui.ButtonID(64), spark.ID)
	require.Equal(t, dmath.Vec2{X: 600, Y: 8}, spark.Position)
	require.Equal(t, dmath.Vec2{X: 24, Y: 24}, spark.Size)
	require.Equal(t, []gui.TextureDef{
		{Standard: "faces/spark_0"},
		{Standard: "faces/spark_1"},
	}, spark.Textures)
	require.True(t, spark.RenderAfterButtons)
}

func TestLoadRejectsZeroHeight(t *testing.T) {
	t.Parallel()

	flat := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="80" height="0" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="1">
</map>
`
	fsys := menuFS(t, map[string]string{"menus/flat.tmx": flat})

	_, err := tiledmenu.Load(fsys, "menus/flat.tmx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "canonical height")
}

func TestLoadRejectsBadNavList(t *testing.T) {
	t.Parallel()

	bad := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="8" tileheight="8" infinite="0" nextlayerid="2" nextobjectid="2">
 <objectgroup id="1" name="Buttons">
  <object id="1" name="broken" x="0" y="0" width="8" height="8">
   <properties>
    <property name="buttonID" type="int" value="16"/>
    <property name="navUp" value="17,teapot"/>
   </properties>
  </object>
 </objectgroup>
</map>
`
	fsys := menuFS(t, map[string]string{"menus/bad.tmx": bad})

	_, err := tiledmenu.Load(fsys, "menus/bad.tmx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "navUp")
	require.Contains(t, err.Error(), "teapot")
}

func TestLoadAllKeysByStemAndSortsNames(t *testing.T) {
	t.Parallel()

	fsys := menuFS(t, map[string]string{
		"menus/pause.tmx": tinyTMX,
		"menus/main.tmx":  menuTMX,
		"menus/notes.txt": "not a menu",
	})

	defs, names, err := tiledmenu.LoadAll(fsys, "menus")
	require.NoError(t, err)

	require.Equal(t, []string{"main", "pause"}, names)
	require.Len(t, defs, 2)
	require.Equal(t, gui.ButtonID(16), defs["main"].StartingFocus)
	require.Equal(t, gui.ButtonID(20), defs["pause"].StartingFocus)
}

func TestLoadAllFailsWithoutMenus(t *testing.T) {
	t.Parallel()

	fsys := menuFS(t, map[string]string{"menus/readme.md": "empty"})

	_, _, err := tiledmenu.LoadAll(fsys, "menus")
	require.Error(t, err)
}

func TestLoadAllSurfacesParseErrors(t *testing.T) {
	t.Parallel()

	fsys := menuFS(t, map[string]string{
		"menus/ok.tmx":     tinyTMX,
		"menus/broken.tmx": "<map",
	})

	_, _, err := tiledmenu.LoadAll(fsys, "menus")
	require.Error(t, err)
}
