// Package tiledmenu loads menu definitions authored in Tiled. The map's
// pixel size becomes the menu's canonical canvas, and two object groups,
// "Buttons" and "Images", carry the controls. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
package tiledmenu

import (
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/automoto/menukit/gui"
)

// Object group and property names recognized in the TMX file.
//
// Map properties: startingFocus (int), defaultShader, defaultInactiveShader.
// Button objects: buttonID (int), textures / texturesTouch (comma lists),
// texturePressed, texturePressedTouch, shader, inactiveShader,
// startsActive (bool, default true), navUp/navDown/navLeft/navRight
// (comma-separated button IDs).
// Image objects: imageID (int), textures / texturesTouch, shader,
// renderAfterButtons (bool, default false).
const (
	groupButtons = "Buttons"
	groupImages  = "Images"
)

// Load parses one TMX file into a menu definition.
func Load(fsys fs.FS, tmxPath string) (*gui.MenuDef, error) {
	menuMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := menuMap.Width * menuMap.TileWidth
	height := menuMap.Height * menuMap.TileHeight
	if height <= 0 {
		return nil, fmt.Errorf("menu %s: canonical height must be positive, got %d", tmxPath, height)
	}

	def := &gui.MenuDef{
		CanonicalSize:         dmath.Vec2{X: float64(width), Y: float64(height)},
		StartingFocus:         gui.ButtonID(menuMap.Properties.GetInt("startingFocus")),
		DefaultShader:         menuMap.Properties.GetString("defaultShader"),
		DefaultInactiveShader: menuMap.Properties.GetString("defaultInactiveShader"),
	}

	for _, og := range menuMap.ObjectGroups {
		switch og.Name {
		case groupButtons:
			for _, o := range og.Objects {
				button, err := parseButton(o)
				if err != nil {
					return nil, fmt.Errorf("menu %s: %w", tmxPath, err)
				}
				def.Buttons = append(def.Buttons, button)
			}
		case groupImages:
			for _, o := range og.Objects {
				def.Images = append(def.Images, parseImage(o))
			}
		}
	}

	return def, nil
}

// LoadAll discovers every .tmx file in menusDir within fsys and loads each,
// returning definitions keyed by stem name plus the sorted name list.
func LoadAll(fsys fs.FS, menusDir string) (map[string]*gui.MenuDef, []string, error) {
	pattern := menusDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", menusDir)
	}

	menus := make(map[string]*gui.MenuDef, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		def, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		menus[stem] = def
		names = append(names, stem)
	}

	sort.Strings(names)
	return menus, names, nil
}

func parseButton(o *tiled.Object) (gui.ButtonDef, error) {
	id := gui.ButtonID(o.Properties.GetInt("buttonID"))
	if id <= gui.ButtonCancel {
		log.Printf("Warning: button object %q uses reserved ID %d", o.Name, id)
	}

	button := gui.ButtonDef{
		ID:             id,
		Position:       dmath.Vec2{X: o.X, Y: o.Y},
		Size:           dmath.Vec2{X: o.Width, Y: o.Height},
		TextureNormal:  parseTextures(o.Properties.GetString("textures"), o.Properties.GetString("texturesTouch")),
		Shader:         o.Properties.GetString("shader"),
		InactiveShader: o.Properties.GetString("inactiveShader"),
		StartsActive:   boolProp(o, "startsActive", true),
	}

	if pressed := o.Properties.GetString("texturePressed"); pressed != "" {
		button.TexturePressed = &gui.TextureDef{
			Standard:    pressed,
			TouchScreen: o.Properties.GetString("texturePressedTouch"),
		}
	}

	var err error
	if button.NavUp, err = parseIDList(o.Properties.GetString("navUp")); err != nil {
		return button, fmt.Errorf("button %d: navUp: %w", id, err)
	}
	if button.NavDown, err = parseIDList(o.Properties.GetString("navDown")); err != nil {
		return button, fmt.Errorf("button %d: navDown: %w", id, err)
	}
	if button.NavLeft, err = parseIDList(o.Properties.GetString("navLeft")); err != nil {
		return button, fmt.Errorf("button %d: navLeft: %w", id, err)
	}
	if button.NavRight, err = parseIDList(o.Properties.GetString("navRight")); err != nil {
		return button, fmt.Errorf("button %d: navRight: %w", id, err)
	}

	return button, nil
}

func parseImage(o *tiled.Object) gui.ImageDef {
	id := gui.ButtonID(o.Properties.GetInt("imageID"))
	if id <= gui.ButtonCancel {
		log.Printf("Warning: image object %q uses reserved ID %d", o.Name, id)
	}

	return gui.ImageDef{
		ID:                 id,
		Position:           dmath.Vec2{X: o.X, Y: o.Y},
		Size:               dmath.Vec2{X: o.Width, Y: o.Height},
		Textures:           parseTextures(o.Properties.GetString("textures"), o.Properties.GetString("texturesTouch")),
		Shader:             o.Properties.GetString("shader"),
		RenderAfterButtons: boolProp(o, "renderAfterButtons", false),
	}
}

// parseTextures pairs a comma-separated list of standard texture names with
// an optional parallel list of touch variants. A shorter or gappy touch list
// leaves the affected slots without a variant.
func parseTextures(standard, touch string) []gui.TextureDef {
	names := splitList(standard)
	if len(names) == 0 {
		return nil
	}
	touchNames := splitList(touch)

	defs := make([]gui.TextureDef, len(names))
	for i, name := range names {
		defs[i].Standard = name
		if i < len(touchNames) {
			defs[i].TouchScreen = touchNames[i]
		}
	}
	return defs
}

// parseIDList parses a comma-separated list of button IDs, in priority
// order. An empty string yields a nil list.
func parseIDList(s string) ([]gui.ButtonID, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, nil
	}
	ids := make([]gui.ButtonID, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("bad button ID %q: %w", part, err)
		}
		ids = append(ids, gui.ButtonID(n))
	}
	return ids, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// boolProp reads a boolean property with a default for when it is absent.
// Tiled writes booleans as "true"/"false".
func boolProp(o *tiled.Object, name string, def bool) bool {
	switch strings.ToLower(o.Properties.GetString(name)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	default:
		return def
	}
}
