// Package gui drives in-game menus: focus navigation from logical inputs,
// pointer-triggered buttons, and a per-frame queue of selection events that
// game logic polls.
//
// A Menu is strictly frame-stepped and single-goroutine: once per frame call
// AdvanceFrame, then HandleControllerInput for each device that produced
// input, then poll GetRecentSelection. Events not consumed before the next
// AdvanceFrame are discarded.
package gui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// AssetFinder resolves texture and shader names to renderer handles. A nil
// result means the name is not loaded; Setup logs the gap and carries on, so
// a missing asset degrades to an invisible control rather than a crash.
type AssetFinder interface {
	FindMaterial(name string) *ebiten.Image
	FindShader(name string) *ebiten.Shader
}

// AssetLoader is an AssetFinder that can also populate itself, so LoadAssets
// can warm every name a definition references ahead of Setup.
type AssetLoader interface {
	AssetFinder
	LoadMaterial(name string) error
	LoadShader(name string) error
}

// Menu owns one screen's worth of buttons and images, the focus, and the
// selection-event queue. The zero value is an unconfigured menu; Setup
// configures it and may be called again at any time to swap screens.
type Menu struct {
	def     *MenuDef
	buttons []TouchButton
	images  []StaticImage

	focus      ButtonID
	selections []Selection
	configured bool
}

// NewMenu returns an empty, unconfigured menu.
func NewMenu() *Menu {
	return &Menu{focus: ButtonUndefined}
}

// Setup replaces the menu's entire state from def, resolving every texture
// and shader name through assets. Any queued selections are discarded first,
// even when def is nil. A nil def tears the menu down: empty registries,
// focus ButtonUndefined, nothing to render.
//
// Setup is idempotent; calling it again with the same definition rebuilds
// the same state. The definition is borrowed, not copied, and must outlive
// the menu until the next Setup.
func (m *Menu) Setup(def *MenuDef, assets AssetFinder) {
	m.ClearRecentSelections()
	if def == nil {
		m.def = nil
		m.buttons = nil
		m.images = nil
		m.focus = ButtonUndefined
		m.configured = false
		return
	}

	m.def = def
	m.buttons = make([]TouchButton, len(def.Buttons))
	m.images = make([]StaticImage, len(def.Images))
	m.focus = def.StartingFocus
	m.configured = true

	for i := range def.Buttons {
		bd := &def.Buttons[i]
		b := &m.buttons[i]
		b.def = bd
		b.canonicalHeight = def.CanonicalSize.Y

		b.upMaterials = make([]*ebiten.Image, len(bd.TextureNormal))
		for j, tex := range bd.TextureNormal {
			b.upMaterials[j] = assets.FindMaterial(tex.Name())
		}
		if bd.TexturePressed != nil {
			b.downMaterial = assets.FindMaterial(bd.TexturePressed.Name())
		}

		shaderName := bd.Shader
		if shaderName == "" {
			shaderName = def.DefaultShader
		}
		b.shader = assets.FindShader(shaderName)
		if b.shader == nil {
			log.Printf("Warning: menu button %d: shader %q not loaded; menu buttons must name a shader", bd.ID, shaderName)
		}

		inactiveName := bd.InactiveShader
		if inactiveName == "" {
			inactiveName = def.DefaultInactiveShader
		}
		b.inactiveShader = assets.FindShader(inactiveName)

		b.active = bd.StartsActive
		b.visible = true
		b.highlighted = true
		b.startAnimations()
	}

	for i := range def.Images {
		id := &def.Images[i]
		si := &m.images[i]
		si.def = id
		si.canonicalHeight = def.CanonicalSize.Y
		si.visible = true

		si.materials = make([]*ebiten.Image, len(id.Textures))
		for j, tex := range id.Textures {
			si.materials[j] = assets.FindMaterial(tex.Name())
			if si.materials[j] == nil {
				log.Printf("Warning: menu image %d: material %q not loaded", id.ID, tex.Name())
			}
		}

		shaderName := id.Shader
		if shaderName == "" {
			shaderName = def.DefaultShader
		}
		si.shader = assets.FindShader(shaderName)
		if si.shader == nil {
			log.Printf("Warning: menu image %d: shader %q not loaded", id.ID, shaderName)
		}
	}
}

// IsConfigured reports whether the menu currently holds a definition.
func (m *Menu) IsConfigured() bool {
	return m.configured
}

// Def returns the borrowed definition, or nil when unconfigured.
func (m *Menu) Def() *MenuDef {
	return m.def
}

// AdvanceFrame starts a new menu frame: it unconditionally drops whatever
// was left in the selection queue, advances every button against the frame's
// pointer input, re-derives each button's highlight from the focus, and
// queues a selection for every button a pointer triggered. Triggered events
// carry the button's ID if it is active, ButtonInvalidInput otherwise, and
// always ControllerTouch as the source.
//
// Call it exactly once per frame, before HandleControllerInput and before
// polling GetRecentSelection.
func (m *Menu) AdvanceFrame(dt float64, in *InputState, windowSize dmath.Vec2) {
	m.ClearRecentSelections()
	for i := range m.buttons {
		b := &m.buttons[i]
		b.AdvanceFrame(dt, in, windowSize)
		b.highlighted = m.focus == b.ID()

		if b.IsTriggered() {
			id := ButtonInvalidInput
			if b.IsActive() {
				id = b.ID()
			}
			m.push(id, ControllerTouch)
		}
	}
}

// HandleControllerInput navigates and selects from one device's logical
// input bits. If the current focus does not name a registered button the
// whole call is a no-op.
//
// Directional bits are tested in the fixed order Up, Down, Left, Right.
// Every UpdateFocus call can move the focus, so a mask with several
// direction bits navigates step by step, each direction read from the button
// the previous one landed on. The Select bit then queues the possibly
// updated focus (or ButtonInvalidInput when that button is inactive); the
// Cancel bit always queues ButtonCancel regardless of focus.
func (m *Menu) HandleControllerInput(input LogicalInput, controller ControllerID) {
	if m.FindButtonByID(m.focus) == nil {
		return
	}

	if input&InputUp != 0 {
		m.UpdateFocus(m.focusedDef().NavUp)
	}
	if input&InputDown != 0 {
		m.UpdateFocus(m.focusedDef().NavDown)
	}
	if input&InputLeft != 0 {
		m.UpdateFocus(m.focusedDef().NavLeft)
	}
	if input&InputRight != 0 {
		m.UpdateFocus(m.focusedDef().NavRight)
	}

	if input&InputSelect != 0 {
		id := ButtonInvalidInput
		if b := m.FindButtonByID(m.focus); b != nil && b.IsActive() {
			id = m.focus
		}
		m.push(id, controller)
	}
	if input&InputCancel != 0 {
		m.push(ButtonCancel, controller)
	}
}

// focusedDef returns the definition of the focused button. Within
// HandleControllerInput the focus always names a registered button: the
// entry guard checked it and UpdateFocus only ever moves focus to another
// registered one.
func (m *Menu) focusedDef() *ButtonDef {
	return m.FindButtonByID(m.focus).Def()
}

// UpdateFocus moves the focus to the first candidate that names a
// registered, visible button; earlier candidates win. When nothing matches
// (a nil list included) the focus stays where it was and one
// ButtonInvalidInput event is queued with ControllerTouch as the source, so
// callers can play a rejection sound.
func (m *Menu) UpdateFocus(candidates []ButtonID) {
	for _, id := range candidates {
		if dest := m.FindButtonByID(id); dest != nil && dest.IsVisible() {
			m.SetFocus(id)
			return
		}
	}
	m.push(ButtonInvalidInput, ControllerTouch)
}

// GetFocus returns the currently focused button ID, or ButtonUndefined when
// the menu is unconfigured.
func (m *Menu) GetFocus() ButtonID {
	return m.focus
}

// SetFocus moves the focus without validation, the same way a definition's
// starting focus is applied. Setting an ID that is not in the registry
// leaves controller navigation dead until the next SetFocus or Setup.
func (m *Menu) SetFocus(id ButtonID) {
	m.focus = id
}

// FindButtonByID returns the button with the given ID, or nil. The registry
// is scanned linearly in definition order; menus are small and a walk stays
// trivially in sync with Setup.
func (m *Menu) FindButtonByID(id ButtonID) *TouchButton {
	for i := range m.buttons {
		if m.buttons[i].ID() == id {
			return &m.buttons[i]
		}
	}
	return nil
}

// FindImageByID returns the static image with the given ID, or nil.
func (m *Menu) FindImageByID(id ButtonID) *StaticImage {
	for i := range m.images {
		if m.images[i].ID() == id {
			return &m.images[i]
		}
	}
	return nil
}

// Render draws the menu in three passes: images not marked
// render-after-buttons, then every button, then the render-after images.
// Overlays therefore always land on top of the buttons they decorate.
func (m *Menu) Render(dst *ebiten.Image) {
	for i := range m.images {
		if !m.images[i].def.RenderAfterButtons {
			m.images[i].Render(dst)
		}
	}
	for i := range m.buttons {
		m.buttons[i].Render(dst)
	}
	for i := range m.images {
		if m.images[i].def.RenderAfterButtons {
			m.images[i].Render(dst)
		}
	}
}

// LoadAssets walks a definition and asks loader to load every material and
// shader it references, so a later Setup resolves against a warm cache with
// no mid-frame file reads. Individual load failures are logged and skipped;
// Setup copes with whatever is missing.
func LoadAssets(def *MenuDef, loader AssetLoader) {
	if def == nil {
		return
	}
	loadShader(loader, def.DefaultShader)
	loadShader(loader, def.DefaultInactiveShader)

	for i := range def.Buttons {
		bd := &def.Buttons[i]
		for _, tex := range bd.TextureNormal {
			loadMaterial(loader, tex.Name())
		}
		if bd.TexturePressed != nil {
			loadMaterial(loader, bd.TexturePressed.Name())
		}
		loadShader(loader, bd.Shader)
		loadShader(loader, bd.InactiveShader)
	}

	for i := range def.Images {
		id := &def.Images[i]
		for _, tex := range id.Textures {
			loadMaterial(loader, tex.Name())
		}
		loadShader(loader, id.Shader)
	}
}

func loadMaterial(loader AssetLoader, name string) {
	if name == "" {
		return
	}
	if err := loader.LoadMaterial(name); err != nil {
		log.Printf("Warning: load menu material %q: %v", name, err)
	}
}

func loadShader(loader AssetLoader, name string) {
	if name == "" {
		return
	}
	if err := loader.LoadShader(name); err != nil {
		log.Printf("Warning: load menu shader %q: %v", name, err)
	}
}
