package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// MenusFS holds the Tiled menu definitions under menus/.
//
//go:embed menus
var MenusFS embed.FS

// Manager caches menu materials and shaders by name. Names map to paths in
// the backing filesystem for file-based assets; images built at runtime are
// added under any name with Register. It satisfies both gui.AssetFinder and
// gui.AssetLoader.
type Manager struct {
	fsys      fs.FS
	materials map[string]*ebiten.Image
	shaders   map[string]*ebiten.Shader
}

// NewManager creates an empty manager. fsys backs LoadMaterial and
// LoadShader; pass nil when every asset will be Registered directly.
func NewManager(fsys fs.FS) *Manager {
	return &Manager{
		fsys:      fsys,
		materials: make(map[string]*ebiten.Image),
		shaders:   make(map[string]*ebiten.Shader),
	}
}

// Register stores a ready-made image under name, replacing any previous
// entry.
func (m *Manager) Register(name string, img *ebiten.Image) {
	m.materials[name] = img
}

// RegisterShader stores a compiled shader under name, replacing any
// previous entry.
func (m *Manager) RegisterShader(name string, shader *ebiten.Shader) {
	m.shaders[name] = shader
}

// LoadMaterial reads and decodes the image at name from the backing
// filesystem, caching the result. Loading an already cached name is a
// no-op.
func (m *Manager) LoadMaterial(name string) error {
	if _, ok := m.materials[name]; ok {
		return nil
	}
	if m.fsys == nil {
		return fmt.Errorf("material %s: manager has no backing filesystem", name)
	}

	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return fmt.Errorf("read material %s: %w", name, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode material %s: %w", name, err)
	}

	m.materials[name] = img
	return nil
}

// LoadShader reads and compiles the Kage source at name from the backing
// filesystem, caching the result. Menu shaders are drawn through
// DrawRectShader with the material as Images[0] and must declare a
// `var Highlight float` uniform.
func (m *Manager) LoadShader(name string) error {
	if _, ok := m.shaders[name]; ok {
		return nil
	}
	if m.fsys == nil {
		return fmt.Errorf("shader %s: manager has no backing filesystem", name)
	}

	src, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return fmt.Errorf("read shader %s: %w", name, err)
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile shader %s: %w", name, err)
	}

	m.shaders[name] = shader
	return nil
}

// FindMaterial returns the cached image for name, or nil when it was never
// loaded or registered.
func (m *Manager) FindMaterial(name string) *ebiten.Image {
	return m.materials[name]
}

// FindShader returns the cached shader for name, or nil.
func (m *Manager) FindShader(name string) *ebiten.Shader {
	return m.shaders[name]
}
