package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Built-in shader names. Menu definitions reference shaders by these names
// unless they bring their own.
const (
	ShaderUI         = "ui"
	ShaderUIInactive = "ui_inactive"
)

var builtinShaders = map[string]string{
	ShaderUI:         "shaders/ui.kage",
	ShaderUIInactive: "shaders/ui_inactive.kage",
}

// RegisterBuiltinShaders compiles the embedded menu shaders and registers
// them with the manager.
func RegisterBuiltinShaders(m *Manager) error {
	for name, path := range builtinShaders {
		src, err := shaderFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read shader %s: %w", path, err)
		}
		shader, err := ebiten.NewShader(src)
		if err != nil {
			return fmt.Errorf("compile shader %s: %w", path, err)
		}
		m.RegisterShader(name, shader)
	}
	return nil
}
