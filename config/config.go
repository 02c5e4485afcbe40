package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
)

// UIConfig contains button face and title dimensions for the baked menu
// materials, in canonical menu pixels.
type UIConfig struct {
	ButtonWidth  float64
	ButtonHeight float64
	TitleWidth   float64
	TitleHeight  float64
	SparkSize    float64
	SparkFrames  int

	// Colors
	FaceFill       color.RGBA
	FaceFillDown   color.RGBA
	FaceBorder     color.RGBA
	FaceText       color.RGBA
	FaceTextToggle color.RGBA
	TitleText      color.RGBA

	// Font sizes
	FaceFontSize  float64
	TitleFontSize float64
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	HintColor       color.RGBA
	HintY           float64
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor color.RGBA
}

// PlayerConfig contains movement values for the playground scene
type PlayerConfig struct {
	Acceleration float64
	MaxSpeed     float64
	JumpSpeed    float64
	Friction     float64

	CollisionWidth  float64
	CollisionHeight float64
}

// PhysicsConfig contains physics values for the playground scene
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// ArenaConfig describes the playground layout
type ArenaConfig struct {
	GroundHeight   float64
	PlatformWidth  float64
	PlatformHeight float64
	WallColor      color.RGBA
	PlayerColor    color.RGBA
	BackdropColor  color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the playground
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var UI UIConfig
var Menu MenuConfig
var Pause PauseConfig
var Player PlayerConfig
var Physics PhysicsConfig
var Arena ArenaConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	NightBlue    = color.RGBA{R: 15, G: 25, B: 50, A: 255}
	SlateBlue    = color.RGBA{R: 36, G: 52, B: 96, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// UI Config
	UI = UIConfig{
		ButtonWidth:  200,
		ButtonHeight: 36,
		TitleWidth:   320,
		TitleHeight:  64,
		SparkSize:    24,
		SparkFrames:  4,

		FaceFill:       SlateBlue,
		FaceFillDown:   DarkBlue,
		FaceBorder:     LightBlue,
		FaceText:       White,
		FaceTextToggle: BrightOrange,
		TitleText:      Orange,

		FaceFontSize:  16,
		TitleFontSize: 40,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor: NightBlue,
		HintColor:       DarkBlue,
		HintY:           344,
	}

	// Pause Config
	Pause = PauseConfig{
		OverlayColor: BlackOverlay,
	}

	// Player Config
	Player = PlayerConfig{
		Acceleration:    0.75,
		MaxSpeed:        4.0,
		JumpSpeed:       9.0,
		Friction:        0.5,
		CollisionWidth:  16,
		CollisionHeight: 24,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 9.0,
	}

	// Arena Config
	Arena = ArenaConfig{
		GroundHeight:   24,
		PlatformWidth:  120,
		PlatformHeight: 12,
		WallColor:      DarkBlue,
		PlayerColor:    BrightOrange,
		BackdropColor:  color.RGBA{R: 10, G: 16, B: 32, A: 255},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
