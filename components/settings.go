package components

import "github.com/yohamta/donburi"

// SettingsData stores the persisted user settings (singleton component)
type SettingsData struct {
	MusicOn         bool
	SoundOn         bool
	ResolutionIndex int
}

// Settings is the component type for settings state
var Settings = donburi.NewComponentType[SettingsData]()
