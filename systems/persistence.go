package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicOn         bool `json:"musicOn"`
	SoundOn         bool `json:"soundOn"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "menukit",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		MusicOn:         s.MusicOn,
		SoundOn:         s.SoundOn,
		ResolutionIndex: s.ResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettings copies loaded settings into the Settings component and
// applies them to the audio systems and the window.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	settings := GetOrCreateSettings(e)
	if saved != nil {
		settings.MusicOn = saved.MusicOn
		settings.SoundOn = saved.SoundOn
		if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			settings.ResolutionIndex = saved.ResolutionIndex
		}
	}
	ApplySettings(e, settings)
}

// ApplySettings pushes the Settings component state out to the audio
// systems and the window.
func ApplySettings(e *ecs.ECS, settings *components.SettingsData) {
	if settings.SoundOn {
		SetSFXVolume(e, cfg.Audio.DefaultSFXVol)
	} else {
		SetSFXVolume(e, 0)
	}

	if settings.MusicOn {
		SetMusicVolume(e, cfg.Audio.DefaultMusicVol)
		PlayMenuMusic(e)
	} else {
		StopMusic(e)
	}

	if settings.ResolutionIndex >= 0 && settings.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// with the configured defaults if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			MusicOn:         cfg.SettingsMenu.DefaultMusicOn,
			SoundOn:         cfg.SettingsMenu.DefaultSoundOn,
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}
	return components.Settings.Get(entry)
}
