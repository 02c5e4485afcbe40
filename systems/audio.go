package systems

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/menukit/assets"
	"github.com/automoto/menukit/components"
	cfg "github.com/automoto/menukit/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllCues synthesizes every cue at startup to avoid lag on first
// play. This is especially important for WASM.
func PreloadAllCues() {
	initGlobalAudio()
	globalAudioLoader.PreloadCues()
}

// UpdateAudio processes pending SFX
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}

	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playCue(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playCue(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	name, ok := cfg.Sound.CueNames[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadCue(name)
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMenuMusic starts the looping menu phrase, unless it is already
// playing
func PlayMenuMusic(e *ecs.ECS) {
	initGlobalAudio()

	if globalMusicPlayer != nil {
		return
	}

	player, err := globalAudioLoader.LoadAmbient()
	if err != nil {
		return
	}

	player.SetVolume(globalMusicVolume)
	player.Play()
	globalMusicPlayer = player
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	initGlobalAudio()

	// Get or create audio data for this ECS to queue SFX
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(e *ecs.ECS, volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
