package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
	SoundMenuError
	// Playground sounds
	SoundJump
	SoundLand
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
}

// SoundConfig maps sound IDs to synthesized cue names
type SoundConfig struct {
	CueNames          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.75,
		DefaultSFXVol:   1.0,
	}

	Sound = SoundConfig{
		CueNames: map[SoundID]string{
			SoundMenuNavigate: "focus",
			SoundMenuSelect:   "select",
			SoundMenuBack:     "cancel",
			SoundMenuError:    "error",
			SoundJump:         "jump",
			SoundLand:         "land",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuError: 1.25,
		},
	}
}
