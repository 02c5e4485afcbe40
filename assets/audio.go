package assets

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Cue names for the menu and playground feedback sounds.
const (
	CueFocus  = "focus"
	CueSelect = "select"
	CueCancel = "cancel"
	CueError  = "error"
	CueJump   = "jump"
	CueLand   = "land"
)

// AudioLoader synthesizes and caches the short feedback cues the menus
// play. Cues are 16-bit little endian stereo PCM at the context rate,
// built once and handed to a fresh player per play so overlapping cues do
// not cut each other off.
type AudioLoader struct {
	cueCache map[string][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		cueCache: make(map[string][]byte),
		context:  ctx,
	}
}

// note is one segment of a synthesized cue.
type note struct {
	freq float64 // Hz, 0 for silence
	dur  float64 // seconds
	gain float64 // 0..1
}

// PreloadCues builds every cue up front so the first play has no
// synthesis lag.
func (l *AudioLoader) PreloadCues() {
	l.cueCache[CueFocus] = l.synth([]note{
		{freq: 660, dur: 0.045, gain: 0.20},
	})
	l.cueCache[CueSelect] = l.synth([]note{
		{freq: 523.25, dur: 0.06, gain: 0.25},
		{freq: 783.99, dur: 0.09, gain: 0.25},
	})
	l.cueCache[CueCancel] = l.synth([]note{
		{freq: 392.00, dur: 0.06, gain: 0.22},
		{freq: 261.63, dur: 0.08, gain: 0.22},
	})
	l.cueCache[CueError] = l.synth([]note{
		{freq: 220, dur: 0.05, gain: 0.25},
		{freq: 0, dur: 0.02, gain: 0},
		{freq: 165, dur: 0.09, gain: 0.25},
	})
	l.cueCache[CueJump] = l.synth([]note{
		{freq: 440, dur: 0.03, gain: 0.18},
		{freq: 587.33, dur: 0.05, gain: 0.18},
	})
	l.cueCache[CueLand] = l.synth([]note{
		{freq: 110, dur: 0.05, gain: 0.28},
	})
}

// LoadCue returns a new player for the named cue, synthesizing and caching
// it on first use. Unknown names fall back to the error cue shape.
func (l *AudioLoader) LoadCue(name string) (*audio.Player, error) {
	if cached, ok := l.cueCache[name]; ok {
		return l.context.NewPlayer(bytes.NewReader(cached))
	}

	l.PreloadCues()
	cached, ok := l.cueCache[name]
	if !ok {
		cached = l.cueCache[CueError]
	}
	return l.context.NewPlayer(bytes.NewReader(cached))
}

// LoadAmbient returns a looping player for the menu background phrase.
// The phrase streams from a cached buffer through an infinite loop.
func (l *AudioLoader) LoadAmbient() (*audio.Player, error) {
	const name = "ambient"
	pcm, ok := l.cueCache[name]
	if !ok {
		pcm = l.synth([]note{
			{freq: 261.63, dur: 0.50, gain: 0.05},
			{freq: 329.63, dur: 0.50, gain: 0.05},
			{freq: 392.00, dur: 0.50, gain: 0.05},
			{freq: 329.63, dur: 0.50, gain: 0.05},
		})
		l.cueCache[name] = pcm
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	return l.context.NewPlayer(loop)
}

// synth renders a note sequence as interleaved stereo int16 samples. Each
// note gets a short linear fade at both edges to avoid clicks.
func (l *AudioLoader) synth(notes []note) []byte {
	rate := float64(l.context.SampleRate())
	var buf bytes.Buffer

	for _, n := range notes {
		total := int(n.dur * rate)
		fade := int(0.004 * rate)
		if fade*2 > total {
			fade = total / 2
		}

		for i := 0; i < total; i++ {
			env := 1.0
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i >= total-fade {
				env = float64(total-i) / float64(fade)
			}

			v := 0.0
			if n.freq > 0 {
				t := float64(i) / rate
				v = math.Sin(2*math.Pi*n.freq*t) * n.gain * env
			}
			s := int16(v * math.MaxInt16)

			buf.WriteByte(byte(s))
			buf.WriteByte(byte(s >> 8))
			buf.WriteByte(byte(s))
			buf.WriteByte(byte(s >> 8))
		}
	}

	return buf.Bytes()
}
