// Package audio synthesizes and plays the short cues the window host emits
// on game events.
package audio

import "math"

// SampleRate is the rate every cue is synthesized at.
const SampleRate = 44100

// Tone describes a decaying sine beep.
type Tone struct {
	Freq     float64
	Duration float64
	Volume   float64
}

var (
	// EatTone plays when the snake grows.
	EatTone = Tone{Freq: 880, Duration: 0.1, Volume: 6000}
	// RecordTone plays when the high score is raised.
	RecordTone = Tone{Freq: 1320, Duration: 0.12, Volume: 6000}
	// OverTone plays when the game ends.
	OverTone = Tone{Freq: 220, Duration: 0.5, Volume: 6000}
)

// PCM renders t as 16-bit little-endian stereo samples.
func (t Tone) PCM() []byte {
	n := int(SampleRate * t.Duration)
	if n < 0 {
		n = 0
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		ts := float64(i) / SampleRate
		envelope := math.Exp(-3 * ts)
		v := int16(math.Sin(2*math.Pi*t.Freq*ts) * t.Volume * envelope)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(v)
			buf[idx+1] = byte(v >> 8)
		}
	}
	return buf
}
