package audio

import (
	"encoding/binary"
	"testing"
)

func TestPCMIsStereo16Bit(t *testing.T) {
	buf := EatTone.PCM()
	frames := int(SampleRate * EatTone.Duration)
	if len(buf) != frames*4 {
		t.Fatalf("len = %d, expected %d", len(buf), frames*4)
	}
	for i := 0; i < frames; i += 97 {
		l := binary.LittleEndian.Uint16(buf[i*4:])
		r := binary.LittleEndian.Uint16(buf[i*4+2:])
		if l != r {
			t.Fatalf("frame %d channels differ: %d vs %d", i, l, r)
		}
	}
}

func TestPCMDecaysAndStaysInRange(t *testing.T) {
	tone := Tone{Freq: 440, Duration: 0.5, Volume: 8000}
	buf := tone.PCM()
	peak := func(from, to int) int {
		max := 0
		for i := from; i < to; i++ {
			v := int(int16(binary.LittleEndian.Uint16(buf[i*4:])))
			if v < 0 {
				v = -v
			}
			if v > max {
				max = v
			}
		}
		return max
	}
	frames := len(buf) / 4
	early := peak(0, frames/10)
	late := peak(frames-frames/10, frames)
	if early > 8000 {
		t.Fatalf("peak %d exceeds volume", early)
	}
	if late >= early {
		t.Fatalf("tone does not decay: early %d late %d", early, late)
	}
}

func TestZeroDurationIsSilent(t *testing.T) {
	if got := (Tone{Freq: 440}).PCM(); len(got) != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", len(got))
	}
}
