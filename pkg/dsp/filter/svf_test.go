package filter

import (
	"math"
	"testing"
)

func TestLowpassPassesDC(t *testing.T) {
	f := NewSVF()
	f.Set(44100, 1000, 0.707)

	var out float32
	for i := 0; i < 2000; i++ {
		out = f.Lowpass(1)
	}
	if math.Abs(float64(out)-1) > 0.01 {
		t.Errorf("settled DC output = %v, want ~1", out)
	}
}

func TestLowpassAttenuatesAboveCutoff(t *testing.T) {
	const rate = 48000
	f := NewSVF()
	f.Set(rate, 500, 0.707)

	// A 12 kHz tone sits several octaves above the 500 Hz cutoff and
	// must come out strongly attenuated.
	var peak float32
	for i := 0; i < 4800; i++ {
		in := float32(math.Sin(2 * math.Pi * 12000 * float64(i) / rate))
		out := f.Lowpass(in)
		if i > 1000 { // skip the transient
			if out < 0 {
				out = -out
			}
			if out > peak {
				peak = out
			}
		}
	}
	if peak > 0.05 {
		t.Errorf("peak above cutoff = %v, want < 0.05", peak)
	}
}

func TestResetClearsState(t *testing.T) {
	f := NewSVF()
	f.Set(44100, 1000, 0.707)
	for i := 0; i < 100; i++ {
		f.Lowpass(1)
	}
	f.Reset()
	if out := f.Lowpass(0); out != 0 {
		t.Errorf("output after Reset = %v, want 0", out)
	}
}
