package oscillator

import (
	"math"
	"testing"
)

func TestSinePeriod(t *testing.T) {
	// 100 Hz at 10 kHz gives a 100 sample period; count the upward zero
	// crossings over 10 periods.
	o := New(10000)
	o.SetFrequency(100)

	crossings := 0
	prev := o.Next(Sine)
	for i := 0; i < 1000-1; i++ {
		s := o.Next(Sine)
		if prev < 0 && s >= 0 {
			crossings++
		}
		prev = s
	}
	if crossings != 10 {
		t.Errorf("zero crossings = %d, want 10", crossings)
	}
}

func TestWaveformRanges(t *testing.T) {
	for _, w := range []Wave{Sine, Saw, Square, Triangle} {
		o := New(44100)
		o.SetFrequency(997)
		for i := 0; i < 4096; i++ {
			s := o.Next(w)
			if s < -1 || s > 1 {
				t.Fatalf("wave %d sample %d = %v, outside [-1,1]", w, i, s)
			}
		}
	}
}

func TestSquareSpendsHalfTimeHigh(t *testing.T) {
	o := New(1000)
	o.SetFrequency(10)

	high := 0
	for i := 0; i < 1000; i++ {
		if o.Next(Square) > 0 {
			high++
		}
	}
	if high != 500 {
		t.Errorf("high samples = %d, want 500", high)
	}
}

func TestResetRewindsPhase(t *testing.T) {
	o := New(44100)
	first := o.Next(Saw)
	for i := 0; i < 17; i++ {
		o.Next(Saw)
	}
	o.Reset()
	if got := o.Next(Saw); math.Abs(float64(got-first)) > 1e-6 {
		t.Errorf("sample after Reset = %v, want %v", got, first)
	}
}
