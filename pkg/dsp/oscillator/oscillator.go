// Package oscillator generates the periodic waveforms behind generator
// voices.
package oscillator

import "math"

// Wave selects the waveform an oscillator produces.
type Wave int

const (
	Sine Wave = iota
	Saw
	Square
	Triangle
)

// Oscillator is a phase accumulator running at a fixed sample rate.
// Phase lives in [0,1); one voice owns one oscillator.
type Oscillator struct {
	sampleRate float64
	step       float64
	phase      float64
}

// New creates an oscillator at 440 Hz.
func New(sampleRate float64) *Oscillator {
	o := &Oscillator{sampleRate: sampleRate}
	o.SetFrequency(440)
	return o
}

// SetFrequency retunes the oscillator. Safe mid-note; the phase is kept.
func (o *Oscillator) SetFrequency(freq float64) {
	o.step = freq / o.sampleRate
}

// Reset rewinds the phase, so a retriggered voice starts click-free at
// a zero crossing.
func (o *Oscillator) Reset() {
	o.phase = 0
}

// Next produces one sample of the selected waveform in [-1,1] and
// advances the phase.
func (o *Oscillator) Next(w Wave) float32 {
	p := o.phase
	o.phase += o.step
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}

	switch w {
	case Saw:
		return float32(2*p - 1)
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		if p < 0.5 {
			return float32(4*p - 1)
		}
		return float32(3 - 4*p)
	default:
		return float32(math.Sin(2 * math.Pi * p))
	}
}
