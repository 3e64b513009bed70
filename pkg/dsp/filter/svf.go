// Package filter provides the per-voice filters of a generator. Voices
// are mono until panning, so each voice owns one single-channel filter.
package filter

import "math"

// SVF is a state variable lowpass filter in the zero-delay feedback
// topology. Coefficients may be retuned between samples without
// clicks; host voice levels modulate the cutoff every block.
type SVF struct {
	g float32 // pre-warped frequency coefficient
	k float32 // damping, 1/Q

	s1 float32
	s2 float32
}

// NewSVF creates a filter with neutral state. Set a cutoff before
// processing.
func NewSVF() *SVF {
	return &SVF{}
}

// Reset clears the integrator state, e.g. when a voice is retriggered.
func (f *SVF) Reset() {
	f.s1 = 0
	f.s2 = 0
}

// Set tunes cutoff (Hz) and resonance (Q) for the given sample rate.
func (f *SVF) Set(sampleRate, cutoff, q float64) {
	f.g = float32(math.Tan(math.Pi * cutoff / sampleRate))
	f.k = float32(1 / q)
}

// Lowpass filters one sample.
func (f *SVF) Lowpass(in float32) float32 {
	a1 := 1 / (1 + f.g*(f.g+f.k))
	a2 := f.g * a1
	a3 := f.g * a2

	v3 := in - f.s2
	v1 := a1*f.s1 + a2*v3
	v2 := f.s2 + a2*f.s1 + a3*v3

	f.s1 = 2*v1 - f.s1
	f.s2 = 2*v2 - f.s2
	return v2
}
