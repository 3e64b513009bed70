// Package envelope shapes voice amplitude over the note lifecycle:
// trigger starts the attack, release hands over to the release stage,
// and the voice dies when the envelope goes idle.
package envelope

import "math"

// Stage is the segment an envelope is currently in.
type Stage int

const (
	Idle Stage = iota
	Attack
	Decay
	Sustain
	Release
)

// ADSR is a one-pole exponential envelope. Values move toward the
// current stage target; stage ends are snapped so a voice always
// reaches silence in finite time.
type ADSR struct {
	sampleRate float64
	sustain    float64

	attackCoef  float64
	decayCoef   float64
	releaseCoef float64

	stage Stage
	value float64
}

// New creates an envelope with short default times (10 ms attack,
// 100 ms decay, 0.7 sustain, 300 ms release).
func New(sampleRate float64) *ADSR {
	e := &ADSR{sampleRate: sampleRate}
	e.SetADSR(0.01, 0.1, 0.7, 0.3)
	return e
}

// SetADSR sets all segment parameters. Times are seconds, clamped to
// 1 ms so a coefficient never degenerates; sustain is a 0..1 level.
func (e *ADSR) SetADSR(attack, decay, sustain, release float64) {
	e.sustain = math.Max(0, math.Min(1, sustain))
	e.attackCoef = coef(attack, e.sampleRate)
	e.decayCoef = coef(decay, e.sampleRate)
	e.releaseCoef = coef(release, e.sampleRate)
}

func coef(seconds, sampleRate float64) float64 {
	return math.Exp(-1 / (math.Max(0.001, seconds) * sampleRate))
}

// Trigger starts the attack from the current value, so retriggering a
// releasing voice doesn't click.
func (e *ADSR) Trigger() {
	e.stage = Attack
}

// Release moves a sounding envelope into its release stage.
func (e *ADSR) Release() {
	if e.stage != Idle {
		e.stage = Release
	}
}

// Reset silences the envelope immediately.
func (e *ADSR) Reset() {
	e.stage = Idle
	e.value = 0
}

// IsActive reports whether the envelope still produces output.
func (e *ADSR) IsActive() bool {
	return e.stage != Idle
}

// CurrentStage returns the segment the envelope is in.
func (e *ADSR) CurrentStage() Stage {
	return e.stage
}

// Next advances one sample and returns the envelope value in 0..1.
func (e *ADSR) Next() float32 {
	switch e.stage {
	case Attack:
		e.value = 1 + (e.value-1)*e.attackCoef
		if e.value >= 0.999 {
			e.value = 1
			e.stage = Decay
		}
	case Decay:
		e.value = e.sustain + (e.value-e.sustain)*e.decayCoef
		if e.value <= e.sustain+0.001 {
			e.value = e.sustain
			e.stage = Sustain
		}
	case Sustain:
		e.value = e.sustain
	case Release:
		e.value *= e.releaseCoef
		if e.value <= 0.001 {
			e.value = 0
			e.stage = Idle
		}
	}
	return float32(e.value)
}
