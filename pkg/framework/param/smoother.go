package param

import "math"

// settleDecay is ln(1000): a slew is within -60 dB of its step after
// settleDecay time constants, the point where it stops being audible.
const settleDecay = 6.908

// snapThreshold ends a slew once the remaining distance is inaudible.
const snapThreshold = 1e-4

// Smoother slews a value toward its target with a one-pole filter so
// host parameter edits don't step audibly mid-block. Call Next once
// per sample from the render path.
type Smoother struct {
	coef    float64
	current float64
	target  float64
	moving  bool
}

// NewSmoother creates a smoother with the given one-pole coefficient.
// Closer to 1 is slower; CoefForTime derives one from a settle time.
func NewSmoother(coef float64) *Smoother {
	return &Smoother{coef: coef}
}

// CoefForTime returns the coefficient that settles a step within
// -60 dB in ms milliseconds at the given sample rate.
func CoefForTime(sampleRate, ms float64) float64 {
	if sampleRate <= 0 || ms <= 0 {
		return 0
	}
	return math.Exp(-settleDecay / (sampleRate * ms / 1000))
}

// SetCoef replaces the slew coefficient.
func (s *Smoother) SetCoef(coef float64) {
	s.coef = coef
}

// SetTarget starts a slew toward value.
func (s *Smoother) SetTarget(value float64) {
	if value == s.target {
		return
	}
	s.target = value
	s.moving = true
}

// Snap jumps to value with no slew.
func (s *Smoother) Snap(value float64) {
	s.current = value
	s.target = value
	s.moving = false
}

// Next advances one sample and returns the smoothed value.
func (s *Smoother) Next() float64 {
	if !s.moving {
		return s.current
	}
	s.current += (s.target - s.current) * (1 - s.coef)
	if math.Abs(s.target-s.current) < snapThreshold {
		s.current = s.target
		s.moving = false
	}
	return s.current
}

// IsSmoothing reports whether the value is still slewing.
func (s *Smoother) IsSmoothing() bool {
	return s.moving
}

// SmoothedParameter pairs a Parameter with a Smoother so the render
// path reads a de-zippered plain value while the host sees the stored
// one.
type SmoothedParameter struct {
	*Parameter
	smoother *Smoother
	enabled  bool
}

// NewSmoothedParameter wraps param, starting the smoother at the
// parameter's current plain value.
func NewSmoothedParameter(param *Parameter, coef float64) *SmoothedParameter {
	sp := &SmoothedParameter{
		Parameter: param,
		smoother:  NewSmoother(coef),
		enabled:   true,
	}
	sp.smoother.Snap(param.GetPlainValue())
	return sp
}

// SetValue stores the normalized value and retargets the slew at the
// resulting plain value.
func (sp *SmoothedParameter) SetValue(value float64) {
	sp.Parameter.SetValue(value)
	if sp.enabled {
		sp.smoother.SetTarget(sp.GetPlainValue())
	} else {
		sp.smoother.Snap(sp.GetPlainValue())
	}
}

// GetSmoothedValue advances the slew one sample and returns the plain
// value the render path should use.
func (sp *SmoothedParameter) GetSmoothedValue() float64 {
	if sp.enabled {
		return sp.smoother.Next()
	}
	return sp.GetPlainValue()
}

// SetSmoothing enables or disables the slew. Disabling snaps to the
// current plain value, so toggling off and on flushes a pending slew.
func (sp *SmoothedParameter) SetSmoothing(enabled bool) {
	sp.enabled = enabled
	if !enabled {
		sp.smoother.Snap(sp.GetPlainValue())
	}
}

// UpdateSampleRate rederives the slew coefficient for a settle time of
// ms milliseconds at the new rate.
func (sp *SmoothedParameter) UpdateSampleRate(sampleRate, ms float64) {
	sp.smoother.SetCoef(CoefForTime(sampleRate, ms))
}

// ParameterSmoother holds the smoothed parameters of a plugin, keyed
// by parameter index.
type ParameterSmoother struct {
	smoothers map[int]*SmoothedParameter
}

func NewParameterSmoother() *ParameterSmoother {
	return &ParameterSmoother{smoothers: make(map[int]*SmoothedParameter)}
}

// Add registers a parameter for smoothing under its index.
func (ps *ParameterSmoother) Add(id int, param *Parameter, coef float64) {
	ps.smoothers[id] = NewSmoothedParameter(param, coef)
}

// Get returns the smoothed parameter for direct access.
func (ps *ParameterSmoother) Get(id int) (*SmoothedParameter, bool) {
	sp, ok := ps.smoothers[id]
	return sp, ok
}

// GetSmoothed advances and returns the smoothed plain value, or 0 for
// an unknown index.
func (ps *ParameterSmoother) GetSmoothed(id int) float64 {
	if sp, ok := ps.smoothers[id]; ok {
		return sp.GetSmoothedValue()
	}
	return 0
}

// SetValue sets the normalized value of a registered parameter.
func (ps *ParameterSmoother) SetValue(id int, value float64) {
	if sp, ok := ps.smoothers[id]; ok {
		sp.SetValue(value)
	}
}
