package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// MIDIScale is the range of control values the host sends for linked
// controllers (0..65536).
const MIDIScale = 65536

// Parameter is one plugin parameter, addressed by its index.
type Parameter struct {
	Index        int
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64 // normalized
	Flags        flp.ParameterFlags

	// Atomic storage for lock-free access from the mixer thread.
	value uint64

	formatFunc func(float64) string
	parseFunc  func(string) (float64, error)
}

// GetValue returns the current normalized value (0..1).
func (p *Parameter) GetValue() float64 {
	return math.Float64frombits(atomic.LoadUint64(&p.value))
}

// SetValue sets the normalized value, clamped to 0..1.
func (p *Parameter) SetValue(value float64) {
	if value < 0 {
		value = 0
	} else if value > 1 {
		value = 1
	}
	atomic.StoreUint64(&p.value, math.Float64bits(value))
}

// GetPlainValue converts the current normalized value to the plain range.
func (p *Parameter) GetPlainValue() float64 {
	return p.Denormalize(p.GetValue())
}

// SetPlainValue sets the value from the plain range.
func (p *Parameter) SetPlainValue(plain float64) {
	p.SetValue(p.Normalize(plain))
}

// SetFromMIDI sets the value from a linked controller (0..MIDIScale).
func (p *Parameter) SetFromMIDI(raw int) {
	p.SetValue(float64(raw) / MIDIScale)
}

// RawValue is the current value on the controller scale (0..MIDIScale),
// the representation exchanged with the host.
func (p *Parameter) RawValue() int {
	return int(p.GetValue()*MIDIScale + 0.5)
}

// SetRawValue sets the value from the controller scale.
func (p *Parameter) SetRawValue(raw int) {
	p.SetFromMIDI(raw)
}

// SetFormatter sets custom value formatting and parsing.
func (p *Parameter) SetFormatter(format func(float64) string, parse func(string) (float64, error)) {
	p.formatFunc = format
	p.parseFunc = parse
}

// FormatValue renders a normalized value for display, e.g. in the hint
// bar or an event editor.
func (p *Parameter) FormatValue(normalized float64) string {
	plain := p.Denormalize(normalized)
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	if p.Flags&flp.ParamFloat == 0 {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// FormatCurrent renders the current value for display.
func (p *Parameter) FormatCurrent() string {
	return p.FormatValue(p.GetValue())
}

// ParseValue parses a display string back to a normalized value.
func (p *Parameter) ParseValue(str string) (float64, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return 0, err
		}
		return p.Normalize(plain), nil
	}
	plain, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, err
	}
	return p.Normalize(plain), nil
}

// Normalize converts a plain value to normalized (0..1).
func (p *Parameter) Normalize(plain float64) float64 {
	if p.Max <= p.Min {
		return 0
	}
	normalized := (plain - p.Min) / (p.Max - p.Min)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// Denormalize converts a normalized (0..1) value to the plain range.
func (p *Parameter) Denormalize(normalized float64) float64 {
	return p.Min + normalized*(p.Max-p.Min)
}
