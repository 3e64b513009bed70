// Package plugin holds the descriptor and reusable plumbing plugins
// build on: a parameter registry sized from the descriptor and a state
// manager over it.
package plugin

import (
	"io"
	"math"

	"github.com/justyntemme/flpgo/pkg/flp"
	"github.com/justyntemme/flpgo/pkg/framework/param"
	"github.com/justyntemme/flpgo/pkg/framework/state"
)

// Base ties a descriptor to a parameter registry and state manager.
// Plugins keep one and forward their state and parameter traffic to it.
type Base struct {
	Info   Info
	params *param.Registry
	state  *state.Manager
}

// NewBase creates a base for the descriptor. The registry is sized from
// the declared parameter count.
func NewBase(info Info) *Base {
	b := &Base{
		Info:   info,
		params: param.NewRegistry(info.NumParams),
	}
	b.state = state.NewManager(b.params)
	return b
}

// Parameters returns the parameter registry for configuration.
func (b *Base) Parameters() *param.Registry {
	return b.params
}

// State returns the state manager.
func (b *Base) State() *state.Manager {
	return b.state
}

// SaveState writes the parameter state to w.
func (b *Base) SaveState(w io.Writer) error {
	return b.state.Save(w)
}

// LoadState restores the parameter state from r.
func (b *Base) LoadState(r io.Reader) error {
	return b.state.Load(r)
}

// HandleParam applies one parameter call: updates the value when asked,
// translates controller input to the parameter's range, and returns the
// value on the parameter's plain scale when the flags want one back.
func (b *Base) HandleParam(index, value int, flags flp.ProcessParamFlags) int {
	p := b.params.Get(index)
	if p == nil {
		return 0
	}

	plain := float64(value)
	if flags.Has(flp.ParamFromMIDI) {
		plain = p.Denormalize(float64(value) / param.MIDIScale)
	}
	if flags.Has(flp.ParamUpdateValue) {
		p.SetPlainValue(plain)
	}

	// Controller input wants the translated value back even without an
	// explicit get.
	if flags.Has(flp.ParamGetValue) || flags.Has(flp.ParamFromMIDI) {
		return int(math.Round(p.GetPlainValue()))
	}
	return 0
}

// HintFor renders "Name: value" for the host hint bar.
func (b *Base) HintFor(index int) string {
	p := b.params.Get(index)
	if p == nil {
		return ""
	}
	return p.Name + ": " + p.FormatCurrent()
}

// NameFor answers the parameter name and value-text requests from the
// registry; everything else gets an empty string.
func (b *Base) NameFor(req flp.NameRequest) string {
	switch r := req.(type) {
	case flp.NameOfParam:
		if p := b.params.Get(r.Index); p != nil {
			return p.Name
		}
	case flp.NameOfParamValue:
		if p := b.params.Get(r.Index); p != nil {
			return p.FormatValue(p.Normalize(float64(r.Value)))
		}
	}
	return ""
}
