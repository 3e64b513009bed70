// Package plugin is the host-facing wrapper: it adapts a Go Plugin
// implementation to the C plugin class the host drives, and exposes the
// host's own services back to the plugin through Host.
package plugin

import (
	"io"

	"github.com/justyntemme/flpgo/pkg/flp"
	fwplugin "github.com/justyntemme/flpgo/pkg/framework/plugin"
)

// Plugin is the interface users implement. Every method maps to one slot
// of the host-facing plugin class; the wrapper forwards calls 1:1 in
// arrival order and passes results through uninterpreted.
//
// Thread notes follow the host model: Render, RenderGen, Tick and voice
// calls can arrive on the mixer thread, MIDITick and LoopIn on the MIDI
// sync thread, everything else on the GUI thread unless marked otherwise.
// The wrapper adds no synchronization of its own.
type Plugin interface {
	// Info returns the descriptor shared by all instances of the plugin.
	Info() fwplugin.Info

	// SaveState writes the plugin state. The host guarantees exclusion
	// with rendering for the duration of the call.
	SaveState(w io.Writer) error
	// LoadState reads state previously written by SaveState.
	LoadState(r io.Reader) error

	// OnMessage handles everything without a specialized method. Can be
	// called from GUI or mixer threads.
	OnMessage(msg flp.HostMessage) Result

	// NameOf answers text requests. Results longer than 255 bytes are
	// truncated to fit the host buffer.
	NameOf(req flp.NameRequest) string

	// ProcessEvent handles channel events. Can arrive on the mixer thread.
	ProcessEvent(ev flp.Event)
	// ProcessParam is the single entry for parameter changes, reads and
	// hint requests; flags say which. The returned value is only used
	// when flags ask for one.
	ProcessParam(index int, value flp.ValuePtr, flags flp.ProcessParamFlags) Result

	// Idle is called periodically on the GUI thread.
	Idle()
	// Tick is called before each tick is mixed (see FlagWantNewTick).
	Tick()
	// MIDITick is called when a tick is played, on the MIDI sync thread.
	MIDITick()

	// Render processes audio as an effect. src and dst may alias; dst has
	// final length. No allocation, blocking or host locking in here.
	Render(src, dst [][2]float32)
	// RenderGen produces audio as a generator into dst and returns the
	// number of frames actually written, which may be less than len(dst).
	RenderGen(dst [][2]float32) int

	// MIDIIn previews a MIDI input message. Set msg.Status fields as
	// needed; call msg.Kill to suppress the message.
	MIDIIn(msg *MIDIInput)
	// LoopIn receives buffered messages the plugin sent to itself
	// (see Host.LoopOut). MIDI sync thread.
	LoopIn(msg flp.ValuePtr)

	// Voices returns the handler for host-triggered voices, or nil when
	// the plugin is not a generator.
	Voices() VoiceHandler
	// OutVoices returns the handler for output voices, or nil unless the
	// plugin is a voice effect.
	OutVoices() OutVoiceHandler
}

// Result is what message and parameter handlers answer with. It is packed
// into the address-sized dispatcher result slot.
type Result interface {
	raw(c stringCarrier) flp.IntPtr
}

// IntResult answers with a plain integer.
type IntResult int

// BoolResult answers with 0 or 1.
type BoolResult bool

// FloatResult answers with raw float bits.
type FloatResult float32

// StrResult answers with a string; the wrapper hands the host a C copy it
// keeps alive until the next string result of the same instance.
type StrResult string

// NoResult answers 0.
type NoResult struct{}

func (r IntResult) raw(stringCarrier) flp.IntPtr   { return flp.IntPtr(r) }
func (r BoolResult) raw(stringCarrier) flp.IntPtr  { return flp.RawFromBool(bool(r)) }
func (r FloatResult) raw(stringCarrier) flp.IntPtr { return flp.RawFromFloat32(float32(r)) }
func (NoResult) raw(stringCarrier) flp.IntPtr      { return 0 }
func (r StrResult) raw(c stringCarrier) flp.IntPtr { return c.carry(string(r)) }

// stringCarrier moves a string result across the boundary and owns the
// transferred copy until the next carry.
type stringCarrier interface {
	carry(s string) flp.IntPtr
}

// MIDIInput is one live MIDI input message, writable so the plugin can
// modify or kill it before the host passes it on.
type MIDIInput struct {
	Msg    flp.MidiMessage
	killed bool
}

// Kill suppresses the message.
func (m *MIDIInput) Kill() { m.killed = true }

// Base provides no-op defaults for everything but Info, so plugins only
// implement what they use.
type Base struct{}

func (Base) SaveState(io.Writer) error                                    { return nil }
func (Base) LoadState(io.Reader) error                                    { return nil }
func (Base) OnMessage(flp.HostMessage) Result                             { return NoResult{} }
func (Base) NameOf(flp.NameRequest) string                                { return "" }
func (Base) ProcessEvent(flp.Event)                                       {}
func (Base) ProcessParam(int, flp.ValuePtr, flp.ProcessParamFlags) Result { return NoResult{} }
func (Base) Idle()                                                        {}
func (Base) Tick()                                                        {}
func (Base) MIDITick()                                                    {}
func (Base) Render(src, dst [][2]float32)                                 { copy(dst, src) }
func (Base) RenderGen(dst [][2]float32) int                               { return len(dst) }
func (Base) MIDIIn(*MIDIInput)                                            {}
func (Base) LoopIn(flp.ValuePtr)                                          {}
func (Base) Voices() VoiceHandler                                         { return nil }
func (Base) OutVoices() OutVoiceHandler                                   { return nil }
