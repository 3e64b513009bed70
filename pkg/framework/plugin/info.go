package plugin

import (
	"github.com/justyntemme/flpgo/pkg/flp"
)

// Info is the plugin descriptor the host reads once at creation. The
// parameter and output counts declared here are fixed for the life of
// the instance.
type Info struct {
	LongName     string // full name, shown in plugin lists
	ShortName    string // name shown in the channel button
	Flags        int    // capability flags (Flag* constants)
	NumParams    int
	DefPoly      int // preferred polyphony, 0 for default/infinite
	NumOutCtrls  int // internal output controllers
	NumOutVoices int // output voices (voice effects)
}

// IsGenerator reports whether the descriptor declares a generator.
func (i Info) IsGenerator() bool {
	return i.Flags&flp.FlagGenerator != 0
}

// InfoBuilder assembles a descriptor with the flag combinations the
// host expects for each plugin kind.
type InfoBuilder struct {
	info Info
}

// NewInfo starts a descriptor for an effect.
func NewInfo(longName, shortName string) *InfoBuilder {
	return &InfoBuilder{info: Info{
		LongName:  longName,
		ShortName: shortName,
		Flags:     flp.FlagNewVoiceParams,
	}}
}

// Generator declares a full standalone generator that receives note
// events and renders its own voices.
func (b *InfoBuilder) Generator() *InfoBuilder {
	b.info.Flags |= flp.FlagGenerator | flp.FlagGetNoteInput
	return b
}

// HybridGenerator declares a generator that streams its voices into
// the host sampler. Hybrids take note input like full generators.
func (b *InfoBuilder) HybridGenerator() *InfoBuilder {
	b.info.Flags |= flp.FlagGenerator | flp.FlagGetNoteInput | flp.FlagUseSampler
	return b
}

// HybridCanRelease marks a hybrid generator that releases its own
// envelope after the voice is stopped.
func (b *InfoBuilder) HybridCanRelease() *InfoBuilder {
	b.info.Flags |= flp.FlagHybridCanRelease
	return b
}

// Visual declares a plugin that never processes audio.
func (b *InfoBuilder) Visual() *InfoBuilder {
	b.info.Flags |= flp.FlagNoProcess
	return b
}

// MIDIOut lets the plugin send MIDI out messages.
func (b *InfoBuilder) MIDIOut() *InfoBuilder {
	b.info.Flags |= flp.FlagMIDIOut
	return b
}

// NoteInput makes the host send note events (generators get this from
// Generator already).
func (b *InfoBuilder) NoteInput() *InfoBuilder {
	b.info.Flags |= flp.FlagGetNoteInput
	return b
}

// WantNewTick asks for a notification before each mixed tick.
func (b *InfoBuilder) WantNewTick() *InfoBuilder {
	b.info.Flags |= flp.FlagWantNewTick
	return b
}

// CantSmartDisable opts out of host smart disabling.
func (b *InfoBuilder) CantSmartDisable() *InfoBuilder {
	b.info.Flags |= flp.FlagCantSmartDisable
	return b
}

// SettingsButton puts a settings button on the plugin titlebar.
func (b *InfoBuilder) SettingsButton() *InfoBuilder {
	b.info.Flags |= flp.FlagWantSettingsButton
	return b
}

// NoWindow shows the editor inside the channel settings window.
func (b *InfoBuilder) NoWindow() *InfoBuilder {
	b.info.Flags |= flp.FlagNoWindow
	return b
}

// Flags ORs extra capability flags in directly.
func (b *InfoBuilder) Flags(flags int) *InfoBuilder {
	b.info.Flags |= flags
	return b
}

// Params declares the parameter count.
func (b *InfoBuilder) Params(n int) *InfoBuilder {
	b.info.NumParams = n
	return b
}

// Poly declares the preferred polyphony.
func (b *InfoBuilder) Poly(n int) *InfoBuilder {
	b.info.DefPoly = n
	return b
}

// OutCtrls declares internal output controllers.
func (b *InfoBuilder) OutCtrls(n int) *InfoBuilder {
	b.info.NumOutCtrls = n
	return b
}

// OutVoices declares output voices.
func (b *InfoBuilder) OutVoices(n int) *InfoBuilder {
	b.info.NumOutVoices = n
	return b
}

// Build returns the descriptor.
func (b *InfoBuilder) Build() Info {
	return b.info
}
