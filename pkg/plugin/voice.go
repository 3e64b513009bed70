package plugin

import "github.com/justyntemme/flpgo/pkg/flp"

// LevelParams are per-voice levels. All values can go outside their
// nominal range.
type LevelParams struct {
	Pan   float32 // -1..1
	Vol   float32 // 0..1
	Pitch float32 // cents, semitone = Pitch/100
	FCut  float32 // 0..1
	FRes  float32 // 0..1
}

// VoiceParams carry the levels of a voice being triggered: the voice's own
// levels and the final ones with the parent channel applied.
type VoiceParams struct {
	InitLevels  LevelParams
	FinalLevels LevelParams
}

// VoiceHandle identifies one live voice on the wire. It is either a small
// index or a memory address, and must be unique among live voices of the
// instance (the semitone number alone is not enough).
type VoiceHandle struct {
	kind voiceKind
	raw  flp.IntPtr
}

type voiceKind uint8

const (
	voiceNone voiceKind = iota
	voiceIndex
	voiceAddress
)

// IndexVoice makes a handle from a plugin-chosen index.
func IndexVoice(index int) VoiceHandle {
	return VoiceHandle{kind: voiceIndex, raw: index}
}

// AddressVoice makes a handle from a stable address-sized value.
func AddressVoice(addr uintptr) VoiceHandle {
	return VoiceHandle{kind: voiceAddress, raw: flp.IntPtr(addr)}
}

// NoVoice is the zero handle; it encodes the host's FVH_Null.
var NoVoice = VoiceHandle{}

// IsZero reports whether the handle is empty.
func (h VoiceHandle) IsZero() bool { return h.kind == voiceNone }

// Index returns the handle's index and whether it is index-kind.
func (h VoiceHandle) Index() (int, bool) { return h.raw, h.kind == voiceIndex }

// Address returns the handle's address and whether it is address-kind.
func (h VoiceHandle) Address() (uintptr, bool) {
	return uintptr(h.raw), h.kind == voiceAddress
}

// Raw is the wire form. Zero handles travel as FVH_Null.
func (h VoiceHandle) Raw() flp.IntPtr {
	if h.kind == voiceNone {
		return flp.VoiceHandleNull
	}
	return h.raw
}

// VoiceHandler receives the host-driven voice lifecycle of a generator.
type VoiceHandler interface {
	// Trigger starts a voice and returns its handle. tag is the host's
	// reference for the voice, to be passed to Host voice calls.
	Trigger(params VoiceParams, tag int) VoiceHandle
	// Release enters the voice's release stage. The voice stays alive
	// until Kill.
	Release(h VoiceHandle)
	// Kill ends the voice; its handle is dead afterwards.
	Kill(h VoiceHandle)
	// OnEvent handles a voice event; query answers go in the result.
	OnEvent(h VoiceHandle, ev flp.VoiceEvent) Result
	// Render writes up to len(dst) frames of the voice for the host
	// sampler (hybrid generators) and returns the frames written.
	Render(h VoiceHandle, dst [][2]float32) (int, error)
}

// OutVoiceHandler receives output-voice notifications (voice effects).
type OutVoiceHandler interface {
	OnEvent(h VoiceHandle, ev flp.VoiceEvent) Result
	Kill(h VoiceHandle)
}

// voiceTable maps wire handles to tagged handles for one instance. A
// handle is inserted at trigger and forgotten at kill, exactly once.
// Calls arrive on GUI and mixer threads; the host serializes the voice
// lifecycle so no lock is held here.
type voiceTable struct {
	live map[flp.IntPtr]VoiceHandle
}

func newVoiceTable() *voiceTable {
	return &voiceTable{live: make(map[flp.IntPtr]VoiceHandle)}
}

func (t *voiceTable) insert(h VoiceHandle) {
	if !h.IsZero() {
		t.live[h.Raw()] = h
	}
}

func (t *voiceTable) lookup(raw flp.IntPtr) (VoiceHandle, bool) {
	h, ok := t.live[raw]
	return h, ok
}

func (t *voiceTable) forget(raw flp.IntPtr) (VoiceHandle, bool) {
	h, ok := t.live[raw]
	if ok {
		delete(t.live, raw)
	}
	return h, ok
}
