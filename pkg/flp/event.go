package flp

// Event is a typed view of one ProcessEvent call (FPE ids).
type Event interface {
	event()
}

// Tempo reports a tempo change together with the average number of samples
// per tick. May arrive on the mixer thread.
type Tempo struct {
	BPM            float32
	SamplesPerTick uint32
}

// MaxPoly sets the maximum polyphony; infinite when <= 0. Only meaningful
// for standalone generators.
type MaxPoly struct {
	Voices int
}

// MIDIPan reports MIDI channel panning for plugins outside the voice
// system. Value is 0..127, Pan -64..64. May arrive on the mixer thread.
type MIDIPan struct {
	Value uint8
	Pan   int8
}

// MIDIVol reports MIDI channel volume 0..127 together with its normalized
// form. May arrive on the mixer thread.
type MIDIVol struct {
	Value  uint8
	Volume float32
}

// MIDIPitch reports MIDI channel pitch in cents, to be translated per the
// current pitch bend range. May arrive on the mixer thread.
type MIDIPitch struct {
	Cents int
}

// UnknownEvent carries an event id this package has no decoding for.
type UnknownEvent struct {
	ID    int
	Value ValuePtr
	Flags ValuePtr
}

func (Tempo) event()        {}
func (MaxPoly) event()      {}
func (MIDIPan) event()      {}
func (MIDIVol) event()      {}
func (MIDIPitch) event()    {}
func (UnknownEvent) event() {}

// DecodeEvent turns a raw ProcessEvent call into its typed form. The C
// signature names the slots (EventID, EventValue, Flags).
func DecodeEvent(id, value, flags int) Event {
	switch id {
	case 0:
		return Tempo{BPM: Float32FromRaw(value), SamplesPerTick: uint32(flags)}
	case 1:
		return MaxPoly{Voices: value}
	case 2:
		return MIDIPan{Value: uint8(value), Pan: int8(flags)}
	case 3:
		return MIDIVol{Value: uint8(value), Volume: Float32FromRaw(flags)}
	case 4:
		return MIDIPitch{Cents: value}
	default:
		return UnknownEvent{ID: id, Value: ValuePtr(value), Flags: ValuePtr(flags)}
	}
}

// VoiceEvent is a typed view of one Voice_ProcessEvent call (FPV ids).
// Queries expect an answer in the dispatcher result slot.
type VoiceEvent interface {
	voiceEvent()
}

// Retrigger retriggers a releasing voice in monophonic mode.
type Retrigger struct{}

// UnknownVoiceEvent carries a voice event this package has no decoding for.
type UnknownVoiceEvent struct {
	ID    int
	Value ValuePtr
	Flags ValuePtr
}

func (Retrigger) voiceEvent()         {}
func (UnknownVoiceEvent) voiceEvent() {}

// DecodeVoiceEvent turns a raw Voice_ProcessEvent call into its typed form.
func DecodeVoiceEvent(id, value, flags int) VoiceEvent {
	switch id {
	case FPVRetrigger:
		return Retrigger{}
	default:
		return UnknownVoiceEvent{ID: id, Value: ValuePtr(value), Flags: ValuePtr(flags)}
	}
}
