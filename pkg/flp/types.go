package flp

import "fmt"

// Error is a bridge-level boundary error.
type Error int

const (
	// ErrInvalidBuffer is returned when a nil or empty buffer reaches a
	// boundary call; the host is never touched in that case.
	ErrInvalidBuffer Error = -1
	// ErrInvalidStream is returned for operations on a nil host stream.
	ErrInvalidStream Error = -2
	// ErrShortTransfer is returned when the host moved fewer bytes than
	// requested on a path that requires the full count.
	ErrShortTransfer Error = -3
)

func (e Error) Error() string {
	switch e {
	case ErrInvalidBuffer:
		return "flp: invalid buffer"
	case ErrInvalidStream:
		return "flp: invalid stream"
	case ErrShortTransfer:
		return "flp: short transfer"
	default:
		return "flp: unknown error"
	}
}

// StreamError preserves the host's native result code unchanged so host-side
// diagnostics remain meaningful.
type StreamError struct {
	Code int32
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("flp: host stream error 0x%08X", uint32(e.Code))
}

// HResultEPointer is the code the boundary uses to reject a bad pointer
// before touching host state (E_POINTER).
const HResultEPointer = int32(-0x7FFFBFFD) // 0x80004003

// TimeSignature as unpacked from a PTimeSigInfo value.
type TimeSignature struct {
	StepsPerBar  uint32
	StepsPerBeat uint32
	PPQ          uint32 // pulses per quarter note
}

// SongTime is one host time value (bar:step:tick) for TicksToTime.
type SongTime struct {
	Bar  int32
	Step int32
	Tick int32
}

// MidiMessage is one short MIDI message as packed into a dispatcher slot.
type MidiMessage struct {
	Status byte
	Data1  byte
	Data2  byte
	Port   int32 // -1 if not applicable
}

// MidiMessageFromRaw unpacks a slot-packed MIDI message. The port is not
// part of the packed form.
func MidiMessageFromRaw(raw IntPtr) MidiMessage {
	return MidiMessage{
		Status: byte(raw),
		Data1:  byte(raw >> 8),
		Data2:  byte(raw >> 16),
		Port:   -1,
	}
}

// Raw packs the message back into slot form (port is dropped).
func (m MidiMessage) Raw() IntPtr {
	return IntPtr(m.Status) | IntPtr(m.Data1)<<8 | IntPtr(m.Data2)<<16
}

// Note is one piano-roll note for AddToPianoRoll.
type Note struct {
	Position int32 // position in PPQ
	Length   int32 // length in PPQ
	Number   uint8 // semitone
	Color    uint8 // 0..15, maps to MIDI channel
	Velocity uint8 // 0..127
	Pan      int8  // -64..64
}
