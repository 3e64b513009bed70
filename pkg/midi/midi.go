// Package midi translates between the host's packed MIDI messages and
// gomidi messages, and schedules outgoing messages on host ticks.
package midi

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// Decode converts a packed host message to a gomidi message.
func Decode(m flp.MidiMessage) midi.Message {
	raw := []byte{m.Status, m.Data1, m.Data2}
	// Status bytes with a one-byte payload.
	switch m.Status & 0xF0 {
	case 0xC0, 0xD0:
		raw = raw[:2]
	}
	return midi.Message(raw)
}

// Encode packs a gomidi message for the host. Only channel messages of
// up to three bytes fit the packed form; ok is false for the rest
// (SysEx goes through the host's dedicated SysEx path).
func Encode(msg midi.Message, port int) (flp.MidiMessage, bool) {
	raw := msg.Bytes()
	if len(raw) == 0 || len(raw) > 3 || raw[0] >= 0xF0 {
		return flp.MidiMessage{}, false
	}
	out := flp.MidiMessage{Status: raw[0], Port: int32(port)}
	if len(raw) > 1 {
		out.Data1 = raw[1]
	}
	if len(raw) > 2 {
		out.Data2 = raw[2]
	}
	return out, true
}

// NoteOn builds a packed note-on.
func NoteOn(port int, channel, key, velocity uint8) flp.MidiMessage {
	m, _ := Encode(midi.NoteOn(channel, key, velocity), port)
	return m
}

// NoteOff builds a packed note-off.
func NoteOff(port int, channel, key uint8) flp.MidiMessage {
	m, _ := Encode(midi.NoteOff(channel, key), port)
	return m
}

// ControlChange builds a packed control change.
func ControlChange(port int, channel, controller, value uint8) flp.MidiMessage {
	m, _ := Encode(midi.ControlChange(channel, controller, value), port)
	return m
}

// PitchBend builds a packed pitch bend. value is relative, -8192..8191.
func PitchBend(port int, channel uint8, value int16) flp.MidiMessage {
	m, _ := Encode(midi.Pitchbend(channel, value), port)
	return m
}

// ProgramChange builds a packed program change.
func ProgramChange(port int, channel, program uint8) flp.MidiMessage {
	m, _ := Encode(midi.ProgramChange(channel, program), port)
	return m
}

// NoteStart reports a sounding note-on (velocity > 0).
func NoteStart(m flp.MidiMessage) (channel, key, velocity uint8, ok bool) {
	ok = Decode(m).GetNoteStart(&channel, &key, &velocity)
	return
}

// NoteEnd reports a note-off, including note-on with velocity 0.
func NoteEnd(m flp.MidiMessage) (channel, key uint8, ok bool) {
	ok = Decode(m).GetNoteEnd(&channel, &key)
	return
}
