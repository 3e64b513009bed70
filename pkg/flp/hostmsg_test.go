package flp

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeShowEditor(t *testing.T) {
	var window int
	raw := RawFromPtr(unsafe.Pointer(&window))

	show, ok := DecodeHostMessage(Message{ID: FPDShowEditor, Value: raw}).(ShowEditor)
	require.True(t, ok)
	assert.Equal(t, unsafe.Pointer(&window), show.Window)

	hide, ok := DecodeHostMessage(Message{ID: FPDShowEditor, Value: 1}).(ShowEditor)
	require.True(t, ok)
	assert.Nil(t, hide.Window)
}

func TestDecodeFloatCarriers(t *testing.T) {
	fit, ok := DecodeHostMessage(Message{ID: FPDSetFitTime, Value: RawFromFloat32(4)}).(SetFitTime)
	require.True(t, ok)
	assert.Equal(t, float32(4), fit.Beats)

	spt, ok := DecodeHostMessage(Message{ID: FPDSetSamplesPerTick, Value: RawFromFloat32(91.875)}).(SetSamplesPerTick)
	require.True(t, ok)
	assert.Equal(t, float32(91.875), spt.Samples)
}

func TestDecodeTimeSig(t *testing.T) {
	sig := [3]uint32{4, 4, 96}
	m, ok := DecodeHostMessage(Message{
		ID:    FPDSetTimeSig,
		Value: RawFromPtr(unsafe.Pointer(&sig)),
	}).(SetTimeSig)
	require.True(t, ok)
	assert.Equal(t, TimeSignature{StepsPerBar: 4, StepsPerBeat: 4, PPQ: 96}, m.Sig)
}

func TestDecodeChanSampleChanged(t *testing.T) {
	table := make([]float32, WavetableSize)
	table[0] = 0.5
	m, ok := DecodeHostMessage(Message{
		ID:    FPDChanSampleChanged,
		Value: RawFromPtr(unsafe.Pointer(&table[0])),
	}).(ChanSampleChanged)
	require.True(t, ok)
	require.Len(t, m.Samples, WavetableSize)
	assert.Equal(t, float32(0.5), m.Samples[0])
}

func TestDecodeLoadFile(t *testing.T) {
	path := append([]byte("C:\\loops\\beat.wav"), 0)
	m, ok := DecodeHostMessage(Message{
		ID:    FPDLoadFile,
		Value: RawFromPtr(unsafe.Pointer(&path[0])),
	}).(LoadFile)
	require.True(t, ok)
	assert.Equal(t, "C:\\loops\\beat.wav", m.Path)
}

func TestDecodeUnknownKeepsSlots(t *testing.T) {
	in := Message{ID: 9999, Index: 7, Value: 13}
	m, ok := DecodeHostMessage(in).(Unknown)
	require.True(t, ok)
	assert.Equal(t, in, m.Msg)
}

func TestDecodeEvent(t *testing.T) {
	tempo, ok := DecodeEvent(0, RawFromFloat32(140), 91).(Tempo)
	require.True(t, ok)
	assert.Equal(t, float32(140), tempo.BPM)
	assert.Equal(t, uint32(91), tempo.SamplesPerTick)

	vol, ok := DecodeEvent(3, 100, RawFromFloat32(0.8)).(MIDIVol)
	require.True(t, ok)
	assert.Equal(t, uint8(100), vol.Value)
	assert.Equal(t, float32(0.8), vol.Volume)

	pan, ok := DecodeEvent(2, 64, -32).(MIDIPan)
	require.True(t, ok)
	assert.Equal(t, uint8(64), pan.Value)
	assert.Equal(t, int8(-32), pan.Pan)
}

func TestDecodeNameRequest(t *testing.T) {
	pv, ok := DecodeNameRequest(FPNParamValue, 2, 500).(NameOfParamValue)
	assert.True(t, ok)
	assert.Equal(t, NameOfParamValue{Index: 2, Value: 500}, pv)

	st, ok := DecodeNameRequest(FPNSemitone, 60, 0).(NameOfSemitone)
	assert.True(t, ok)
	assert.Equal(t, NameOfSemitone{Note: 60}, st)

	assert.Nil(t, DecodeNameRequest(99, 0, 0))
}
