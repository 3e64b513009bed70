package flp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32RoundTrip(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 140.25, float32(math.Inf(1)), math.MaxFloat32} {
		raw := RawFromFloat32(f)
		assert.Equal(t, f, Float32FromRaw(raw), "float32 %v", f)
	}
}

func TestFloat32NegativeSignExtension(t *testing.T) {
	// the slot is signed; negative floats must survive the round trip
	raw := RawFromFloat32(-0.25)
	assert.Equal(t, float32(-0.25), Float32FromRaw(raw))
	assert.Equal(t, float32(-0.25), ValuePtr(raw).Float32())
}

func TestFloat64RoundTrip(t *testing.T) {
	for _, f := range []float64{0, 1, -1, 123.456, math.Pi} {
		raw := RawFromFloat64(f)
		assert.Equal(t, f, Float64FromRaw(raw), "float64 %v", f)
	}
}

func TestValuePtrViews(t *testing.T) {
	v := ValuePtr(42)
	assert.Equal(t, 42, v.Int())
	assert.Equal(t, 42, v.Raw())
	assert.True(t, v.Bool())
	assert.False(t, ValuePtr(0).Bool())
}

func TestMidiMessagePacking(t *testing.T) {
	m := MidiMessageFromRaw(0x40_3C_90)
	assert.Equal(t, byte(0x90), m.Status)
	assert.Equal(t, byte(0x3C), m.Data1)
	assert.Equal(t, byte(0x40), m.Data2)
	assert.Equal(t, int32(-1), m.Port)
	assert.Equal(t, IntPtr(0x40_3C_90), m.Raw())
}
