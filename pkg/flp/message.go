// Package flp defines the FL Studio plugin ABI vocabulary: the generic
// three-slot message envelope, dispatcher IDs, capability flags and the
// typed views the bridge layers on top of them.
package flp

import (
	"math"
	"unsafe"
)

// IntPtr is the pointer-width signed integer every dispatcher slot is
// carried in (intptr_t on the C side). Go's int matches it on all
// supported platforms.
type IntPtr = int

// Message is the generic command unit used for dispatcher-style calls in
// both directions. The meaning of Index and Value depends entirely on ID;
// the bridge carries all three slots at full pointer width and never
// narrows them.
type Message struct {
	ID    IntPtr
	Index IntPtr
	Value IntPtr
}

// ValuePtr wraps one raw slot so callers can reinterpret it as the type
// the operation's documentation prescribes.
type ValuePtr IntPtr

// Raw returns the slot unchanged.
func (v ValuePtr) Raw() IntPtr { return IntPtr(v) }

// Int returns the slot as a signed integer.
func (v ValuePtr) Int() int { return int(v) }

// Bool reports whether the slot is non-zero.
func (v ValuePtr) Bool() bool { return v != 0 }

// Float32 reinterprets the low 32 bits of the slot as an IEEE float.
func (v ValuePtr) Float32() float32 { return Float32FromRaw(IntPtr(v)) }

// Float64 reinterprets the slot bits as an IEEE double.
func (v ValuePtr) Float64() float64 { return Float64FromRaw(IntPtr(v)) }

// Ptr returns the slot as an opaque pointer. The pointee is host-owned;
// its validity is bounded by the call that supplied it.
func (v ValuePtr) Ptr() unsafe.Pointer { return unsafe.Pointer(uintptr(v)) }

// Float32FromRaw reinterprets the low 32 bits of a slot as a float32.
func Float32FromRaw(raw IntPtr) float32 {
	return math.Float32frombits(uint32(raw))
}

// RawFromFloat32 packs a float32 into a slot, bit-exact.
func RawFromFloat32(f float32) IntPtr {
	return IntPtr(int32(math.Float32bits(f)))
}

// Float64FromRaw reinterprets a slot's bits as a float64.
func Float64FromRaw(raw IntPtr) float64 {
	return math.Float64frombits(uint64(raw))
}

// RawFromFloat64 packs a float64 into a slot, bit-exact.
func RawFromFloat64(f float64) IntPtr {
	return IntPtr(math.Float64bits(f))
}

// RawFromBool packs a bool into a slot.
func RawFromBool(b bool) IntPtr {
	if b {
		return 1
	}
	return 0
}

// RawFromPtr packs a pointer into a slot.
func RawFromPtr(p unsafe.Pointer) IntPtr {
	return IntPtr(uintptr(p))
}
