package param

import (
	"testing"
)

func TestRegistrySizedFromDeclaredCount(t *testing.T) {
	r := NewRegistry(3)

	if r.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", r.Count())
	}

	if err := r.Add(New(0, "A").Build(), New(2, "C").Build()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := r.Get(0); got == nil || got.Name != "A" {
		t.Errorf("Get(0) = %v, want A", got)
	}
	if got := r.Get(1); got != nil {
		t.Errorf("Get(1) = %v, want nil for unset slot", got)
	}
	if got := r.Get(2); got == nil || got.Name != "C" {
		t.Errorf("Get(2) = %v, want C", got)
	}
}

func TestRegistryRejectsOutOfRange(t *testing.T) {
	r := NewRegistry(2)

	if err := r.Add(New(2, "X").Build()); err == nil {
		t.Error("Add with index beyond declared count should fail")
	}
	if err := r.Add(New(-1, "Y").Build()); err == nil {
		t.Error("Add with negative index should fail")
	}
}

func TestRegistryRejectsDoubleRegistration(t *testing.T) {
	r := NewRegistry(1)

	if err := r.Add(New(0, "A").Build()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := r.Add(New(0, "B").Build()); err == nil {
		t.Error("second Add at the same index should fail")
	}
}

func TestRegistryOutOfRangeGet(t *testing.T) {
	r := NewRegistry(1)
	if r.Get(-1) != nil || r.Get(1) != nil {
		t.Error("Get outside the declared range should return nil")
	}
}

func TestParameterMIDIScale(t *testing.T) {
	p := New(0, "Level").Range(0, 100).Default(50).Build()

	p.SetFromMIDI(MIDIScale)
	if p.GetPlainValue() != 100 {
		t.Errorf("full controller value should map to max, got %f", p.GetPlainValue())
	}

	p.SetFromMIDI(0)
	if p.GetPlainValue() != 0 {
		t.Errorf("zero controller value should map to min, got %f", p.GetPlainValue())
	}

	p.SetValue(0.5)
	if p.RawValue() != MIDIScale/2 {
		t.Errorf("RawValue() = %d, want %d", p.RawValue(), MIDIScale/2)
	}
}
