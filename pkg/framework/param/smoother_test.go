package param

import (
	"math"
	"testing"
)

func TestSmootherSlew(t *testing.T) {
	s := NewSmoother(0.9)
	s.Snap(0)
	s.SetTarget(1)

	prev := 0.0
	for i := 0; i < 50; i++ {
		v := s.Next()
		if v <= prev || v > 1 {
			t.Fatalf("sample %d: value %f not rising toward target", i, v)
		}
		prev = v
	}

	for i := 0; i < 200; i++ {
		s.Next()
	}
	if s.IsSmoothing() {
		t.Error("slew never settled")
	}
	if s.Next() != 1 {
		t.Error("settled value is not the target")
	}
}

func TestSmootherSnap(t *testing.T) {
	s := NewSmoother(0.999)
	s.SetTarget(1)
	s.Next()
	s.Snap(0.25)

	if s.IsSmoothing() {
		t.Error("snap left the smoother slewing")
	}
	if s.Next() != 0.25 {
		t.Error("snap did not take effect")
	}
}

func TestCoefForTime(t *testing.T) {
	fast := CoefForTime(48000, 1)
	slow := CoefForTime(48000, 100)
	if fast <= 0 || fast >= 1 || slow <= 0 || slow >= 1 {
		t.Fatalf("coefficients out of range: %f, %f", fast, slow)
	}
	if slow <= fast {
		t.Error("longer settle time should give a larger coefficient")
	}
	if CoefForTime(0, 10) != 0 || CoefForTime(48000, 0) != 0 {
		t.Error("degenerate inputs should disable the slew")
	}
}

func TestSmoothedParameterSlew(t *testing.T) {
	p := &Parameter{Index: 1, Name: "Level", Min: 0, Max: 1, DefaultValue: 0.5}
	p.SetValue(0.5)

	sp := NewSmoothedParameter(p, 0.9)
	sp.SetValue(1)

	prev := 0.5
	for i := 0; i < 10; i++ {
		v := sp.GetSmoothedValue()
		if v <= prev {
			t.Fatalf("sample %d: value %f not rising", i, v)
		}
		prev = v
	}
	if sp.GetValue() != 1 {
		t.Error("stored normalized value should follow the edit immediately")
	}
}

func TestSmoothedParameterDisabled(t *testing.T) {
	p := &Parameter{Index: 1, Name: "Level", Min: 0, Max: 1, DefaultValue: 0.5}
	p.SetValue(0.5)

	sp := NewSmoothedParameter(p, 0.999)
	sp.SetSmoothing(false)
	sp.SetValue(1)

	if sp.GetSmoothedValue() != 1 {
		t.Error("disabled smoother should pass edits through")
	}
}

func TestSmoothedParameterUpdateSampleRate(t *testing.T) {
	p := &Parameter{Index: 1, Name: "Level", Min: 0, Max: 1}
	sp := NewSmoothedParameter(p, 0.9)

	sp.UpdateSampleRate(48000, 10)
	want := CoefForTime(48000, 10)
	if math.Abs(sp.smoother.coef-want) > 1e-12 {
		t.Errorf("coefficient %f, want %f", sp.smoother.coef, want)
	}
}

func TestParameterSmoother(t *testing.T) {
	ps := NewParameterSmoother()

	p := &Parameter{Index: 1, Name: "Level", Min: 0, Max: 1}
	p.SetValue(0)
	ps.Add(1, p, 0.9)

	ps.SetValue(1, 1)
	v := ps.GetSmoothed(1)
	if v <= 0 || v >= 1 {
		t.Errorf("expected a value mid-slew, got %f", v)
	}

	if ps.GetSmoothed(99) != 0 {
		t.Error("unknown index should read as 0")
	}
}
