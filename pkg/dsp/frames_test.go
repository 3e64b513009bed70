package dsp

import "testing"

func TestClear(t *testing.T) {
	frames := [][2]float32{{1, 2}, {3, 4}}
	Clear(frames)
	for i, f := range frames {
		if f != ([2]float32{}) {
			t.Errorf("frame %d = %v, want silence", i, f)
		}
	}
}

func TestAddUsesShorterLength(t *testing.T) {
	dst := [][2]float32{{1, 1}, {1, 1}, {1, 1}}
	src := [][2]float32{{0.5, -0.5}, {2, 3}}

	Add(dst, src)

	want := [][2]float32{{1.5, 0.5}, {3, 4}, {1, 1}}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestScale(t *testing.T) {
	frames := [][2]float32{{1, -2}, {0.5, 4}}
	Scale(frames, 0.5)

	want := [][2]float32{{0.5, -1}, {0.25, 2}}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, frames[i], want[i])
		}
	}
}

func TestPeak(t *testing.T) {
	frames := [][2]float32{{0.1, -0.9}, {0.5, 0.2}}
	if got := Peak(frames); got != 0.9 {
		t.Errorf("Peak = %v, want 0.9", got)
	}
	if got := Peak(nil); got != 0 {
		t.Errorf("Peak(nil) = %v, want 0", got)
	}
}
