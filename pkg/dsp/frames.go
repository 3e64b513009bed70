// Package dsp provides processing helpers for the interleaved stereo
// frames the host exchanges with plugins. Everything here runs on the
// mixer thread, so no function allocates.
package dsp

// Clear silences every frame.
func Clear(frames [][2]float32) {
	for i := range frames {
		frames[i] = [2]float32{}
	}
}

// Add sums src into dst, frame by frame, over the shorter of the two.
func Add(dst, src [][2]float32) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i][0] += src[i][0]
		dst[i][1] += src[i][1]
	}
}

// Scale multiplies both channels of every frame by level.
func Scale(frames [][2]float32, level float32) {
	for i := range frames {
		frames[i][0] *= level
		frames[i][1] *= level
	}
}

// Peak returns the largest absolute sample across both channels.
func Peak(frames [][2]float32) float32 {
	var peak float32
	for i := range frames {
		for c := 0; c < 2; c++ {
			s := frames[i][c]
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
	}
	return peak
}
