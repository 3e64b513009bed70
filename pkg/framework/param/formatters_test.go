package param

import "testing"

func TestFrequencyParser(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"440", 440},
		{"440 Hz", 440},
		{"2.5 kHz", 2500},
		{"2.5kHz", 2500},
	}
	for _, tt := range tests {
		got, err := FrequencyParser(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("FrequencyParser(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestTimeParser(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"250", 250},
		{"250 ms", 250},
		{"2 s", 2000},
		{"500 µs", 0.5},
		{"500us", 0.5},
	}
	for _, tt := range tests {
		got, err := TimeParser(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("TimeParser(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestPanParser(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"C", 0},
		{"center", 0},
		{"40L", -0.4},
		{"40 R", 0.4},
		{"0.25", 0.25},
	}
	for _, tt := range tests {
		got, err := PanParser(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("PanParser(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestDecibelParser(t *testing.T) {
	if v, err := DecibelParser("-6.0 dB"); err != nil || v != -6 {
		t.Errorf("DecibelParser dB = %v, %v", v, err)
	}
	if v, _ := DecibelParser("-∞ dB"); v != -96 {
		t.Errorf("DecibelParser inf = %v, want -96", v)
	}
}
