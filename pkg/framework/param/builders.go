package param

import (
	"fmt"
	"strings"
)

// ChoiceOption represents a single choice in a list parameter.
type ChoiceOption struct {
	Value   float64
	Name    string
	Aliases []string
}

// Choice creates a builder for a multiple choice parameter.
func Choice(index int, name string, options []ChoiceOption) *Builder {
	names := make([]string, len(options))
	for i, opt := range options {
		names[i] = opt.Name
	}

	formatter := func(value float64) string {
		for _, opt := range options {
			if opt.Value == value {
				return opt.Name
			}
		}
		i := int(value)
		if i >= 0 && i < len(names) {
			return names[i]
		}
		return "Unknown"
	}

	parser := func(str string) (float64, error) {
		normalized := strings.ToLower(strings.TrimSpace(str))
		for _, opt := range options {
			if strings.EqualFold(str, opt.Name) {
				return opt.Value, nil
			}
			for _, alias := range opt.Aliases {
				if strings.EqualFold(normalized, strings.ToLower(alias)) {
					return opt.Value, nil
				}
			}
		}
		return 0, fmt.Errorf("unknown option: %s", str)
	}

	minVal := 0.0
	maxVal := float64(len(options) - 1)
	if len(options) > 0 {
		minVal = options[0].Value
		maxVal = options[len(options)-1].Value
	}

	return New(index, name).
		Range(minVal, maxVal).
		NoInterpolation().
		Default(options[0].Value).
		Formatter(formatter, parser)
}

// Common parameter helpers

// GainParameter creates a standard gain parameter (-inf to +12dB).
func GainParameter(index int, name string) *Builder {
	return New(index, name).
		Range(-80, 12).
		Default(0).
		Unit("dB").
		Float().
		Formatter(func(v float64) string {
			if v <= -80 {
				return "-∞ dB"
			}
			return fmt.Sprintf("%.1f dB", v)
		}, func(s string) (float64, error) {
			if strings.Contains(strings.ToLower(s), "inf") {
				return -80, nil
			}
			return DecibelParser(s)
		})
}

// MixParameter creates a standard mix/blend parameter (0-100%).
func MixParameter(index int, name string) *Builder {
	return New(index, name).
		Range(0, 100).
		Default(100).
		Unit("%").
		Float().
		Formatter(PercentFormatter, PercentParser)
}

// FrequencyParameter creates a standard frequency parameter.
func FrequencyParameter(index int, name string, min, max, defaultVal float64) *Builder {
	return New(index, name).
		Range(min, max).
		Default(defaultVal).
		Unit("Hz").
		Float().
		Formatter(FrequencyFormatter, FrequencyParser)
}

// TimeParameter creates a time parameter (ms or s depending on range).
func TimeParameter(index int, name string, minMs, maxMs, defaultMs float64) *Builder {
	return New(index, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Float().
		Formatter(TimeFormatter, TimeParser)
}

// PanParameter creates a stereo pan parameter, drawn centered.
func PanParameter(index int, name string) *Builder {
	return New(index, name).
		Range(-100, 100).
		Default(0).
		Float().
		Centered().
		Formatter(func(v float64) string {
			if v == 0 {
				return "Center"
			} else if v < 0 {
				return fmt.Sprintf("%.0f%% L", -v)
			}
			return fmt.Sprintf("%.0f%% R", v)
		}, func(s string) (float64, error) {
			v, err := PanParser(s)
			if err != nil {
				return 0, err
			}
			return v * 100, nil
		})
}

// RatioParameter creates a compression/expansion ratio parameter.
func RatioParameter(index int, name string, minRatio, maxRatio, defaultRatio float64) *Builder {
	return New(index, name).
		Range(minRatio, maxRatio).
		Default(defaultRatio).
		Float().
		Formatter(func(v float64) string {
			if v >= 100 {
				return "∞:1"
			}
			return fmt.Sprintf("%.1f:1", v)
		}, func(s string) (float64, error) {
			s = strings.TrimSpace(strings.ToLower(s))
			if strings.Contains(s, "inf") || strings.Contains(s, "∞") {
				return 100, nil
			}
			s = strings.TrimSuffix(s, ":1")
			return RatioParser(s)
		})
}

// ResonanceParameter creates a standard resonance parameter.
func ResonanceParameter(index int, name string) *Builder {
	return New(index, name).
		Range(0, 1).
		Default(0.707).
		Float().
		Formatter(func(v float64) string {
			return fmt.Sprintf("%.3f", v)
		}, nil)
}

// AttackParameter creates an attack time parameter.
func AttackParameter(index int, name string, maxMs float64) *Builder {
	return TimeParameter(index, name, 0.1, maxMs, 10.0)
}

// ReleaseParameter creates a release time parameter.
func ReleaseParameter(index int, name string, maxMs float64) *Builder {
	return TimeParameter(index, name, 1.0, maxMs, 100.0)
}

// DepthParameter creates a depth/amount parameter (0-100%).
func DepthParameter(index int, name string) *Builder {
	return New(index, name).
		Range(0, 100).
		Default(50).
		Unit("%").
		Float().
		Formatter(PercentFormatter, PercentParser)
}
