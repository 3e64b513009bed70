package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatters and parsers shared by the stock builders. The host shows
// the formatted value in hints; parsers accept what the user types
// back, with or without the unit.

// trimUnit strips spaces and the first matching unit suffix.
func trimUnit(s string, units ...string) string {
	s = strings.TrimSpace(s)
	for _, u := range units {
		if strings.HasSuffix(strings.ToLower(s), u) {
			return strings.TrimSpace(s[:len(s)-len(u)])
		}
	}
	return s
}

// FrequencyFormatter writes Hz below 1 kHz, kHz above.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser reads a frequency in Hz, accepting a kHz suffix.
func FrequencyParser(str string) (float64, error) {
	if s := trimUnit(str, "khz"); s != strings.TrimSpace(str) {
		v, err := strconv.ParseFloat(s, 64)
		return v * 1000, err
	}
	return strconv.ParseFloat(trimUnit(str, "hz"), 64)
}

// DecibelParser reads a level in dB. Infinity spellings map to the
// practical floor.
func DecibelParser(str string) (float64, error) {
	if strings.Contains(str, "∞") || strings.Contains(strings.ToLower(str), "inf") {
		return -96, nil
	}
	return strconv.ParseFloat(trimUnit(str, "db"), 64)
}

// PercentFormatter writes a whole percentage.
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser reads a percentage.
func PercentParser(str string) (float64, error) {
	return strconv.ParseFloat(trimUnit(str, "%"), 64)
}

// TimeFormatter writes µs, ms or s depending on magnitude. The plain
// value is milliseconds.
func TimeFormatter(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.2f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.1f ms", ms)
	default:
		return fmt.Sprintf("%.2f s", ms/1000)
	}
}

// TimeParser reads a time in milliseconds, accepting µs and s.
func TimeParser(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if s := trimUnit(str, "µs", "us"); s != str {
		v, err := strconv.ParseFloat(s, 64)
		return v / 1000, err
	}
	if s := trimUnit(str, "ms"); s != str {
		return strconv.ParseFloat(s, 64)
	}
	if s := trimUnit(str, "s"); s != str {
		v, err := strconv.ParseFloat(s, 64)
		return v * 1000, err
	}
	return strconv.ParseFloat(str, 64)
}

// RatioParser reads a compression ratio, accepting a ":1" suffix.
func RatioParser(str string) (float64, error) {
	return strconv.ParseFloat(trimUnit(str, ":1"), 64)
}

// PanParser reads a pan position into -1..1. Accepts "C"/"Center",
// "40L"/"40R" percentages, or a plain number.
func PanParser(str string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(str))
	if s == "C" || s == "CENTER" {
		return 0, nil
	}
	if n := strings.TrimSuffix(s, "L"); n != s {
		v, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return -v / 100, err
	}
	if n := strings.TrimSuffix(s, "R"); n != s {
		v, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return v / 100, err
	}
	return strconv.ParseFloat(s, 64)
}
