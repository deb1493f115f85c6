package preferences

import (
	"math"
	"strconv"
	"strings"
)

// CoerceNumber turns free-form input into a non-negative number.
// Empty or non-numeric text becomes 0 and negative values clamp to 0.
func CoerceNumber(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return clamp(v)
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseStored reads a value written by formatNumber. Negative or non-finite values are rejected.
func parseStored(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// CoerceLevel turns free-form input into a character level, dropping any fraction
func CoerceLevel(text string) int {
	v := CoerceNumber(text)
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(v)
}
