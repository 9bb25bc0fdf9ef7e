package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a progress value or target. A decimal comma is accepted;
// negatives, NaN and infinities are rejected.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(s), ",", ".", 1), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid value %q: expected a number", s)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid value %q: must not be negative", s)
	}
	return v, nil
}

// FormatAmount prints a value without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
