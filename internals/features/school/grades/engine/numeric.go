package engine

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumeric accepts "8", "8.5", " 7 " and the decimal comma form "8,5".
// NaN and infinities are not numbers here.
func ParseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
