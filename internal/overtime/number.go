package overtime

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber reads a stored numeric value. Integers parse exactly; finite
// decimals are truncated toward zero. Empty, NaN, infinite and garbage input
// is rejected.
func ParseNumber(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, true
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// FormatNumber is the stored form of value.
func FormatNumber(value int64) string {
	return strconv.FormatInt(value, 10)
}
