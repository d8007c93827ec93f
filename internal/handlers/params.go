package handlers

import (
	"math"
	"strconv"
	"strings"
)

// parseID reads the integer prefix of raw: optional leading whitespace, an
// optional sign and one or more digits. Anything else yields 0, so "12abc"
// is 12 and "abc" is 0. A prefix that overflows int also yields 0; no
// stored id can be that large, so the lookup fails either way.
func parseID(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	id, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return id
}

// queryNumber coerces a query value to an int, truncating fractions.
// Missing, non-numeric, infinite and zero values all yield fallback, so an
// explicit 0 cannot be requested.
func queryNumber(raw string, fallback int) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v > math.MaxInt32 {
		v = math.MaxInt32
	} else if v < math.MinInt32 {
		v = math.MinInt32
	}
	if n := int(v); n != 0 {
		return n
	}
	return fallback
}
