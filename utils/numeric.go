package utils

import "strconv"

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ParseDigits converts an all-digit field to a float64. Anything else,
// including signs, decimal points, whitespace and values too large for a
// float64, yields 0.
func ParseDigits(s string) float64 {
	if !IsDigits(s) {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
