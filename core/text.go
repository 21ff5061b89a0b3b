package core

import (
	"strconv"
)

// Horizons reports are fixed-column text where numeric fields are followed by
// arbitrary trailing text. These helpers read the longest numeric prefix of a
// field, skipping leading blanks, and yield zero when there is none.

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// column returns s from offset off, or "" if s is shorter than that.
func column(s string, off int) string {
	if off < 0 || off >= len(s) {
		return ""
	}
	return s[off:]
}

// leadingFloat parses the decimal floating-point prefix of s.
func leadingFloat(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			end = j
		}
	}
	// Out-of-range values come back as ±Inf or 0 alongside the error.
	v, _ := strconv.ParseFloat(s[start:end], 64)
	return v
}

// leadingInt parses the decimal integer prefix of s.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitsStart {
		return 0
	}
	v, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0
	}
	return v
}
