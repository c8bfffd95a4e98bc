package utils

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ParsePrice parses a decimal price from a form field. Non-numeric or
// non-positive input is a user error, surfaced as a 400-class response
// by the caller instead of an unhandled failure.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("price is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a number")
	}
	if v <= 0 {
		return 0, fmt.Errorf("price must be a positive number")
	}
	return v, nil
}

// SanitizeFilename strips any path components and replaces characters
// that are unsafe in a stored filename. Only the extension of the
// result is trusted; stored assets are keyed randomly.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
