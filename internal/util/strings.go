// Package util provides shared string utility functions used across packages.
package util

import "strings"

// TruncateRunes truncates s to at most maxRunes Unicode code points,
// appending "..." if truncation occurred.
// If maxRunes <= 0, s is returned unchanged.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}

// NormalizeSpace collapses all runs of whitespace in s to single spaces and
// trims leading/trailing whitespace.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
