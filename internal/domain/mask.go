package domain

import (
	"strings"
	"unicode/utf8"
)

const (
	maskFill  = "********"
	minHidden = 4
)

// MaskSecret keeps the first head and last tail runes of s and elides the
// middle. Values whose hidden middle would be shorter than minHidden runes
// are fully masked.
func MaskSecret(s string, head, tail int) string {
	if s == "" {
		return ""
	}
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}

	n := utf8.RuneCountInString(s)
	if n < head+tail+minHidden {
		return maskFill
	}

	r := []rune(s)
	var b strings.Builder
	b.WriteString(string(r[:head]))
	b.WriteString("...")
	if tail > 0 {
		b.WriteString(string(r[n-tail:]))
	}
	return b.String()
}
