// Package symbol decides what counts as an atomic input symbol.
package symbol

import "unicode/utf8"

// Is reports whether r is a valid atomic symbol: an ASCII letter or digit.
func Is(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// IsString reports whether s consists of exactly one atomic symbol.
func IsString(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && size > 0 && Is(r)
}
