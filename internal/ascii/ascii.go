// Package ascii provides the byte classification shared by the grid and the
// number scanner.
package ascii

// Valid reports whether every byte of b is in the ASCII range (0–127).
func Valid(b []byte) bool {
	for _, c := range b {
		if c > 0x7f {
			return false
		}
	}
	return true
}

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsPrint reports whether c is a printable ASCII character (space through
// tilde).
func IsPrint(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}
