package lineio

// isControl reports whether b is an ASCII control byte (0x00-0x1F, 0x7F).
func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// TrimControl returns b without leading and trailing ASCII control bytes.
// Spaces and bytes >= 0x80 are kept. The result shares b's backing array.
func TrimControl(b []byte) []byte {
	for len(b) > 0 && isControl(b[0]) {
		b = b[1:]
	}
	for len(b) > 0 && isControl(b[len(b)-1]) {
		b = b[:len(b)-1]
	}
	return b
}
