package render

import "unicode/utf16"

// utf16to8 re-encodes the UTF-16 code units of s as UTF-8 byte values,
// one unit at a time, before the data reaches the encoder.
//
// Two quirks are intentional and must stay for compatibility with
// payloads produced by the historical encoder input path: U+0000 takes
// the two-byte branch (0xC0 0x80), and surrogate halves are encoded
// independently instead of being combined into their code point first.
func utf16to8(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units))
	for _, c := range units {
		switch {
		case c >= 0x0001 && c <= 0x007F:
			out = append(out, byte(c))
		case c > 0x07FF:
			out = append(out,
				0xE0|byte((c>>12)&0x0F),
				0x80|byte((c>>6)&0x3F),
				0x80|byte(c&0x3F))
		default:
			out = append(out,
				0xC0|byte((c>>6)&0x1F),
				0x80|byte(c&0x3F))
		}
	}
	return out
}
