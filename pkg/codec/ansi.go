package codec

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// legacyCodePage is the single-byte table used for ANSI and ASCII files.
// The table is fixed so results do not depend on the host locale.
var legacyCodePage = charmap.Windows1252

// ansiValid reports whether every byte has a defined Windows-1252 mapping.
// The charmap decodes the five undefined bytes (0x81, 0x8D, 0x8F, 0x90,
// 0x9D) to U+FFFD.
func ansiValid(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 && legacyCodePage.DecodeByte(c) == utf8.RuneError {
			return false
		}
	}
	return true
}

// undefinedC1 reports whether r is the C1 code point standing in for one of
// the undefined legacy bytes
func undefinedC1(r rune) bool {
	switch r {
	case 0x81, 0x8D, 0x8F, 0x90, 0x9D:
		return true
	}
	return false
}

// decodeANSI maps every byte through the legacy table. Undefined bytes
// become the C1 code point of the same value so encodeANSI restores them.
func decodeANSI(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		r := legacyCodePage.DecodeByte(c)
		if r == utf8.RuneError && undefinedC1(rune(c)) {
			r = rune(c)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// encodeANSI encodes text through the legacy table, substituting the
// replacement byte for runes the table cannot represent
func encodeANSI(text string) []byte {
	enc := encoding.ReplaceUnsupported(legacyCodePage.NewEncoder())
	out := make([]byte, 0, len(text))

	start := 0
	for i, r := range text {
		if !undefinedC1(r) {
			continue
		}
		out = appendEncoded(out, enc, text[start:i])
		out = append(out, byte(r))
		start = i + utf8.RuneLen(r)
	}
	return appendEncoded(out, enc, text[start:])
}

func appendEncoded(out []byte, enc *encoding.Encoder, text string) []byte {
	if text == "" {
		return out
	}
	b, err := enc.Bytes([]byte(text))
	if err != nil {
		return append(out, text...)
	}
	return append(out, b...)
}

// decodeUTF8Lossy replaces invalid sequences with U+FFFD
func decodeUTF8Lossy(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	out := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		out = append(out, r)
		b = b[size:]
	}
	return string(out)
}
