package codec

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// File is a source file decoded for substitution. Raw is owned by the File
// until Encode produces its replacement.
type File struct {
	Raw     []byte
	Charset Charset
	BOM     bool
	Newline Newline
	// Text is the decoded content, empty for Binary
	Text string
	// Display is a best-effort rendering of Binary content for logs
	Display string
}

// Decode classifies raw and captures its newline style
func Decode(raw []byte) *File {
	f := &File{Raw: raw, Newline: NewlineUnknown}
	f.Charset, f.BOM, f.Text = Detect(raw)
	if f.Charset.IsText() {
		f.Newline = DetectNewline(f.Text)
	} else {
		f.Display = decodeANSI(raw)
		f.Text = ""
	}
	return f
}

// Detect classifies raw bytes into a charset and BOM flag and decodes them.
// The first matching rule wins: BOMs, pure ASCII, NUL parity for UTF-16
// without BOM, then strict and round-trip UTF-8 / legacy checks.
func Detect(raw []byte) (Charset, bool, string) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return UTF8, true, string(raw[len(bomUTF8):])
	case bytes.HasPrefix(raw, bomUTF16LE):
		text, ok, err := decodeUTF16LE(raw[len(bomUTF16LE):])
		if err != nil || !ok {
			return Binary, false, ""
		}
		return UTF16LE, true, text
	case bytes.HasPrefix(raw, bomUTF16BE):
		text, ok, err := decodeUTF16BE(raw[len(bomUTF16BE):])
		if err != nil || !ok {
			return Binary, false, ""
		}
		return UTF16BE, true, text
	}

	if isASCII(raw) {
		return ASCII, false, string(raw)
	}

	nullAtOdd, nullAtEven := scanNulls(raw)
	switch {
	case nullAtOdd && nullAtEven:
		return Binary, false, ""
	case nullAtOdd && len(raw)%2 == 0:
		if text, ok, err := decodeUTF16LE(raw); err == nil && ok {
			return UTF16LE, false, text
		}
		return Binary, false, ""
	case nullAtEven && len(raw)%2 == 0:
		if text, ok, err := decodeUTF16BE(raw); err == nil && ok {
			return UTF16BE, false, text
		}
		return Binary, false, ""
	case nullAtOdd || nullAtEven:
		// NUL bytes with an odd length cannot be UTF-16 and are not text
		return Binary, false, ""
	}

	isUTF8 := utf8.Valid(raw)
	isANSI := ansiValid(raw)
	switch {
	case isUTF8 && !isANSI:
		return UTF8, false, string(raw)
	case isANSI && !isUTF8:
		return LegacyANSI, false, decodeANSI(raw)
	}

	utf8Text := decodeUTF8Lossy(raw)
	if bytes.Equal([]byte(utf8Text), raw) {
		return UTF8, false, utf8Text
	}
	ansiText := decodeANSI(raw)
	if bytes.Equal(encodeANSI(ansiText), raw) {
		return LegacyANSI, false, ansiText
	}
	return Binary, false, ""
}

// DetectNewline reports the line-ending style by presence, checking CRLF,
// then LF, then CR
func DetectNewline(text string) Newline {
	switch {
	case strings.Contains(text, "\r\n"):
		return NewlineCRLF
	case strings.Contains(text, "\n"):
		return NewlineLF
	case strings.Contains(text, "\r"):
		return NewlineCR
	default:
		return NewlineUnknown
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c == 0 || c&0x80 != 0 {
			return false
		}
	}
	return true
}

// scanNulls records whether NUL bytes occur at odd and at even offsets
func scanNulls(b []byte) (odd, even bool) {
	for i, c := range b {
		if c != 0 {
			continue
		}
		if i%2 == 1 {
			odd = true
		} else {
			even = true
		}
		if odd && even {
			return
		}
	}
	return
}
