package codec

import "strings"

// Encode turns text back into bytes for the given charset, BOM flag and
// newline style. Binary content cannot be rebuilt from text; use
// (*File).Bytes, which passes Raw through.
func Encode(text string, cs Charset, withBOM bool, nl Newline) []byte {
	text = normalizeNewlines(text, nl)

	var body []byte
	switch cs {
	case UTF8:
		body = []byte(text)
	case UTF16LE:
		body = encodeUTF16LE(text)
	case UTF16BE:
		body = encodeUTF16BE(text)
	case LegacyANSI, ASCII:
		body = encodeANSI(text)
	default:
		body = []byte(text)
	}

	if withBOM && cs.SupportsBOM() {
		mark := bom(cs)
		out := make([]byte, 0, len(mark)+len(body))
		out = append(out, mark...)
		return append(out, body...)
	}
	return body
}

// Bytes returns the bytes to write for f: the untouched Raw buffer for
// Binary files, otherwise Text re-encoded with the detected settings
func (f *File) Bytes() []byte {
	if !f.Charset.IsText() {
		return f.Raw
	}
	return Encode(f.Text, f.Charset, f.BOM, f.Newline)
}

// normalizeNewlines collapses CRLF to LF and then expands LF to the target
// style. Unknown is written as CRLF.
func normalizeNewlines(text string, nl Newline) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	switch nl {
	case NewlineLF:
		return text
	case NewlineCR:
		return strings.ReplaceAll(text, "\n", "\r")
	default:
		return strings.ReplaceAll(text, "\n", "\r\n")
	}
}
