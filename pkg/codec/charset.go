package codec

// Charset identifies how a file's bytes map to characters
type Charset int

const (
	// Binary content is copied untouched and never substituted
	Binary Charset = iota
	// UTF8 is UTF-8, with or without a BOM
	UTF8
	// UTF16LE is little-endian UTF-16, with or without a BOM
	UTF16LE
	// UTF16BE is big-endian UTF-16, with or without a BOM
	UTF16BE
	// LegacyANSI is the single-byte legacy code page (Windows-1252)
	LegacyANSI
	// ASCII is 7-bit text without NUL bytes
	ASCII
)

// String returns the label printed on the per-file progress line
func (c Charset) String() string {
	switch c {
	case Binary:
		return "binary"
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16"
	case UTF16BE:
		return "UTF-16 BE"
	case LegacyANSI:
		return "ANSI"
	case ASCII:
		return "ASCII"
	default:
		return "unknown"
	}
}

// IsText reports whether content in this charset is decoded and substitutable
func (c Charset) IsText() bool {
	return c != Binary
}

// SupportsBOM reports whether a byte-order mark is meaningful for the charset
func (c Charset) SupportsBOM() bool {
	return c == UTF8 || c == UTF16LE || c == UTF16BE
}

// Newline is the dominant line-ending convention of a text file
type Newline int

const (
	NewlineCRLF Newline = iota
	NewlineLF
	NewlineCR
	NewlineUnknown
)

// String returns a short name for logs
func (n Newline) String() string {
	switch n {
	case NewlineCRLF:
		return "crlf"
	case NewlineLF:
		return "lf"
	case NewlineCR:
		return "cr"
	default:
		return "unknown"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// bom returns the byte-order mark written for the charset, or nil
func bom(c Charset) []byte {
	switch c {
	case UTF8:
		return bomUTF8
	case UTF16LE:
		return bomUTF16LE
	case UTF16BE:
		return bomUTF16BE
	default:
		return nil
	}
}
