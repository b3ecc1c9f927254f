package codec

import (
	"encoding/binary"
	"unicode/utf16"

	"gitlab.com/tozd/go/errors"
)

// ErrOddLength is returned when a UTF-16 payload has a dangling byte
var ErrOddLength = errors.Base("odd-length UTF-16 payload")

// swapBytes returns a copy of b with every 16-bit pair byte-swapped
func swapBytes(b []byte) ([]byte, error) {
	if len(b)%2 != 0 {
		return nil, errors.WithStack(ErrOddLength)
	}
	out := make([]byte, len(b))
	for i := 0; i < len(b); i += 2 {
		out[i], out[i+1] = b[i+1], b[i]
	}
	return out, nil
}

// bytesToUnits reinterprets b as little-endian UTF-16 code units
func bytesToUnits(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, errors.WithStack(ErrOddLength)
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return units, nil
}

// unitsToBytes serializes code units in little-endian order
func unitsToBytes(units []uint16) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// decodeUTF16LE decodes little-endian UTF-16 bytes. ok is false when the
// code units do not survive a decode/encode round trip (unpaired surrogates).
func decodeUTF16LE(b []byte) (text string, ok bool, err error) {
	units, err := bytesToUnits(b)
	if err != nil {
		return "", false, err
	}
	runes := utf16.Decode(units)
	reencoded := utf16.Encode(runes)
	if len(reencoded) != len(units) {
		return string(runes), false, nil
	}
	for i := range units {
		if units[i] != reencoded[i] {
			return string(runes), false, nil
		}
	}
	return string(runes), true, nil
}

// encodeUTF16LE encodes text as little-endian UTF-16 bytes
func encodeUTF16LE(text string) []byte {
	return unitsToBytes(utf16.Encode([]rune(text)))
}

// decodeUTF16BE decodes big-endian UTF-16 bytes by swapping to little-endian first
func decodeUTF16BE(b []byte) (string, bool, error) {
	swapped, err := swapBytes(b)
	if err != nil {
		return "", false, err
	}
	return decodeUTF16LE(swapped)
}

// encodeUTF16BE encodes text as big-endian UTF-16 bytes
func encodeUTF16BE(text string) []byte {
	le := encodeUTF16LE(text)
	// le always has even length
	be, _ := swapBytes(le)
	return be
}
