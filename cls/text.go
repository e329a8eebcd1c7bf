package cls

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	"github.com/geofmt/cls-codec/cls/internal/binary"
)

// errUndecodable marks text bytes that are invalid in the declared
// encoding under the DecodeFail policy.
var errUndecodable = fmt.Errorf("byte sequence not valid in declared encoding")

// legacyEncoding maps an EncodingID to its transform implementation.
func legacyEncoding(enc EncodingID) (encoding.Encoding, bool) {
	switch enc {
	case EncodingShiftJIS:
		return japanese.ShiftJIS, true
	case EncodingLatin1:
		return charmap.ISO8859_1, true
	case EncodingWindows1252:
		return charmap.Windows1252, true
	}
	return nil, false
}

// knownEncoding reports whether enc is a supported encoding id.
func knownEncoding(enc EncodingID) bool {
	_, ok := legacyEncoding(enc)
	return ok
}

// decodeLegacyWindow decodes a fixed-width legacy-encoded name field.
// Trailing 0x20 and 0x00 pad bytes are stripped before decoding; neither
// value can be the trail byte of a multi-byte sequence in any supported
// encoding, so stripping is safe on raw bytes.
func decodeLegacyWindow(raw []byte, enc EncodingID, policy DecodePolicy) (string, error) {
	trimmed := bytes.TrimRight(raw, " \x00")
	if len(trimmed) == 0 {
		return "", nil
	}
	e, ok := legacyEncoding(enc)
	if !ok {
		return "", errUndecodable
	}
	decoded, err := e.NewDecoder().Bytes(trimmed)
	if err != nil {
		return "", errUndecodable
	}
	s := string(decoded)
	if policy == DecodeFail && strings.ContainsRune(s, '�') {
		// The decoder substitutes U+FFFD for invalid sequences rather
		// than failing, and no supported encoding can produce U+FFFD
		// from valid input.
		return "", errUndecodable
	}
	return s, nil
}

// encodeLegacyWindow encodes name into a fixed-width window in the target
// encoding, padding with 0x20. It fails when a rune has no representation
// in the encoding or the encoded form does not fit the window.
func encodeLegacyWindow(name string, enc EncodingID, width int) ([]byte, error) {
	e, ok := legacyEncoding(enc)
	if !ok {
		return nil, fmt.Errorf("unsupported encoding id %d", enc)
	}
	raw, err := e.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("name not representable in %s", enc)
	}
	if len(raw) > width {
		return nil, fmt.Errorf("encoded name is %d bytes, window is %d", len(raw), width)
	}
	out := make([]byte, width)
	copy(out, raw)
	for i := len(raw); i < width; i++ {
		out[i] = ' '
	}
	return out, nil
}

// decodeUTF16Text decodes little-endian UTF-16 text. The caller has
// already verified the byte length is even.
func decodeUTF16Text(raw []byte, policy DecodePolicy) (string, error) {
	units, err := binary.DecodeU16SliceLE(raw)
	if err != nil {
		return "", errUndecodable
	}
	if policy == DecodeFail && !utf16Valid(units) {
		return "", errUndecodable
	}
	return string(utf16.Decode(units)), nil
}

// encodeUTF16Text encodes text as little-endian UTF-16 bytes.
func encodeUTF16Text(text string) []byte {
	units := utf16.Encode([]rune(text))
	w := binary.NewWriter()
	w.WriteU16SliceLE(units)
	return w.Bytes()
}

// utf16Valid reports whether units contains no unpaired surrogates.
func utf16Valid(units []uint16) bool {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return false
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return false
		}
	}
	return true
}
