//go:build nounsafe

package binary

import "encoding/binary"

// DecodeU16SliceLE decodes a run of little-endian uint16 values one element
// at a time. The result never aliases b.
func DecodeU16SliceLE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, ErrWidth
	}
	n := len(b) / 2
	if n == 0 {
		return nil, nil
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out, nil
}

// DecodeU32SliceLE decodes a run of little-endian uint32 values one element
// at a time. The result never aliases b.
func DecodeU32SliceLE(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, ErrWidth
	}
	n := len(b) / 4
	if n == 0 {
		return nil, nil
	}
	out := make([]uint32, n)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return out, nil
}
