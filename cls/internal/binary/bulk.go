//go:build !nounsafe

package binary

import (
	"encoding/binary"
	"unsafe"
)

// hostLittleEndian reports whether the host stores integers little-endian,
// which allows reinterpreting wire bytes in place.
var hostLittleEndian = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// DecodeU16SliceLE decodes a run of little-endian uint16 values. When the
// host layout matches and the slice is aligned, the run is reinterpreted in
// place and copied out in one step; otherwise each element is decoded
// individually. The result never aliases b.
func DecodeU16SliceLE(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, ErrWidth
	}
	n := len(b) / 2
	if n == 0 {
		return nil, nil
	}
	out := make([]uint16, n)
	if hostLittleEndian && uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(uint16(0)) == 0 {
		copy(out, unsafe.Slice((*uint16)(unsafe.Pointer(&b[0])), n))
		return out, nil
	}
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(b[2*i:])
	}
	return out, nil
}

// DecodeU32SliceLE decodes a run of little-endian uint32 values. Same
// contract as DecodeU16SliceLE.
func DecodeU32SliceLE(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, ErrWidth
	}
	n := len(b) / 4
	if n == 0 {
		return nil, nil
	}
	out := make([]uint32, n)
	if hostLittleEndian && uintptr(unsafe.Pointer(&b[0]))%unsafe.Alignof(uint32(0)) == 0 {
		copy(out, unsafe.Slice((*uint32)(unsafe.Pointer(&b[0])), n))
		return out, nil
	}
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return out, nil
}
