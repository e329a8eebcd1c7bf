package binary

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrWidth is returned when a byte slice does not match the width of the
// requested type.
var ErrWidth = errors.New("slice width does not match type width")

// DecodeU16 converts an exact 2-byte slice to a uint16 in the given byte order.
func DecodeU16(b []byte, order binary.ByteOrder) (uint16, error) {
	if len(b) != 2 {
		return 0, ErrWidth
	}
	return order.Uint16(b), nil
}

// DecodeU32 converts an exact 4-byte slice to a uint32 in the given byte order.
func DecodeU32(b []byte, order binary.ByteOrder) (uint32, error) {
	if len(b) != 4 {
		return 0, ErrWidth
	}
	return order.Uint32(b), nil
}

// DecodeU64 converts an exact 8-byte slice to a uint64 in the given byte order.
func DecodeU64(b []byte, order binary.ByteOrder) (uint64, error) {
	if len(b) != 8 {
		return 0, ErrWidth
	}
	return order.Uint64(b), nil
}

// DecodeI16 converts an exact 2-byte slice to an int16 in the given byte order.
func DecodeI16(b []byte, order binary.ByteOrder) (int16, error) {
	v, err := DecodeU16(b, order)
	return int16(v), err
}

// DecodeI32 converts an exact 4-byte slice to an int32 in the given byte order.
func DecodeI32(b []byte, order binary.ByteOrder) (int32, error) {
	v, err := DecodeU32(b, order)
	return int32(v), err
}

// DecodeF32 converts an exact 4-byte slice to an IEEE 754 float32 in the
// given byte order.
func DecodeF32(b []byte, order binary.ByteOrder) (float32, error) {
	v, err := DecodeU32(b, order)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// DecodeF64 converts an exact 8-byte slice to an IEEE 754 float64 in the
// given byte order.
func DecodeF64(b []byte, order binary.ByteOrder) (float64, error) {
	v, err := DecodeU64(b, order)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}
