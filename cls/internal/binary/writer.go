package binary

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer provides buffered writing utilities for CLS binary encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteU64LE writes a little-endian uint64 (fixed 8 bytes).
func (w *Writer) WriteU64LE(v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteI16LE writes a little-endian int16 (fixed 2 bytes).
func (w *Writer) WriteI16LE(v int16) {
	w.WriteU16LE(uint16(v))
}

// WriteF32LE writes a little-endian IEEE 754 float32 (fixed 4 bytes).
func (w *Writer) WriteF32LE(v float32) {
	w.WriteU32LE(math.Float32bits(v))
}

// WriteF64LE writes a little-endian IEEE 754 float64 (fixed 8 bytes).
func (w *Writer) WriteF64LE(v float64) {
	w.WriteU64LE(math.Float64bits(v))
}

// WriteU16SliceLE writes each element as a little-endian uint16.
func (w *Writer) WriteU16SliceLE(vs []uint16) {
	for _, v := range vs {
		w.WriteU16LE(v)
	}
}

// WriteU32SliceLE writes each element as a little-endian uint32.
func (w *Writer) WriteU32SliceLE(vs []uint32) {
	for _, v := range vs {
		w.WriteU32LE(v)
	}
}
