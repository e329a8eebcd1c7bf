package binary

import (
	"encoding/binary"
	"errors"
)

// ErrUnexpectedEnd is returned when a read would pass the end of the buffer.
var ErrUnexpectedEnd = errors.New("unexpected end of buffer")

// Cursor is a bounded reader over a byte buffer with position tracking.
// Reads return views into the underlying buffer without copying; callers
// that retain decoded data must copy it out first.
type Cursor struct {
	buf  []byte
	pos  int
	base int // absolute offset of buf[0] in the original input
}

// NewCursor creates a new Cursor over buf. Positions are reported
// relative to the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Position returns the current absolute byte position.
func (c *Cursor) Position() int {
	return c.base + c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// ReadByte reads a single byte and advances the position.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrUnexpectedEnd
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Peek returns the next byte without advancing the position.
func (c *Cursor) Peek() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrUnexpectedEnd
	}
	return c.buf[c.pos], nil
}

// ReadBytes reads exactly n bytes and returns a view into the buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(c.buf)-c.pos {
		return nil, ErrUnexpectedEnd
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) error {
	if n < 0 || n > len(c.buf)-c.pos {
		return ErrUnexpectedEnd
	}
	c.pos += n
	return nil
}

// Mark returns the current absolute position for a later ResetTo.
func (c *Cursor) Mark() int {
	return c.Position()
}

// ResetTo seeks to an absolute position previously returned by Mark.
func (c *Cursor) ResetTo(pos int) error {
	if pos < c.base || pos > c.base+len(c.buf) {
		return ErrUnexpectedEnd
	}
	c.pos = pos - c.base
	return nil
}

// Sub consumes the next n bytes and returns a cursor bounded to them.
// The sub-cursor reports absolute positions in the original input.
func (c *Cursor) Sub(n int) (*Cursor, error) {
	start := c.Position()
	b, err := c.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return &Cursor{buf: b, base: start}, nil
}

// ReadU16LE reads a little-endian uint16 (fixed 2 bytes).
func (c *Cursor) ReadU16LE() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (c *Cursor) ReadU32LE() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadU64LE reads a little-endian uint64 (fixed 8 bytes).
func (c *Cursor) ReadU64LE() (uint64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadI16LE reads a little-endian int16 (fixed 2 bytes).
func (c *Cursor) ReadI16LE() (int16, error) {
	v, err := c.ReadU16LE()
	return int16(v), err
}

// ReadF32LE reads a little-endian IEEE 754 float32 (fixed 4 bytes).
func (c *Cursor) ReadF32LE() (float32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	f, err := DecodeF32(b, binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// ReadF64LE reads a little-endian IEEE 754 float64 (fixed 8 bytes).
func (c *Cursor) ReadF64LE() (float64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	f, err := DecodeF64(b, binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	return f, nil
}
