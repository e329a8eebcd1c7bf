package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestCursorReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	c := NewCursor(data)

	for i, want := range data {
		if c.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, c.Position(), i)
		}
		b, err := c.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	if c.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", c.Remaining())
	}

	_, err := c.ReadByte()
	if !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCursorPeek(t *testing.T) {
	c := NewCursor([]byte{0xaa, 0xbb})

	b, err := c.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if b != 0xaa {
		t.Errorf("Peek: got 0x%02x, want 0xaa", b)
	}
	if c.Position() != 0 {
		t.Errorf("Peek advanced position to %d", c.Position())
	}

	c.ReadBytes(2)
	if _, err := c.Peek(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Peek at end: expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCursorReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	c := NewCursor(data)

	got, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}
	if c.Position() != 3 {
		t.Errorf("position: got %d, want 3", c.Position())
	}

	if _, err := c.ReadBytes(10); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("expected ErrUnexpectedEnd reading past end, got %v", err)
	}
	if _, err := c.ReadBytes(-1); err == nil {
		t.Error("expected error for negative length")
	}
}

func TestCursorReadBytesZeroCopy(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	c := NewCursor(data)

	view, err := c.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}

	// The view aliases the source buffer.
	data[1] = 0xee
	if view[1] != 0xee {
		t.Error("ReadBytes should return a view, not a copy")
	}
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})

	if err := c.Skip(2); err != nil {
		t.Fatalf("Skip: %v", err)
	}
	if c.Position() != 2 {
		t.Errorf("position after skip: got %d, want 2", c.Position())
	}

	if err := c.Skip(3); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Skip past end: expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCursorMarkResetTo(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})

	c.ReadByte()
	mark := c.Mark()
	c.ReadBytes(2)
	if c.Position() != 3 {
		t.Errorf("position: got %d, want 3", c.Position())
	}

	if err := c.ResetTo(mark); err != nil {
		t.Fatalf("ResetTo: %v", err)
	}
	if c.Position() != 1 {
		t.Errorf("position after reset: got %d, want 1", c.Position())
	}

	b, _ := c.ReadByte()
	if b != 0x02 {
		t.Errorf("ReadByte after reset: got 0x%02x, want 0x02", b)
	}

	if err := c.ResetTo(99); err == nil {
		t.Error("expected error for ResetTo outside the window")
	}
	if err := c.ResetTo(-1); err == nil {
		t.Error("expected error for negative ResetTo")
	}
}

func TestCursorSub(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	c := NewCursor(data)
	c.ReadBytes(2)

	sub, err := c.Sub(3)
	if err != nil {
		t.Fatalf("Sub: %v", err)
	}

	// Parent advanced past the sub-window.
	if c.Position() != 5 {
		t.Errorf("parent position: got %d, want 5", c.Position())
	}

	// Sub-cursor reports absolute positions.
	if sub.Position() != 2 {
		t.Errorf("sub position: got %d, want 2", sub.Position())
	}
	if sub.Remaining() != 3 {
		t.Errorf("sub remaining: got %d, want 3", sub.Remaining())
	}

	b, _ := sub.ReadByte()
	if b != 0x03 {
		t.Errorf("sub ReadByte: got 0x%02x, want 0x03", b)
	}
	if sub.Position() != 3 {
		t.Errorf("sub position after read: got %d, want 3", sub.Position())
	}

	// Sub-cursor is bounded.
	if _, err := sub.ReadBytes(3); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("sub read past window: expected ErrUnexpectedEnd, got %v", err)
	}

	if _, err := c.Sub(5); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Sub past end: expected ErrUnexpectedEnd, got %v", err)
	}
}

func TestCursorFixedWidthReads(t *testing.T) {
	w := NewWriter()
	w.WriteU16LE(0x0201)
	w.WriteU32LE(0x04030201)
	w.WriteU64LE(0x0807060504030201)
	w.WriteI16LE(-2)
	w.WriteF32LE(1.5)
	w.WriteF64LE(-2.25)

	c := NewCursor(w.Bytes())

	u16, err := c.ReadU16LE()
	if err != nil || u16 != 0x0201 {
		t.Errorf("ReadU16LE: got 0x%04x, %v; want 0x0201", u16, err)
	}
	u32, err := c.ReadU32LE()
	if err != nil || u32 != 0x04030201 {
		t.Errorf("ReadU32LE: got 0x%08x, %v; want 0x04030201", u32, err)
	}
	u64, err := c.ReadU64LE()
	if err != nil || u64 != 0x0807060504030201 {
		t.Errorf("ReadU64LE: got 0x%016x, %v; want 0x0807060504030201", u64, err)
	}
	i16, err := c.ReadI16LE()
	if err != nil || i16 != -2 {
		t.Errorf("ReadI16LE: got %d, %v; want -2", i16, err)
	}
	f32, err := c.ReadF32LE()
	if err != nil || f32 != 1.5 {
		t.Errorf("ReadF32LE: got %v, %v; want 1.5", f32, err)
	}
	f64, err := c.ReadF64LE()
	if err != nil || f64 != -2.25 {
		t.Errorf("ReadF64LE: got %v, %v; want -2.25", f64, err)
	}

	if c.Remaining() != 0 {
		t.Errorf("remaining: got %d, want 0", c.Remaining())
	}
}

func TestCursorFixedWidthTruncated(t *testing.T) {
	tests := []struct {
		name string
		read func(*Cursor) error
		size int
	}{
		{"u16", func(c *Cursor) error { _, err := c.ReadU16LE(); return err }, 1},
		{"u32", func(c *Cursor) error { _, err := c.ReadU32LE(); return err }, 3},
		{"u64", func(c *Cursor) error { _, err := c.ReadU64LE(); return err }, 7},
		{"f32", func(c *Cursor) error { _, err := c.ReadF32LE(); return err }, 3},
		{"f64", func(c *Cursor) error { _, err := c.ReadF64LE(); return err }, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(make([]byte, tt.size))
			if err := tt.read(c); !errors.Is(err, ErrUnexpectedEnd) {
				t.Errorf("expected ErrUnexpectedEnd, got %v", err)
			}
		})
	}
}

func TestDecodePrimitives(t *testing.T) {
	le := binary.LittleEndian
	be := binary.BigEndian

	u16, err := DecodeU16([]byte{0x01, 0x02}, le)
	if err != nil || u16 != 0x0201 {
		t.Errorf("DecodeU16 LE: got 0x%04x, %v", u16, err)
	}
	u16, err = DecodeU16([]byte{0x01, 0x02}, be)
	if err != nil || u16 != 0x0102 {
		t.Errorf("DecodeU16 BE: got 0x%04x, %v", u16, err)
	}

	u32, err := DecodeU32([]byte{0x01, 0x02, 0x03, 0x04}, be)
	if err != nil || u32 != 0x01020304 {
		t.Errorf("DecodeU32 BE: got 0x%08x, %v", u32, err)
	}

	i16, err := DecodeI16([]byte{0xfe, 0xff}, le)
	if err != nil || i16 != -2 {
		t.Errorf("DecodeI16 LE: got %d, %v; want -2", i16, err)
	}

	i32, err := DecodeI32([]byte{0xff, 0xff, 0xff, 0xff}, le)
	if err != nil || i32 != -1 {
		t.Errorf("DecodeI32 LE: got %d, %v; want -1", i32, err)
	}

	var f64buf [8]byte
	le.PutUint64(f64buf[:], math.Float64bits(3.75))
	f64, err := DecodeF64(f64buf[:], le)
	if err != nil || f64 != 3.75 {
		t.Errorf("DecodeF64 LE: got %v, %v; want 3.75", f64, err)
	}
}

func TestDecodePrimitivesWrongWidth(t *testing.T) {
	le := binary.LittleEndian
	tests := []struct {
		name string
		err  error
	}{
		{"u16 short", func() error { _, err := DecodeU16([]byte{1}, le); return err }()},
		{"u16 long", func() error { _, err := DecodeU16([]byte{1, 2, 3}, le); return err }()},
		{"u32 short", func() error { _, err := DecodeU32([]byte{1, 2, 3}, le); return err }()},
		{"u64 short", func() error { _, err := DecodeU64([]byte{1, 2, 3, 4, 5, 6, 7}, le); return err }()},
		{"f32 long", func() error { _, err := DecodeF32([]byte{1, 2, 3, 4, 5}, le); return err }()},
		{"f64 empty", func() error { _, err := DecodeF64(nil, le); return err }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrWidth) {
				t.Errorf("expected ErrWidth, got %v", tt.err)
			}
		})
	}
}

func TestWriterBasic(t *testing.T) {
	w := NewWriter()
	if w.Len() != 0 {
		t.Errorf("initial Len: got %d, want 0", w.Len())
	}

	w.Byte(0x42)
	if w.Len() != 1 {
		t.Errorf("Len after Byte: got %d, want 1", w.Len())
	}

	w.WriteBytes([]byte{0x01, 0x02, 0x03})
	if w.Len() != 4 {
		t.Errorf("Len after WriteBytes: got %d, want 4", w.Len())
	}

	got := w.Bytes()
	want := []byte{0x42, 0x01, 0x02, 0x03}
	if !bytes.Equal(got, want) {
		t.Errorf("Bytes: got %v, want %v", got, want)
	}
}

func TestWriterFixedWidth(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(0x04030201)
	got := w.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if !bytes.Equal(got, want) {
		t.Errorf("WriteU32LE: got %v, want %v", got, want)
	}

	w = NewWriter()
	w.WriteI16LE(-1)
	if !bytes.Equal(w.Bytes(), []byte{0xff, 0xff}) {
		t.Errorf("WriteI16LE(-1): got %v, want [ff ff]", w.Bytes())
	}

	w = NewWriter()
	w.WriteF64LE(1.0)
	c := NewCursor(w.Bytes())
	f, err := c.ReadF64LE()
	if err != nil || f != 1.0 {
		t.Errorf("F64 round trip: got %v, %v; want 1.0", f, err)
	}
}

func TestWriterSlices(t *testing.T) {
	w := NewWriter()
	w.WriteU16SliceLE([]uint16{0x0102, 0x0304})
	want := []byte{0x02, 0x01, 0x04, 0x03}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteU16SliceLE: got %v, want %v", w.Bytes(), want)
	}

	w = NewWriter()
	w.WriteU32SliceLE([]uint32{1, 2})
	want = []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteU32SliceLE: got %v, want %v", w.Bytes(), want)
	}
}

func TestRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Byte(0x01)
	w.WriteU16LE(512)
	w.WriteU32LE(100000)
	w.WriteF64LE(123.456)
	w.WriteU32SliceLE([]uint32{7, 8, 9})

	c := NewCursor(w.Bytes())

	b, err := c.ReadByte()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadByte: got 0x%02x, %v", b, err)
	}
	u16, err := c.ReadU16LE()
	if err != nil || u16 != 512 {
		t.Fatalf("ReadU16LE: got %d, %v", u16, err)
	}
	u32, err := c.ReadU32LE()
	if err != nil || u32 != 100000 {
		t.Fatalf("ReadU32LE: got %d, %v", u32, err)
	}
	f, err := c.ReadF64LE()
	if err != nil || f != 123.456 {
		t.Fatalf("ReadF64LE: got %v, %v", f, err)
	}

	raw, err := c.ReadBytes(12)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	vs, err := DecodeU32SliceLE(raw)
	if err != nil {
		t.Fatalf("DecodeU32SliceLE: %v", err)
	}
	if len(vs) != 3 || vs[0] != 7 || vs[1] != 8 || vs[2] != 9 {
		t.Errorf("DecodeU32SliceLE: got %v, want [7 8 9]", vs)
	}
}
