package codec

import (
	"errors"
	"fmt"
)

// ErrStringTooLong is returned when a string does not fit its slot
var ErrStringTooLong = errors.New("string exceeds slot capacity")

// Buffer is a fixed-size byte buffer read and written through Fields.
// Reads outside the buffer return zero values and writes outside it are ignored.
type Buffer struct {
	data []byte
}

// NewBuffer creates a zeroed buffer of size bytes
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// FromBytes copies b into a new buffer of exactly size bytes, zero-padding
// short input and dropping anything past size.
func FromBytes(b []byte, size int) *Buffer {
	buf := NewBuffer(size)
	copy(buf.data, b)
	return buf
}

// Len returns the buffer size in bytes
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns a copy of the buffer contents
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Buffer) slice(f Field) []byte {
	if !f.Fits(len(b.data)) {
		return nil
	}
	return b.data[f.Offset:f.End()]
}

func (b *Buffer) U8(f Field) uint8 {
	return getLE[uint8](b.slice(f))
}

func (b *Buffer) SetU8(f Field, v uint8) {
	putLE(b.slice(f), v)
}

func (b *Buffer) S8(f Field) int8 {
	return int8(b.U8(f))
}

func (b *Buffer) SetS8(f Field, v int8) {
	b.SetU8(f, uint8(v))
}

func (b *Buffer) U16(f Field) uint16 {
	return getLE[uint16](b.slice(f))
}

func (b *Buffer) SetU16(f Field, v uint16) {
	putLE(b.slice(f), v)
}

func (b *Buffer) U32(f Field) uint32 {
	return getLE[uint32](b.slice(f))
}

func (b *Buffer) SetU32(f Field, v uint32) {
	putLE(b.slice(f), v)
}

// Bool reports whether the field byte equals 1
func (b *Buffer) Bool(f Field) bool {
	return b.U8(f) == 1
}

func (b *Buffer) SetBool(f Field, v bool) {
	var x uint8
	if v {
		x = 1
	}
	b.SetU8(f, x)
}

// String decodes a UTF-16LE slot up to its first NUL code unit
func (b *Buffer) String(f Field) string {
	return decodeUTF16(b.slice(f))
}

// SetString writes s into a UTF-16LE slot and zero-fills the remainder.
// Strings longer than the slot capacity are rejected and leave the slot unchanged.
func (b *Buffer) SetString(f Field, s string) error {
	raw, err := encodeUTF16(s)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", f.Name, err)
	}
	if n := len(raw) / 2; n > f.Capacity() {
		return fmt.Errorf("%w: %s holds %d characters, got %d", ErrStringTooLong, f.Name, f.Capacity(), n)
	}
	dst := b.slice(f)
	if dst == nil {
		return fmt.Errorf("field %s outside %d byte buffer", f.Name, len(b.data))
	}
	clear(dst)
	copy(dst, raw)
	return nil
}

// Flag reads a single named bit
func (b *Buffer) Flag(fl Flag) bool {
	set := b.U8(fl.Field)&fl.mask() != 0
	return set != fl.Inverted
}

// SetFlag writes a single named bit, leaving the other bits of the byte alone
func (b *Buffer) SetFlag(fl Flag, v bool) {
	cur := b.U8(fl.Field)
	if v != fl.Inverted {
		cur |= fl.mask()
	} else {
		cur &^= fl.mask()
	}
	b.SetU8(fl.Field, cur)
}
