package codec

import "fmt"

// Kind identifies how the bytes of a Field are interpreted
type Kind uint8

const (
	KindU8 Kind = iota
	KindS8
	KindU16
	KindU32
	KindBool
	KindUTF16
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindS8:
		return "s8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindBool:
		return "bool"
	case KindUTF16:
		return "utf16"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Field describes a single value stored at a fixed offset of a record
type Field struct {
	Name   string
	Offset int
	Size   int
	Kind   Kind
}

// U8 declares an unsigned byte field
func U8(name string, offset int) Field { return Field{Name: name, Offset: offset, Size: 1, Kind: KindU8} }

// S8 declares a signed byte field
func S8(name string, offset int) Field { return Field{Name: name, Offset: offset, Size: 1, Kind: KindS8} }

// U16 declares a little-endian uint16 field
func U16(name string, offset int) Field { return Field{Name: name, Offset: offset, Size: 2, Kind: KindU16} }

// U32 declares a little-endian uint32 field
func U32(name string, offset int) Field { return Field{Name: name, Offset: offset, Size: 4, Kind: KindU32} }

// Bool declares a byte field holding 0 or 1
func Bool(name string, offset int) Field { return Field{Name: name, Offset: offset, Size: 1, Kind: KindBool} }

// UTF16 declares a fixed-width UTF-16LE string slot of size bytes,
// including room for the NUL terminator.
func UTF16(name string, offset, size int) Field {
	return Field{Name: name, Offset: offset, Size: size, Kind: KindUTF16}
}

// End returns the offset one past the last byte of the field
func (f Field) End() int {
	return f.Offset + f.Size
}

// Shift returns a copy of the field moved by delta bytes
func (f Field) Shift(delta int) Field {
	f.Offset += delta
	return f
}

// Capacity returns how many UTF-16 code units a string slot can hold
// before its terminator. It is zero for non-string fields.
func (f Field) Capacity() int {
	if f.Kind != KindUTF16 {
		return 0
	}
	return f.Size/2 - 1
}

// Overlaps reports whether the two fields share at least one byte
func (f Field) Overlaps(o Field) bool {
	return f.Offset < o.End() && o.Offset < f.End()
}

// Fits reports whether the field lies entirely inside a buffer of size bytes
func (f Field) Fits(size int) bool {
	return f.Offset >= 0 && f.Size > 0 && f.End() <= size
}

func (f Field) String() string {
	return fmt.Sprintf("%s@0x%02X/%d(%s)", f.Name, f.Offset, f.Size, f.Kind)
}
