package codec

import (
	"errors"
	"strings"
	"testing"
)

func TestBuffer_IntegerRoundTrip(t *testing.T) {
	buf := NewBuffer(16)

	testCases := []struct {
		name  string
		field Field
		value uint32
	}{
		{name: "u8", field: U8("a", 0), value: 0xAB},
		{name: "u16", field: U16("b", 2), value: 0xBEEF},
		{name: "u32", field: U32("c", 4), value: 0xDEADBEEF},
		{name: "u16 at tail", field: U16("d", 14), value: 0x0102},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got uint32
			switch tc.field.Kind {
			case KindU8:
				buf.SetU8(tc.field, uint8(tc.value))
				got = uint32(buf.U8(tc.field))
			case KindU16:
				buf.SetU16(tc.field, uint16(tc.value))
				got = uint32(buf.U16(tc.field))
			case KindU32:
				buf.SetU32(tc.field, tc.value)
				got = buf.U32(tc.field)
			}
			if got != tc.value {
				t.Errorf("round trip mismatch: got 0x%X, want 0x%X", got, tc.value)
			}
		})
	}
}

func TestBuffer_LittleEndian(t *testing.T) {
	buf := NewBuffer(8)
	buf.SetU32(U32("v", 0), 0x04030201)
	buf.SetU16(U16("w", 4), 0x0605)

	want := []byte{1, 2, 3, 4, 5, 6, 0, 0}
	got := buf.Bytes()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestBuffer_SignedByte(t *testing.T) {
	buf := NewBuffer(1)
	f := S8("nature", 0)

	buf.SetS8(f, -1)
	if got := buf.U8(U8("raw", 0)); got != 0xFF {
		t.Errorf("raw byte: got 0x%X, want 0xFF", got)
	}
	if got := buf.S8(f); got != -1 {
		t.Errorf("signed read: got %d, want -1", got)
	}
}

func TestBuffer_OutOfRange(t *testing.T) {
	buf := NewBuffer(4)
	f := U32("past end", 2)

	buf.SetU32(f, 0xFFFFFFFF)
	if got := buf.U32(f); got != 0 {
		t.Errorf("expected zero read outside buffer, got 0x%X", got)
	}
	for i, b := range buf.Bytes() {
		if b != 0 {
			t.Errorf("byte %d modified by out-of-range write", i)
		}
	}
}

func TestBuffer_Bytes_IsCopy(t *testing.T) {
	buf := NewBuffer(2)
	out := buf.Bytes()
	out[0] = 0x55
	if buf.U8(U8("x", 0)) != 0 {
		t.Error("mutating Bytes() result changed the buffer")
	}
}

func TestFromBytes_Resizes(t *testing.T) {
	short := FromBytes([]byte{1, 2}, 4)
	if short.Len() != 4 || short.U8(U8("x", 1)) != 2 || short.U8(U8("y", 3)) != 0 {
		t.Errorf("short input not zero padded: %v", short.Bytes())
	}

	long := FromBytes([]byte{1, 2, 3, 4, 5}, 3)
	if long.Len() != 3 || long.U8(U8("z", 2)) != 3 {
		t.Errorf("long input not truncated: %v", long.Bytes())
	}
}

func TestBuffer_Strings(t *testing.T) {
	slot := UTF16("name", 2, 0x1A)

	t.Run("round trip", func(t *testing.T) {
		buf := NewBuffer(0x20)
		for _, s := range []string{"", "Ash", "ポケモン", "Émile", strings.Repeat("x", 12)} {
			if err := buf.SetString(slot, s); err != nil {
				t.Fatalf("SetString(%q): %v", s, err)
			}
			if got := buf.String(slot); got != s {
				t.Errorf("got %q, want %q", got, s)
			}
		}
	})

	t.Run("shorter write clears tail", func(t *testing.T) {
		buf := NewBuffer(0x20)
		if err := buf.SetString(slot, "LONGERNAME"); err != nil {
			t.Fatal(err)
		}
		if err := buf.SetString(slot, "Al"); err != nil {
			t.Fatal(err)
		}
		raw := buf.Bytes()
		for i := slot.Offset + 4; i < slot.End(); i++ {
			if raw[i] != 0 {
				t.Fatalf("byte 0x%X not cleared", i)
			}
		}
	})

	t.Run("too long is rejected", func(t *testing.T) {
		buf := NewBuffer(0x20)
		if err := buf.SetString(slot, "Red"); err != nil {
			t.Fatal(err)
		}
		err := buf.SetString(slot, strings.Repeat("y", 13))
		if !errors.Is(err, ErrStringTooLong) {
			t.Fatalf("expected ErrStringTooLong, got %v", err)
		}
		if got := buf.String(slot); got != "Red" {
			t.Errorf("rejected write modified slot: %q", got)
		}
	})

	t.Run("neighbours untouched", func(t *testing.T) {
		buf := NewBuffer(0x20)
		before := U8("before", 1)
		after := U8("after", slot.End())
		buf.SetU8(before, 0x11)
		buf.SetU8(after, 0x22)
		if err := buf.SetString(slot, strings.Repeat("z", 12)); err != nil {
			t.Fatal(err)
		}
		if buf.U8(before) != 0x11 || buf.U8(after) != 0x22 {
			t.Error("string write overran its slot")
		}
	})

	t.Run("read stops at NUL", func(t *testing.T) {
		raw := make([]byte, 0x20)
		copy(raw[2:], []byte{'A', 0, 0, 0, 'B', 0})
		buf := FromBytes(raw, len(raw))
		if got := buf.String(slot); got != "A" {
			t.Errorf("got %q, want %q", got, "A")
		}
	})
}

func TestUTF16Len_MatchesSlotCapacity(t *testing.T) {
	slot := UTF16("name", 0, 0x1A)
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"Ash", 3},
		{"ポケモン", 4},
		{"\U0001F600", 2},
		{strings.Repeat("x", 10) + "\U0001F600", 12},
		{strings.Repeat("x", 11) + "\U0001F600", 13},
	}

	for _, tt := range tests {
		if got := UTF16Len(tt.s); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.s, got, tt.want)
		}
		err := NewBuffer(0x1A).SetString(slot, tt.s)
		if fits := tt.want <= slot.Capacity(); fits != (err == nil) {
			t.Errorf("SetString(%q) err = %v, want fits = %v", tt.s, err, fits)
		}
	}
}

func TestBuffer_Flags(t *testing.T) {
	field := U8("flags", 0)
	flags := []Flag{
		{Name: "repeatable", Field: field, Bit: 0, Inverted: true},
		{Name: "used", Field: field, Bit: 1},
		{Name: "once per day", Field: field, Bit: 2},
		{Name: "high", Field: field, Bit: 7},
	}

	for _, fl := range flags {
		t.Run(fl.Name, func(t *testing.T) {
			for _, seed := range []uint8{0x00, 0xFF, 0xA5, 0x5A} {
				buf := NewBuffer(1)
				buf.SetU8(field, seed)

				for _, v := range []bool{true, false, true} {
					buf.SetFlag(fl, v)
					if got := buf.Flag(fl); got != v {
						t.Errorf("seed 0x%02X: got %v, want %v", seed, got, v)
					}
					others := buf.U8(field) &^ fl.mask()
					if others != seed&^fl.mask() {
						t.Errorf("seed 0x%02X: unrelated bits changed to 0x%02X", seed, others)
					}
				}
			}
		})
	}
}

func TestBuffer_InvertedFlagDefault(t *testing.T) {
	buf := NewBuffer(1)
	fl := Flag{Name: "repeatable", Field: U8("flags", 0), Bit: 0, Inverted: true}
	if !buf.Flag(fl) {
		t.Error("inverted flag should read true on a zero byte")
	}
	buf.SetFlag(fl, false)
	if buf.U8(fl.Field) != 1 {
		t.Errorf("clearing an inverted flag should set the bit, got 0x%02X", buf.U8(fl.Field))
	}
}

func TestField_Geometry(t *testing.T) {
	a := U16("a", 0x10)
	b := U16("b", 0x11)
	c := U32("c", 0x12)

	if !a.Overlaps(b) {
		t.Error("a and b should overlap")
	}
	if a.Overlaps(c) {
		t.Error("a and c should not overlap")
	}
	if got := UTF16("s", 0, 0x1A).Capacity(); got != 12 {
		t.Errorf("capacity: got %d, want 12", got)
	}
	if a.Shift(4).Offset != 0x14 {
		t.Error("Shift did not move the offset")
	}
	if !c.Fits(0x16) || c.Fits(0x15) {
		t.Error("Fits boundary is wrong")
	}
}
