// Package codec provides typed access to fixed-layout binary records.
//
// Gift records and the creature records generated from them are flat byte
// arrays whose values live at documented offsets. Instead of scattering
// offsets through the code, each value is declared once as a Field and the
// record types keep their fields in a table. Buffer reads and writes values
// through those fields.
//
// # Fields
//
// A Field is a name, an offset, a size and a Kind:
//
//	var species = codec.U16("species", 0x82)
//	var nickname = codec.UTF16("nickname", 0x86, 0x1A)
//
// Multi-byte integers are little-endian. String slots hold UTF-16LE code
// units followed by a NUL terminator, so a 0x1A byte slot has a capacity of
// 12 characters.
//
// # Buffers
//
// Buffer owns a fixed-size byte slice:
//
//	buf := codec.NewBuffer(0x108)
//	buf.SetU16(species, 25)
//	if err := buf.SetString(nickname, "Pika"); err != nil {
//	    return err
//	}
//
// Reads of a field that does not fit the buffer return the zero value and
// writes to such a field are ignored. Strings longer than their slot are
// rejected with ErrStringTooLong; the slot is left as it was.
//
// # Flags
//
// A Flag names one bit of a byte field. Inverted flags read true when the
// bit is clear, which matches record formats that store "not repeatable"
// rather than "repeatable". Setting a flag never touches the other bits.
//
// # Dates
//
// Packed dates store (year-2000)*10000 + month*100 + day in a uint32.
// DecodeDate reports false for zero and calendar-invalid values instead of
// returning an error.
//
// # Thread Safety
//
// Buffer is not safe for concurrent mutation. Callers that share a record
// between goroutines must synchronize access.
package codec
