package codec

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// getLE reads a little-endian unsigned integer from the start of b.
// Returns 0 when b is too short.
func getLE[T constraints.Unsigned](b []byte) T {
	var v T
	n := int(unsafe.Sizeof(v))
	if len(b) < n {
		return 0
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | T(b[i])
	}
	return v
}

// putLE writes v little-endian at the start of b. Short slices are left untouched.
func putLE[T constraints.Unsigned](b []byte, v T) {
	n := int(unsafe.Sizeof(v))
	if len(b) < n {
		return
	}
	for i := 0; i < n; i++ {
		b[i] = byte(v)
		v >>= 8
	}
}
