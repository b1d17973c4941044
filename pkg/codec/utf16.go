package codec

import (
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeUTF16(raw []byte) string {
	n := len(raw) &^ 1
	for i := 0; i < n; i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			n = i
			break
		}
	}
	if n == 0 {
		return ""
	}
	out, err := utf16le.NewDecoder().Bytes(raw[:n])
	if err != nil {
		return ""
	}
	return string(out)
}

func encodeUTF16(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return utf16le.NewEncoder().Bytes([]byte(s))
}

// UTF16Len returns how many UTF-16 code units s occupies in a string slot
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if utf16.IsSurrogate(r) || r < 0x10000 {
			n++
			continue
		}
		n += 2
	}
	return n
}
