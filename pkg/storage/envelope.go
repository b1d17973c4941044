package storage

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"github.com/ssargent/wondercard/pkg/wondercard"
)

// Stored value format:
// [CRC32(4)][RestrictVersion(1)][RestrictLanguage(1)][bare record]
// The checksum covers everything after the CRC field.
const (
	crcSize    = 4
	headerSize = crcSize + 2
	valueSize  = headerSize + wondercard.Size
)

func encode(card *wondercard.WC7) []byte {
	buf := make([]byte, crcSize, valueSize)
	buf = append(buf, card.RestrictVersion, card.RestrictLanguage)
	buf = append(buf, card.Bytes()...)
	binary.LittleEndian.PutUint32(buf, crc32.ChecksumIEEE(buf[crcSize:]))
	return buf
}

func decode(data []byte) (*wondercard.WC7, error) {
	if len(data) != valueSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrCorrupt, len(data), valueSize)
	}
	stored := binary.LittleEndian.Uint32(data)
	if sum := crc32.ChecksumIEEE(data[crcSize:]); sum != stored {
		return nil, fmt.Errorf("%w: CRC32 mismatch: %d != %d", ErrCorrupt, stored, sum)
	}

	card := wondercard.Decode(data[headerSize:])
	card.RestrictVersion = data[crcSize]
	card.RestrictLanguage = data[crcSize+1]
	return card, nil
}
