package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/wondercard/pkg/wondercard"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	card := testCard(9)
	data := encode(card)
	require.Len(t, data, valueSize)
	assert.Equal(t, []byte{0b0011, 2}, data[crcSize:headerSize])

	got, err := decode(data)
	require.NoError(t, err)
	assert.Equal(t, card.Bytes(), got.Bytes())
	assert.Equal(t, card.RestrictVersion, got.RestrictVersion)
	assert.Equal(t, card.RestrictLanguage, got.RestrictLanguage)
}

func TestDecodeRejectsShortValues(t *testing.T) {
	_, err := decode(make([]byte, wondercard.Size))
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestDecodeRejectsFlippedBits(t *testing.T) {
	tests := []struct {
		name   string
		offset int
	}{
		{"crc", 0},
		{"restriction", crcSize},
		{"record", headerSize + 0x10},
		{"last byte", valueSize - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encode(testCard(1))
			data[tt.offset] ^= 0x40
			_, err := decode(data)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
