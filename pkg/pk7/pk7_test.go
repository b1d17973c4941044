package pk7

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/wondercard/pkg/ribbon"
)

type ppTable map[int]int

func (t ppTable) MovePP(move int) int { return t[move] }

func sample() *PK7 {
	met := time.Date(2017, time.November, 17, 0, 0, 0, 0, time.UTC)
	pk := &PK7{
		EncryptionConstant: 0xDEADBEEF,
		Species:            25,
		Form:               7,
		HeldItem:           4,
		TID:                12345,
		SID:                54321,
		EXP:                1000,
		Ability:            31,
		AbilityNumber:      4,
		PID:                0x12345678,
		Nature:             13,
		FatefulEncounter:   true,
		Gender:             1,
		EVs:                [6]int{1, 2, 3, 4, 5, 6},
		ContestStats:       [6]int{10, 20, 30, 40, 50, 60},
		Nickname:           "Sparky",
		IsNicknamed:        true,
		Moves:              [4]int{85, 98, 0, 0},
		MovePP:             [4]int{15, 30, 0, 0},
		MovePPUps:          [4]int{1, 0, 0, 0},
		RelearnMoves:       [4]int{344, 0, 0, 0},
		IVs:                [6]int{31, 30, 29, 28, 27, 26},
		HTName:             "Ash",
		HTGender:           0,
		HTFriendship:       70,
		CurrentHandler:     1,
		OTName:             "Satoshi",
		OTGender:           1,
		OTFriendship:       70,
		OTIntensity:        1,
		OTMemory:           4,
		OTTextVar:          300,
		OTFeeling:          5,
		MetDate:            &met,
		MetLocation:        40001,
		Ball:               4,
		MetLevel:           10,
		Version:            31,
		Country:            49,
		Region:             7,
		ConsoleRegion:      1,
		Language:           2,
	}
	pk.Ribbons = pk.Ribbons.With(ribbon.Event, true).With(ribbon.ChampionWorld, true)
	return pk
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pk := sample()
	pk.RefreshChecksum()

	data := pk.Encode()
	require.Len(t, data, Size)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, pk, got)
	assert.True(t, got.ChecksumValid())
}

func TestDecodeRejectsWrongSize(t *testing.T) {
	_, err := Decode(make([]byte, Size-1))
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestEncodeLayout(t *testing.T) {
	pk := sample()
	pk.RefreshChecksum()
	data := pk.Encode()

	assert.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, data[0x00:0x04])
	assert.Equal(t, []byte{25, 0}, data[0x08:0x0A])
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, data[0x18:0x1C])
	// fateful | female << 1 | form 7 << 3
	assert.Equal(t, byte(0x01|0x02|0x38), data[0x1D])
	assert.Equal(t, byte(1<<4), data[0x33], "event ribbon")
	assert.Equal(t, byte(1<<4), data[0x34], "world champion ribbon")
	assert.Equal(t, byte(10|0x80), data[0xDD], "met level with female trainer")
	assert.Equal(t, []byte{17, 11, 17}, data[0xD4:0xD7])
	assert.Equal(t, byte(31), data[0xDF])

	iv32 := uint32(data[0x74]) | uint32(data[0x75])<<8 | uint32(data[0x76])<<16 | uint32(data[0x77])<<24
	assert.Equal(t, uint32(31), iv32&0x1F)
	assert.NotZero(t, iv32&(1<<31), "nickname flag")
	assert.Zero(t, iv32&(1<<30), "egg flag")

	stored := uint16(data[0x06]) | uint16(data[0x07])<<8
	assert.Equal(t, pk.Checksum, stored)
}

func TestChecksum(t *testing.T) {
	data := make([]byte, Size)
	assert.Equal(t, uint16(0), CalculateChecksum(data))

	// words before 0x08 are not summed
	data[0x00] = 0xFF
	data[0x06] = 0xFF
	assert.Equal(t, uint16(0), CalculateChecksum(data))

	data[0x08] = 0x01
	data[0x09] = 0x02
	data[0xE6] = 0x03
	assert.Equal(t, uint16(0x0204), CalculateChecksum(data))

	// the sum wraps at 16 bits
	for i := 0x08; i < Size; i++ {
		data[i] = 0xFF
	}
	words := (Size - 0x08) / 2
	assert.Equal(t, uint16(words*0xFFFF), CalculateChecksum(data))
}

func TestChecksumTracksChanges(t *testing.T) {
	pk := sample()
	pk.RefreshChecksum()
	require.True(t, pk.ChecksumValid())

	pk.Species++
	assert.False(t, pk.ChecksumValid())
	pk.RefreshChecksum()
	assert.True(t, pk.ChecksumValid())
}

func TestShiny(t *testing.T) {
	tests := []struct {
		name  string
		pid   uint32
		tid   int
		sid   int
		shiny bool
	}{
		{"xor zero", 0x00000000, 0, 0, true},
		{"xor fifteen", 0x0000000F, 0, 0, true},
		{"xor sixteen", 0x00000010, 0, 0, false},
		{"matching halves", 0x12341234, 0, 0, true},
		{"trainer cancels pid", 0xABCD0000, 0xABCD, 0, true},
		{"plain", 0x12345678, 12345, 54321, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pk := &PK7{PID: tt.pid, TID: tt.tid, SID: tt.sid}
			assert.Equal(t, tt.shiny, pk.IsShiny())
			assert.Equal(t, tt.shiny, pk.PSV() == pk.TSV() && ShinyXor(tt.pid, tt.tid, tt.sid) < ShinyThreshold)
		})
	}
}

func TestSetMaximumPPCurrent(t *testing.T) {
	pk := &PK7{
		Moves:     [4]int{33, 85, 0, 98},
		MovePPUps: [4]int{0, 3, 2, 1},
		MovePP:    [4]int{1, 1, 9, 1},
	}
	pk.SetMaximumPPCurrent(ppTable{33: 35, 85: 15, 98: 30})

	assert.Equal(t, [4]int{35, 24, 0, 36}, pk.MovePP)
}

func TestCurrentFriendshipFollowsHandler(t *testing.T) {
	pk := &PK7{}
	pk.SetCurrentFriendship(70)
	assert.Equal(t, 70, pk.OTFriendship)
	assert.Equal(t, 0, pk.HTFriendship)

	pk.CurrentHandler = 1
	pk.SetCurrentFriendship(5)
	assert.Equal(t, 70, pk.OTFriendship)
	assert.Equal(t, 5, pk.HTFriendship)
	assert.Equal(t, 5, pk.CurrentFriendship())
}

func TestSetIVsClamps(t *testing.T) {
	pk := &PK7{}
	pk.SetIVs([6]int{-1, 0, 15, 31, 32, 255})
	assert.Equal(t, [6]int{0, 0, 15, 31, 31, 31}, pk.IVs)
}

func TestLongNamesAreCut(t *testing.T) {
	pk := sample()
	pk.OTName = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	got, err := Decode(pk.Encode())
	require.NoError(t, err)
	assert.Equal(t, "ABCDEFGHIJKL", got.OTName)
}
