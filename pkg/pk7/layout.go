package pk7

import (
	"errors"
	"fmt"
	"time"

	"github.com/ssargent/wondercard/pkg/codec"
	"github.com/ssargent/wondercard/pkg/ribbon"
)

// ErrInvalidSize is returned when decoding a record of the wrong length
var ErrInvalidSize = errors.New("invalid pk7 size")

var (
	fEncryptionConstant = codec.U32("encryption_constant", 0x00)
	fChecksum           = codec.U16("checksum", 0x06)
	fSpecies            = codec.U16("species", 0x08)
	fHeldItem           = codec.U16("held_item", 0x0A)
	fTID                = codec.U16("tid", 0x0C)
	fSID                = codec.U16("sid", 0x0E)
	fEXP                = codec.U32("exp", 0x10)
	fAbility            = codec.U8("ability", 0x14)
	fAbilityNumber      = codec.U8("ability_number", 0x15)
	fPID                = codec.U32("pid", 0x18)
	fNature             = codec.U8("nature", 0x1C)
	fFlags1D            = codec.U8("fateful_gender_form", 0x1D)
	fEVs                = codec.U8("ev_hp", 0x1E)
	fContest            = codec.U8("cnt_cool", 0x24)
	fNickname           = codec.UTF16("nickname", 0x40, 0x1A)
	fMoves              = codec.U16("move_1", 0x5A)
	fMovePP             = codec.U8("move_1_pp", 0x62)
	fMovePPUps          = codec.U8("move_1_pp_ups", 0x66)
	fRelearnMoves       = codec.U16("relearn_1", 0x6A)
	fIV32               = codec.U32("iv32", 0x74)
	fHTName             = codec.UTF16("ht_name", 0x78, 0x1A)
	fHTGender           = codec.U8("ht_gender", 0x92)
	fCurrentHandler     = codec.U8("current_handler", 0x93)
	fHTFriendship       = codec.U8("ht_friendship", 0xA2)
	fOTName             = codec.UTF16("ot_name", 0xB0, 0x1A)
	fOTFriendship       = codec.U8("ot_friendship", 0xCA)
	fOTIntensity        = codec.U8("ot_intensity", 0xCC)
	fOTMemory           = codec.U8("ot_memory", 0xCD)
	fOTTextVar          = codec.U16("ot_text_var", 0xCE)
	fOTFeeling          = codec.U8("ot_feeling", 0xD0)
	fEggDate            = codec.U8("egg_year", 0xD1)
	fMetDate            = codec.U8("met_year", 0xD4)
	fEggLocation        = codec.U16("egg_location", 0xD8)
	fMetLocation        = codec.U16("met_location", 0xDA)
	fBall               = codec.U8("ball", 0xDC)
	fMetLevelOTGender   = codec.U8("met_level_ot_gender", 0xDD)
	fVersion            = codec.U8("version", 0xDF)
	fCountry            = codec.U8("country", 0xE0)
	fRegion             = codec.U8("region", 0xE1)
	fConsoleRegion      = codec.U8("console_region", 0xE2)
	fLanguage           = codec.U8("language", 0xE3)
)

// ribbonBits places each event ribbon in the stored ribbon bytes
var ribbonBits = map[ribbon.Ribbon]codec.Flag{
	ribbon.Country:          {Field: codec.U8("ribbons_2", 0x32), Bit: 6},
	ribbon.National:         {Field: codec.U8("ribbons_2", 0x32), Bit: 7},
	ribbon.Earth:            {Field: codec.U8("ribbons_3", 0x33), Bit: 0},
	ribbon.World:            {Field: codec.U8("ribbons_3", 0x33), Bit: 1},
	ribbon.Classic:          {Field: codec.U8("ribbons_3", 0x33), Bit: 2},
	ribbon.Premier:          {Field: codec.U8("ribbons_3", 0x33), Bit: 3},
	ribbon.Event:            {Field: codec.U8("ribbons_3", 0x33), Bit: 4},
	ribbon.Birthday:         {Field: codec.U8("ribbons_3", 0x33), Bit: 5},
	ribbon.Special:          {Field: codec.U8("ribbons_3", 0x33), Bit: 6},
	ribbon.Souvenir:         {Field: codec.U8("ribbons_3", 0x33), Bit: 7},
	ribbon.Wishing:          {Field: codec.U8("ribbons_4", 0x34), Bit: 0},
	ribbon.ChampionBattle:   {Field: codec.U8("ribbons_4", 0x34), Bit: 1},
	ribbon.ChampionRegional: {Field: codec.U8("ribbons_4", 0x34), Bit: 2},
	ribbon.ChampionNational: {Field: codec.U8("ribbons_4", 0x34), Bit: 3},
	ribbon.ChampionWorld:    {Field: codec.U8("ribbons_4", 0x34), Bit: 4},
}

// Encode returns the stored form of the creature, including its current checksum
func (pk *PK7) Encode() []byte {
	buf := pk.encode()
	buf.SetU16(fChecksum, pk.Checksum)
	return buf.Bytes()
}

func (pk *PK7) encodeBody() []byte {
	return pk.encode().Bytes()
}

func (pk *PK7) encode() *codec.Buffer {
	b := codec.NewBuffer(Size)

	b.SetU32(fEncryptionConstant, pk.EncryptionConstant)
	b.SetU16(fSpecies, uint16(pk.Species))
	b.SetU16(fHeldItem, uint16(pk.HeldItem))
	b.SetU16(fTID, uint16(pk.TID))
	b.SetU16(fSID, uint16(pk.SID))
	b.SetU32(fEXP, pk.EXP)
	b.SetU8(fAbility, uint8(pk.Ability))
	b.SetU8(fAbilityNumber, uint8(pk.AbilityNumber&7))
	b.SetU32(fPID, pk.PID)
	b.SetU8(fNature, uint8(pk.Nature))

	var flags uint8
	if pk.FatefulEncounter {
		flags |= 1
	}
	flags |= uint8(pk.Gender&3) << 1
	flags |= uint8(pk.Form&0x1F) << 3
	b.SetU8(fFlags1D, flags)

	for i := 0; i < 6; i++ {
		b.SetU8(fEVs.Shift(i), uint8(pk.EVs[i]))
		b.SetU8(fContest.Shift(i), uint8(pk.ContestStats[i]))
	}
	for r, fl := range ribbonBits {
		b.SetFlag(fl, pk.Ribbons.Has(r))
	}

	// Names were length checked by the generator; anything longer is cut to fit.
	setName(b, fNickname, pk.Nickname)
	setName(b, fHTName, pk.HTName)
	setName(b, fOTName, pk.OTName)

	for i := 0; i < 4; i++ {
		b.SetU16(fMoves.Shift(2*i), uint16(pk.Moves[i]))
		b.SetU8(fMovePP.Shift(i), uint8(pk.MovePP[i]))
		b.SetU8(fMovePPUps.Shift(i), uint8(pk.MovePPUps[i]))
		b.SetU16(fRelearnMoves.Shift(2*i), uint16(pk.RelearnMoves[i]))
	}

	var iv32 uint32
	for i, iv := range pk.IVs {
		iv32 |= uint32(iv&0x1F) << (5 * i)
	}
	if pk.IsEgg {
		iv32 |= 1 << 30
	}
	if pk.IsNicknamed {
		iv32 |= 1 << 31
	}
	b.SetU32(fIV32, iv32)

	b.SetU8(fHTGender, uint8(pk.HTGender))
	b.SetU8(fCurrentHandler, uint8(pk.CurrentHandler))
	b.SetU8(fHTFriendship, uint8(pk.HTFriendship))
	b.SetU8(fOTFriendship, uint8(pk.OTFriendship))
	b.SetU8(fOTIntensity, uint8(pk.OTIntensity))
	b.SetU8(fOTMemory, uint8(pk.OTMemory))
	b.SetU16(fOTTextVar, uint16(pk.OTTextVar))
	b.SetU8(fOTFeeling, uint8(pk.OTFeeling))

	setDate(b, fEggDate, pk.EggMetDate)
	setDate(b, fMetDate, pk.MetDate)

	b.SetU16(fEggLocation, uint16(pk.EggLocation))
	b.SetU16(fMetLocation, uint16(pk.MetLocation))
	b.SetU8(fBall, uint8(pk.Ball))
	b.SetU8(fMetLevelOTGender, uint8(pk.MetLevel&0x7F)|uint8(pk.OTGender&1)<<7)
	b.SetU8(fVersion, uint8(pk.Version))
	b.SetU8(fCountry, uint8(pk.Country))
	b.SetU8(fRegion, uint8(pk.Region))
	b.SetU8(fConsoleRegion, uint8(pk.ConsoleRegion))
	b.SetU8(fLanguage, uint8(pk.Language))
	return b
}

// Decode parses a stored creature record
func Decode(data []byte) (*PK7, error) {
	if len(data) != Size {
		return nil, fmt.Errorf("%w: %d != %d", ErrInvalidSize, len(data), Size)
	}
	b := codec.FromBytes(data, Size)

	pk := &PK7{
		EncryptionConstant: b.U32(fEncryptionConstant),
		Checksum:           b.U16(fChecksum),
		Species:            int(b.U16(fSpecies)),
		HeldItem:           int(b.U16(fHeldItem)),
		TID:                int(b.U16(fTID)),
		SID:                int(b.U16(fSID)),
		EXP:                b.U32(fEXP),
		Ability:            int(b.U8(fAbility)),
		AbilityNumber:      int(b.U8(fAbilityNumber) & 7),
		PID:                b.U32(fPID),
		Nature:             int(b.U8(fNature)),
		Nickname:           b.String(fNickname),
		HTName:             b.String(fHTName),
		HTGender:           int(b.U8(fHTGender)),
		CurrentHandler:     int(b.U8(fCurrentHandler)),
		HTFriendship:       int(b.U8(fHTFriendship)),
		OTName:             b.String(fOTName),
		OTFriendship:       int(b.U8(fOTFriendship)),
		OTIntensity:        int(b.U8(fOTIntensity)),
		OTMemory:           int(b.U8(fOTMemory)),
		OTTextVar:          int(b.U16(fOTTextVar)),
		OTFeeling:          int(b.U8(fOTFeeling)),
		EggMetDate:         getDate(b, fEggDate),
		MetDate:            getDate(b, fMetDate),
		EggLocation:        int(b.U16(fEggLocation)),
		MetLocation:        int(b.U16(fMetLocation)),
		Ball:               int(b.U8(fBall)),
		Version:            int(b.U8(fVersion)),
		Country:            int(b.U8(fCountry)),
		Region:             int(b.U8(fRegion)),
		ConsoleRegion:      int(b.U8(fConsoleRegion)),
		Language:           int(b.U8(fLanguage)),
	}

	flags := b.U8(fFlags1D)
	pk.FatefulEncounter = flags&1 != 0
	pk.Gender = int(flags>>1) & 3
	pk.Form = int(flags >> 3)

	for i := 0; i < 6; i++ {
		pk.EVs[i] = int(b.U8(fEVs.Shift(i)))
		pk.ContestStats[i] = int(b.U8(fContest.Shift(i)))
	}
	for r, fl := range ribbonBits {
		pk.Ribbons = pk.Ribbons.With(r, b.Flag(fl))
	}
	for i := 0; i < 4; i++ {
		pk.Moves[i] = int(b.U16(fMoves.Shift(2 * i)))
		pk.MovePP[i] = int(b.U8(fMovePP.Shift(i)))
		pk.MovePPUps[i] = int(b.U8(fMovePPUps.Shift(i)))
		pk.RelearnMoves[i] = int(b.U16(fRelearnMoves.Shift(2 * i)))
	}

	iv32 := b.U32(fIV32)
	for i := range pk.IVs {
		pk.IVs[i] = int(iv32>>(5*i)) & 0x1F
	}
	pk.IsEgg = iv32&(1<<30) != 0
	pk.IsNicknamed = iv32&(1<<31) != 0

	mlog := b.U8(fMetLevelOTGender)
	pk.MetLevel = int(mlog & 0x7F)
	pk.OTGender = int(mlog >> 7)
	return pk, nil
}

// CalculateChecksum sums the little-endian words after the checksum field
func CalculateChecksum(data []byte) uint16 {
	var sum uint16
	for i := 8; i+1 < len(data) && i < Size; i += 2 {
		sum += uint16(data[i]) | uint16(data[i+1])<<8
	}
	return sum
}

func setName(b *codec.Buffer, f codec.Field, name string) {
	runes := []rune(name)
	for len(runes) > 0 {
		if err := b.SetString(f, string(runes)); err == nil {
			return
		}
		runes = runes[:len(runes)-1]
	}
	_ = b.SetString(f, "")
}

func setDate(b *codec.Buffer, year codec.Field, t *time.Time) {
	if t == nil {
		return
	}
	b.SetU8(year, uint8(t.Year()-codec.DateEpoch))
	b.SetU8(year.Shift(1), uint8(t.Month()))
	b.SetU8(year.Shift(2), uint8(t.Day()))
}

func getDate(b *codec.Buffer, year codec.Field) *time.Time {
	y := int(b.U8(year)) + codec.DateEpoch
	m := int(b.U8(year.Shift(1)))
	d := int(b.U8(year.Shift(2)))
	if !codec.IsDateValid(y, m, d) {
		return nil
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}
