package wondercard

import (
	"fmt"

	"github.com/ssargent/wondercard/pkg/codec"
)

// Sentinel values of the creature fields
const (
	// NatureRandom asks the generator to roll a nature
	NatureRandom = -1
	// GenderRandom asks the generator to roll a species-appropriate gender
	GenderRandom = 3
	// OTGenderRecipient asks the generator to use the recipient's trainer data
	OTGenderRecipient = 3
)

// ShinyType selects how the generator produces the PID
type ShinyType uint8

const (
	// ShinyFixed uses the PID stored on the card
	ShinyFixed ShinyType = 0
	// ShinyRandom rolls a PID without adjusting it
	ShinyRandom ShinyType = 1
	// ShinyAlways rolls a PID and forces it shiny
	ShinyAlways ShinyType = 2
	// ShinyNever rolls a PID and forces it not shiny
	ShinyNever ShinyType = 3
)

func (s ShinyType) String() string {
	switch s {
	case ShinyFixed:
		return "fixed"
	case ShinyRandom:
		return "random"
	case ShinyAlways:
		return "always"
	case ShinyNever:
		return "never"
	default:
		return fmt.Sprintf("shiny(%d)", uint8(s))
	}
}

// Creature views a card as a creature template
type Creature struct {
	card *WC7
}

func (Creature) Type() CardType { return CardPokemon }

func (c Creature) TID() int                        { return int(c.card.buf.U16(fTID)) }
func (c Creature) SetTID(tid int)                  { c.card.buf.SetU16(fTID, uint16(tid)) }
func (c Creature) SID() int                        { return int(c.card.buf.U16(fSID)) }
func (c Creature) SetSID(sid int)                  { c.card.buf.SetU16(fSID, uint16(sid)) }
func (c Creature) OriginGame() int                 { return int(c.card.buf.U8(fOriginGame)) }
func (c Creature) SetOriginGame(v int)             { c.card.buf.SetU8(fOriginGame, uint8(v)) }
func (c Creature) EncryptionConstant() uint32      { return c.card.buf.U32(fEncryptionConstant) }
func (c Creature) SetEncryptionConstant(ec uint32) { c.card.buf.SetU32(fEncryptionConstant, ec) }
func (c Creature) Ball() int                       { return int(c.card.buf.U8(fBall)) }
func (c Creature) SetBall(ball int)                { c.card.buf.SetU8(fBall, uint8(ball)) }
func (c Creature) HeldItem() int                   { return int(c.card.buf.U16(fHeldItem)) }
func (c Creature) SetHeldItem(item int)            { c.card.buf.SetU16(fHeldItem, uint16(item)) }
func (c Creature) Species() int                    { return int(c.card.buf.U16(fSpecies)) }
func (c Creature) SetSpecies(species int)          { c.card.buf.SetU16(fSpecies, uint16(species)) }
func (c Creature) Form() int                       { return int(c.card.buf.U8(fForm)) }
func (c Creature) SetForm(form int)                { c.card.buf.SetU8(fForm, uint8(form)) }
func (c Creature) Language() int                   { return int(c.card.buf.U8(fLanguage)) }
func (c Creature) SetLanguage(lang int)            { c.card.buf.SetU8(fLanguage, uint8(lang)) }

// Nature returns the nature id, or NatureRandom
func (c Creature) Nature() int          { return int(c.card.buf.S8(fNature)) }
func (c Creature) SetNature(nature int) { c.card.buf.SetS8(fNature, int8(nature)) }

// Gender returns 0 male, 1 female, 2 genderless or GenderRandom
func (c Creature) Gender() int                   { return int(c.card.buf.U8(fGender)) }
func (c Creature) SetGender(gender int)          { c.card.buf.SetU8(fGender, uint8(gender)) }
func (c Creature) AbilityType() int              { return int(c.card.buf.U8(fAbilityType)) }
func (c Creature) SetAbilityType(t int)          { c.card.buf.SetU8(fAbilityType, uint8(t)) }
func (c Creature) PIDType() ShinyType            { return ShinyType(c.card.buf.U8(fPIDType)) }
func (c Creature) SetPIDType(t ShinyType)        { c.card.buf.SetU8(fPIDType, uint8(t)) }
func (c Creature) EggLocation() int              { return int(c.card.buf.U16(fEggLocation)) }
func (c Creature) SetEggLocation(loc int)        { c.card.buf.SetU16(fEggLocation, uint16(loc)) }
func (c Creature) MetLocation() int              { return int(c.card.buf.U16(fMetLocation)) }
func (c Creature) SetMetLocation(loc int)        { c.card.buf.SetU16(fMetLocation, uint16(loc)) }
func (c Creature) MetLevel() int                 { return int(c.card.buf.U8(fMetLevel)) }
func (c Creature) SetMetLevel(level int)         { c.card.buf.SetU8(fMetLevel, uint8(level)) }
func (c Creature) OTGender() int                 { return int(c.card.buf.U8(fOTGender)) }
func (c Creature) SetOTGender(gender int)        { c.card.buf.SetU8(fOTGender, uint8(gender)) }
func (c Creature) Level() int                    { return int(c.card.buf.U8(fLevel)) }
func (c Creature) SetLevel(level int)            { c.card.buf.SetU8(fLevel, uint8(level)) }
func (c Creature) IsEgg() bool                   { return c.card.buf.Bool(fIsEgg) }
func (c Creature) SetIsEgg(egg bool)             { c.card.buf.SetBool(fIsEgg, egg) }
func (c Creature) AdditionalItem() int           { return int(c.card.buf.U16(fAdditionalItem)) }
func (c Creature) SetAdditionalItem(item int)    { c.card.buf.SetU16(fAdditionalItem, uint16(item)) }
func (c Creature) PID() uint32                   { return c.card.buf.U32(fPID) }
func (c Creature) SetPID(pid uint32)             { c.card.buf.SetU32(fPID, pid) }
func (c Creature) OTIntensity() int              { return int(c.card.buf.U8(fOTIntensity)) }
func (c Creature) SetOTIntensity(v int)          { c.card.buf.SetU8(fOTIntensity, uint8(v)) }
func (c Creature) OTMemory() int                 { return int(c.card.buf.U8(fOTMemory)) }
func (c Creature) SetOTMemory(v int)             { c.card.buf.SetU8(fOTMemory, uint8(v)) }
func (c Creature) OTTextVar() int                { return int(c.card.buf.U16(fOTTextVar)) }
func (c Creature) SetOTTextVar(v int)            { c.card.buf.SetU16(fOTTextVar, uint16(v)) }
func (c Creature) OTFeeling() int                { return int(c.card.buf.U8(fOTFeeling)) }
func (c Creature) SetOTFeeling(v int)            { c.card.buf.SetU8(fOTFeeling, uint8(v)) }
func (c Creature) Nickname() string              { return c.card.buf.String(fNickname) }
func (c Creature) SetNickname(name string) error { return c.card.buf.SetString(fNickname, name) }
func (c Creature) OTName() string                { return c.card.buf.String(fOTName) }
func (c Creature) SetOTName(name string) error   { return c.card.buf.SetString(fOTName, name) }

// IsNicknamed reports whether the card supplies its own nickname
func (c Creature) IsNicknamed() bool {
	return c.Nickname() != "" || c.IsEgg()
}

// Moves returns the four move ids
func (c Creature) Moves() [4]int { return c.readU16s(fMoves) }

func (c Creature) SetMoves(moves [4]int) { c.writeU16s(fMoves, moves) }

// RelearnMoves returns the four relearnable move ids
func (c Creature) RelearnMoves() [4]int { return c.readU16s(fRelearnMoves) }

func (c Creature) SetRelearnMoves(moves [4]int) { c.writeU16s(fRelearnMoves, moves) }

// IVs returns the raw IV bytes in HP, Atk, Def, Spe, SpA, SpD order. Values
// above 31 are generation hints, not stats.
func (c Creature) IVs() [6]int { return c.readU8s(fIVs) }

func (c Creature) SetIVs(ivs [6]int) { c.writeU8s(fIVs, ivs) }

// EVs returns the effort values in HP, Atk, Def, Spe, SpA, SpD order
func (c Creature) EVs() [6]int { return c.readU8s(fEVs) }

func (c Creature) SetEVs(evs [6]int) { c.writeU8s(fEVs, evs) }

// ContestStats returns cool, beauty, cute, smart, tough and sheen
func (c Creature) ContestStats() [6]int { return c.readU8s(fContest) }

func (c Creature) SetContestStats(stats [6]int) { c.writeU8s(fContest, stats) }

func (c Creature) readU16s(fields [4]codec.Field) [4]int {
	var out [4]int
	for i, f := range fields {
		out[i] = int(c.card.buf.U16(f))
	}
	return out
}

func (c Creature) writeU16s(fields [4]codec.Field, values [4]int) {
	for i, f := range fields {
		c.card.buf.SetU16(f, uint16(values[i]))
	}
}

func (c Creature) readU8s(fields [6]codec.Field) [6]int {
	var out [6]int
	for i, f := range fields {
		out[i] = int(c.card.buf.U8(f))
	}
	return out
}

func (c Creature) writeU8s(fields [6]codec.Field, values [6]int) {
	for i, f := range fields {
		c.card.buf.SetU8(f, uint8(values[i]))
	}
}
