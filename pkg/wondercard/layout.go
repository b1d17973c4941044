package wondercard

import "github.com/ssargent/wondercard/pkg/codec"

const (
	// Size is the length of a bare gift record
	Size = 0x108

	// SizeFull is the length of a wrapped record carrying restriction metadata
	SizeFull = 0x310

	offsetRestrictVersion  = 0x000
	offsetRestrictLanguage = 0x1FF

	// MaxItems is the number of item/quantity slots on an item card
	MaxItems   = 6
	itemStride = 4
)

// Card header
var (
	fCardID       = codec.U16("card_id", 0x00)
	fTitle        = codec.UTF16("title", 0x02, 0x4A)
	fDate         = codec.U32("date", 0x4C)
	fCardLocation = codec.U8("card_location", 0x50)
	fCardType     = codec.U8("card_type", 0x51)
	fCardFlags    = codec.U8("card_flags", 0x52)
	fMultiObtain  = codec.Bool("multi_obtain", 0x53)
)

// Shared by item slots 0, bean and BP cards
var (
	fItemID   = codec.U16("item_id", 0x68)
	fQuantity = codec.U16("quantity", 0x6A)
)

// Creature
var (
	fTID                = codec.U16("tid", 0x68)
	fSID                = codec.U16("sid", 0x6A)
	fOriginGame         = codec.U8("origin_game", 0x6C)
	fEncryptionConstant = codec.U32("encryption_constant", 0x70)
	fRibbon0            = codec.U8("ribbons_0", 0x74)
	fRibbon1            = codec.U8("ribbons_1", 0x75)
	fBall               = codec.U8("ball", 0x76)
	fHeldItem           = codec.U16("held_item", 0x78)

	fMoves = [4]codec.Field{
		codec.U16("move_1", 0x7A),
		codec.U16("move_2", 0x7C),
		codec.U16("move_3", 0x7E),
		codec.U16("move_4", 0x80),
	}

	fSpecies     = codec.U16("species", 0x82)
	fForm        = codec.U8("form", 0x84)
	fLanguage    = codec.U8("language", 0x85)
	fNickname    = codec.UTF16("nickname", 0x86, 0x1A)
	fNature      = codec.S8("nature", 0xA0)
	fGender      = codec.U8("gender", 0xA1)
	fAbilityType = codec.U8("ability_type", 0xA2)
	fPIDType     = codec.U8("pid_type", 0xA3)
	fEggLocation = codec.U16("egg_location", 0xA4)
	fMetLocation = codec.U16("met_location", 0xA6)
	fMetLevel    = codec.U8("met_level", 0xA8)

	fContest = [6]codec.Field{
		codec.U8("cnt_cool", 0xA9),
		codec.U8("cnt_beauty", 0xAA),
		codec.U8("cnt_cute", 0xAB),
		codec.U8("cnt_smart", 0xAC),
		codec.U8("cnt_tough", 0xAD),
		codec.U8("cnt_sheen", 0xAE),
	}

	fIVs = [6]codec.Field{
		codec.U8("iv_hp", 0xAF),
		codec.U8("iv_atk", 0xB0),
		codec.U8("iv_def", 0xB1),
		codec.U8("iv_spe", 0xB2),
		codec.U8("iv_spa", 0xB3),
		codec.U8("iv_spd", 0xB4),
	}

	fOTGender       = codec.U8("ot_gender", 0xB5)
	fOTName         = codec.UTF16("ot_name", 0xB6, 0x1A)
	fLevel          = codec.U8("level", 0xD0)
	fIsEgg          = codec.Bool("is_egg", 0xD1)
	fAdditionalItem = codec.U16("additional_item", 0xD2)
	fPID            = codec.U32("pid", 0xD4)

	fRelearnMoves = [4]codec.Field{
		codec.U16("relearn_1", 0xD8),
		codec.U16("relearn_2", 0xDA),
		codec.U16("relearn_3", 0xDC),
		codec.U16("relearn_4", 0xDE),
	}

	fOTIntensity = codec.U8("ot_intensity", 0xE0)
	fOTMemory    = codec.U8("ot_memory", 0xE1)
	fOTTextVar   = codec.U16("ot_text_var", 0xE2)
	fOTFeeling   = codec.U8("ot_feeling", 0xE4)

	fEVs = [6]codec.Field{
		codec.U8("ev_hp", 0xE5),
		codec.U8("ev_atk", 0xE6),
		codec.U8("ev_def", 0xE7),
		codec.U8("ev_spe", 0xE8),
		codec.U8("ev_spa", 0xE9),
		codec.U8("ev_spd", 0xEA),
	}
)

// Card flag bits
var (
	FlagRepeatable = codec.Flag{Name: "repeatable", Field: fCardFlags, Bit: 0, Inverted: true}
	FlagUsed       = codec.Flag{Name: "used", Field: fCardFlags, Bit: 1}
	FlagOncePerDay = codec.Flag{Name: "once_per_day", Field: fCardFlags, Bit: 2}
)

// HeaderLayout returns the fields shared by every card type
func HeaderLayout() []codec.Field {
	return []codec.Field{fCardID, fTitle, fDate, fCardLocation, fCardType, fCardFlags, fMultiObtain}
}

// ItemLayout returns the item and quantity fields of every item slot
func ItemLayout() []codec.Field {
	out := make([]codec.Field, 0, 2*MaxItems)
	for i := 0; i < MaxItems; i++ {
		out = append(out, itemField(i), quantityField(i))
	}
	return out
}

// CreatureLayout returns every field read when the card holds a creature
func CreatureLayout() []codec.Field {
	out := []codec.Field{
		fTID, fSID, fOriginGame, fEncryptionConstant, fRibbon0, fRibbon1, fBall, fHeldItem,
	}
	out = append(out, fMoves[:]...)
	out = append(out, fSpecies, fForm, fLanguage, fNickname, fNature, fGender, fAbilityType, fPIDType,
		fEggLocation, fMetLocation, fMetLevel)
	out = append(out, fContest[:]...)
	out = append(out, fIVs[:]...)
	out = append(out, fOTGender, fOTName, fLevel, fIsEgg, fAdditionalItem, fPID)
	out = append(out, fRelearnMoves[:]...)
	out = append(out, fOTIntensity, fOTMemory, fOTTextVar, fOTFeeling)
	out = append(out, fEVs[:]...)
	return out
}

// Layout returns the full field table of a bare record
func Layout() []codec.Field {
	out := HeaderLayout()
	out = append(out, ItemLayout()...)
	return append(out, CreatureLayout()...)
}

func itemField(i int) codec.Field {
	f := fItemID.Shift(itemStride * i)
	f.Name = fieldName("item", i)
	return f
}

func quantityField(i int) codec.Field {
	f := fQuantity.Shift(itemStride * i)
	f.Name = fieldName("quantity", i)
	return f
}

func fieldName(prefix string, i int) string {
	return prefix + "_" + string(rune('1'+i))
}
