package wondercard

import (
	"github.com/ssargent/wondercard/pkg/codec"
	"github.com/ssargent/wondercard/pkg/ribbon"
)

// RibbonFlags maps each event ribbon to its bit in the two ribbon bytes
var RibbonFlags = ribbonFlags()

// flagUnknownRibbon is the unnamed top bit of the second ribbon byte
var flagUnknownRibbon = codec.Flag{Name: "ribbon_unknown_7", Field: fRibbon1, Bit: 7}

func ribbonFlags() map[ribbon.Ribbon]codec.Flag {
	out := make(map[ribbon.Ribbon]codec.Flag)
	for _, r := range ribbon.All() {
		field := fRibbon0
		if r >= 8 {
			field = fRibbon1
		}
		out[r] = codec.Flag{Name: "ribbon_" + r.String(), Field: field, Bit: uint8(r) % 8}
	}
	return out
}

// RibbonSetEvent3 exposes the generation 3 event ribbons
type RibbonSetEvent3 interface {
	RibbonEarth() bool
	RibbonNational() bool
	RibbonCountry() bool
	RibbonChampionBattle() bool
	RibbonChampionRegional() bool
	RibbonChampionNational() bool
}

// RibbonSetEvent4 exposes the generation 4 event ribbons
type RibbonSetEvent4 interface {
	RibbonClassic() bool
	RibbonWishing() bool
	RibbonPremier() bool
	RibbonEvent() bool
	RibbonBirthday() bool
	RibbonSpecial() bool
	RibbonWorld() bool
	RibbonChampionWorld() bool
	RibbonSouvenir() bool
}

// LangNick exposes the language and nickname of a creature
type LangNick interface {
	Language() int
	Nickname() string
	IsNicknamed() bool
}

// ContestStats exposes the six contest condition values
type ContestStats interface {
	ContestStats() [6]int
}

var (
	_ RibbonSetEvent3 = Creature{}
	_ RibbonSetEvent4 = Creature{}
	_ LangNick        = Creature{}
	_ ContestStats    = Creature{}
)

// Ribbon reports whether the card awards r
func (c Creature) Ribbon(r ribbon.Ribbon) bool {
	fl, ok := RibbonFlags[r]
	return ok && c.card.buf.Flag(fl)
}

// SetRibbon adds or removes r
func (c Creature) SetRibbon(r ribbon.Ribbon, v bool) {
	if fl, ok := RibbonFlags[r]; ok {
		c.card.buf.SetFlag(fl, v)
	}
}

// Ribbons returns every named ribbon the card awards
func (c Creature) Ribbons() ribbon.Set {
	var s ribbon.Set
	for r, fl := range RibbonFlags {
		s = s.With(r, c.card.buf.Flag(fl))
	}
	return s
}

// SetRibbons replaces the named ribbons with s
func (c Creature) SetRibbons(s ribbon.Set) {
	for r, fl := range RibbonFlags {
		c.card.buf.SetFlag(fl, s.Has(r))
	}
}

func (c Creature) RibbonEarth() bool            { return c.Ribbon(ribbon.Earth) }
func (c Creature) RibbonNational() bool         { return c.Ribbon(ribbon.National) }
func (c Creature) RibbonCountry() bool          { return c.Ribbon(ribbon.Country) }
func (c Creature) RibbonChampionBattle() bool   { return c.Ribbon(ribbon.ChampionBattle) }
func (c Creature) RibbonChampionRegional() bool { return c.Ribbon(ribbon.ChampionRegional) }
func (c Creature) RibbonChampionNational() bool { return c.Ribbon(ribbon.ChampionNational) }
func (c Creature) RibbonClassic() bool          { return c.Ribbon(ribbon.Classic) }
func (c Creature) RibbonWishing() bool          { return c.Ribbon(ribbon.Wishing) }
func (c Creature) RibbonPremier() bool          { return c.Ribbon(ribbon.Premier) }
func (c Creature) RibbonEvent() bool            { return c.Ribbon(ribbon.Event) }
func (c Creature) RibbonBirthday() bool         { return c.Ribbon(ribbon.Birthday) }
func (c Creature) RibbonSpecial() bool          { return c.Ribbon(ribbon.Special) }
func (c Creature) RibbonWorld() bool            { return c.Ribbon(ribbon.World) }
func (c Creature) RibbonChampionWorld() bool    { return c.Ribbon(ribbon.ChampionWorld) }
func (c Creature) RibbonSouvenir() bool         { return c.Ribbon(ribbon.Souvenir) }

// RibbonUnknown7 is the unnamed top bit of the second ribbon byte. It is
// preserved in the record but never copied to a generated creature.
func (c Creature) RibbonUnknown7() bool     { return c.card.buf.Flag(flagUnknownRibbon) }
func (c Creature) SetRibbonUnknown7(v bool) { c.card.buf.SetFlag(flagUnknownRibbon, v) }
