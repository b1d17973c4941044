// Package ribbon names the event ribbons a gift can carry and stores them as a set.
package ribbon

import (
	"fmt"
	"strings"
)

// Ribbon is one event ribbon. The numbering matches the bit order used by
// gift records, low bit of the first ribbon byte first.
type Ribbon uint8

const (
	ChampionBattle Ribbon = iota
	ChampionRegional
	ChampionNational
	Country
	National
	Earth
	World
	Event
	ChampionWorld
	Birthday
	Special
	Souvenir
	Wishing
	Classic
	Premier

	count
)

var names = [count]string{
	"champion_battle",
	"champion_regional",
	"champion_national",
	"country",
	"national",
	"earth",
	"world",
	"event",
	"champion_world",
	"birthday",
	"special",
	"souvenir",
	"wishing",
	"classic",
	"premier",
}

func (r Ribbon) String() string {
	if r >= count {
		return fmt.Sprintf("ribbon(%d)", uint8(r))
	}
	return names[r]
}

// All lists every known ribbon in bit order
func All() []Ribbon {
	out := make([]Ribbon, count)
	for i := range out {
		out[i] = Ribbon(i)
	}
	return out
}

// Event3 are the ribbons first distributed in generation 3
var Event3 = []Ribbon{Earth, National, Country, ChampionBattle, ChampionRegional, ChampionNational}

// Event4 are the ribbons first distributed in generation 4
var Event4 = []Ribbon{Classic, Wishing, Premier, Event, Birthday, Special, World, ChampionWorld, Souvenir}

// Set is a bitset of ribbons
type Set uint16

// Has reports whether r is in the set
func (s Set) Has(r Ribbon) bool {
	return r < count && s&(1<<r) != 0
}

// With returns the set with r added or removed
func (s Set) With(r Ribbon, present bool) Set {
	if r >= count {
		return s
	}
	if present {
		return s | 1<<r
	}
	return s &^ (1 << r)
}

// List returns the ribbons in the set in bit order
func (s Set) List() []Ribbon {
	var out []Ribbon
	for r := Ribbon(0); r < count; r++ {
		if s.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of ribbons in the set
func (s Set) Len() int {
	return len(s.List())
}

func (s Set) String() string {
	list := s.List()
	parts := make([]string, len(list))
	for i, r := range list {
		parts[i] = r.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
