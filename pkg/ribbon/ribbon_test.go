package ribbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	var s Set
	s = s.With(Premier, true).With(ChampionBattle, true).With(Event, true)

	assert.True(t, s.Has(Premier))
	assert.False(t, s.Has(World))
	assert.Equal(t, []Ribbon{ChampionBattle, Event, Premier}, s.List())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "[champion_battle event premier]", s.String())

	s = s.With(Event, false)
	assert.Equal(t, []Ribbon{ChampionBattle, Premier}, s.List())
}

func TestUnknownRibbonIgnored(t *testing.T) {
	var s Set
	s = s.With(Ribbon(40), true)
	assert.Zero(t, s)
	assert.False(t, s.Has(Ribbon(40)))
	assert.Equal(t, "ribbon(40)", Ribbon(40).String())
}

func TestEventGroupsCoverAll(t *testing.T) {
	seen := map[Ribbon]bool{}
	for _, r := range append(append([]Ribbon(nil), Event3...), Event4...) {
		assert.False(t, seen[r], "%s listed twice", r)
		seen[r] = true
	}
	assert.Len(t, seen, len(All()))
}
