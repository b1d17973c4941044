package gamedata

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableLoads(t *testing.T) {
	table := Default()
	assert.NotEmpty(t, table.Species())
	for _, s := range table.Species() {
		assert.NotEqual(t, "", table.SpeciesName(s, LanguageEnglish), "species %d has no english name", s)
	}
}

func TestPersonal(t *testing.T) {
	table := Default()

	got, err := table.Personal(1, 0)
	require.NoError(t, err)
	want := Entry{BaseFriendship: 70, HatchCycles: 20, Gender: 31, Growth: GrowthMediumSlow, Abilities: [3]int{65, 65, 34}}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("Personal(1, 0) diff (-want +got):\n%s", diff)
	}

	ash, err := table.Personal(658, 2)
	require.NoError(t, err)
	assert.Equal(t, 210, ash.Ability(2))

	fallback, err := table.Personal(25, 9)
	require.NoError(t, err, "unknown forms use the base form")
	base, _ := table.Personal(25, 0)
	assert.Equal(t, base, fallback)

	unlisted, err := table.Personal(400, 0)
	require.NoError(t, err, "in-range species without an entry use the fallback")
	assert.Equal(t, Fallback, unlisted)

	for _, species := range []int{-1, 0, MaxSpecies + 1, 9999} {
		_, err = table.Personal(species, 0)
		assert.ErrorIs(t, err, ErrSpeciesNotFound, "species %d", species)
	}
}

func TestEverySpeciesHasPersonalData(t *testing.T) {
	table := Default()
	for species := 1; species <= MaxSpecies; species++ {
		e, err := table.Personal(species, 0)
		require.NoError(t, err, "species %d", species)
		assert.NoError(t, e.validate(), "species %d", species)
	}
}

func TestMovePP(t *testing.T) {
	table := Default()
	assert.Equal(t, 35, table.MovePP(33))
	assert.Equal(t, 15, table.MovePP(85))
	assert.Equal(t, 0, table.MovePP(0))
	assert.Equal(t, 0, table.MovePP(9999))
}

func TestSpeciesName(t *testing.T) {
	table := Default()
	assert.Equal(t, "Egg", table.SpeciesName(0, LanguageEnglish))
	assert.Equal(t, "タマゴ", table.SpeciesName(0, LanguageJapanese))
	assert.Equal(t, "Quajutsu", table.SpeciesName(658, LanguageGerman))
	assert.Equal(t, "Greninja", table.SpeciesName(658, LanguageKorean), "missing languages fall back to english")
	assert.Equal(t, "#999", table.SpeciesName(999, LanguageEnglish))
}

func TestParseRejectsBadEntries(t *testing.T) {
	_, err := Parse([]byte("- species: 1\n  forms: []\n"), nil, nil)
	assert.Error(t, err)

	_, err = Parse([]byte("- species: 1\n  forms:\n    - {gender: 300}\n"), nil, nil)
	assert.Error(t, err)

	_, err = Parse([]byte("- species: 1\n  forms:\n    - {growth: 9}\n"), nil, nil)
	assert.Error(t, err)

	_, err = Parse([]byte("- species: 808\n  forms:\n    - {gender: 0}\n"), nil, nil)
	assert.Error(t, err)

	_, err = Parse([]byte("not: [a list"), nil, nil)
	assert.Error(t, err)
}

func TestRandomGender(t *testing.T) {
	always := func(v int) func(int) int { return func(int) int { return v } }

	tests := []struct {
		ratio int
		roll  int
		want  int
	}{
		{RatioGenderless, 0, GenderGenderless},
		{RatioFemale, 0, GenderFemale},
		{RatioMale, 1, GenderMale},
		{127, 0, GenderMale},
		{127, 1, GenderFemale},
		{31, 1, GenderFemale},
	}

	for _, tt := range tests {
		e := Entry{Gender: tt.ratio}
		assert.Equal(t, tt.want, e.RandomGender(always(tt.roll)), "ratio %d roll %d", tt.ratio, tt.roll)
	}
}

func TestExperience(t *testing.T) {
	tests := []struct {
		growth Growth
		level  int
		want   uint32
	}{
		{GrowthMediumFast, 100, 1000000},
		{GrowthErratic, 100, 600000},
		{GrowthFluctuating, 100, 1640000},
		{GrowthMediumSlow, 100, 1059860},
		{GrowthFast, 100, 800000},
		{GrowthSlow, 100, 1250000},
		{GrowthMediumSlow, 2, 9},
		{GrowthMediumSlow, 5, 135},
		{GrowthErratic, 50, 125000},
		{GrowthFluctuating, 10, 540},
		{GrowthMediumFast, 1, 0},
		{GrowthSlow, 0, 0},
		{GrowthFast, 150, 800000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Experience(tt.level, tt.growth), "growth %d level %d", tt.growth, tt.level)
	}
}

func TestExperienceIsMonotonic(t *testing.T) {
	for g := GrowthMediumFast; g <= GrowthSlow; g++ {
		for level := 2; level <= MaxLevel; level++ {
			assert.Greater(t, Experience(level, g), Experience(level-1, g), "growth %d level %d", g, level)
			assert.Equal(t, level, Level(Experience(level, g), g))
		}
	}
}
