package wondercard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/wondercard/pkg/ribbon"
)

func TestSummarizeCreature(t *testing.T) {
	w := New()
	w.SetCardID(2046)
	require.NoError(t, w.SetTitle("Ash-Greninja"))
	w.SetRawDate(171117)
	w.RestrictVersion = 0b0011
	c := w.Creature()
	c.SetSpecies(658)
	c.SetForm(1)
	c.SetLevel(36)
	c.SetPIDType(ShinyNever)
	c.SetRibbon(ribbon.Special, true)

	s := Summarize(w)
	assert.Equal(t, 2046, s.CardID)
	assert.Equal(t, "Ash-Greninja", s.Title)
	assert.Equal(t, "2017-11-17", s.Date)
	assert.Equal(t, "pokemon", s.CardType)
	assert.True(t, s.Repeatable)
	assert.Equal(t, []int{VersionSun, VersionMoon}, s.EligibleVersions)
	require.NotNil(t, s.Creature)
	assert.Equal(t, 658, s.Creature.Species)
	assert.Equal(t, "never", s.Creature.PIDType)
	assert.Equal(t, []string{"special"}, s.Creature.Ribbons)
	assert.Nil(t, s.Items)
}

func TestSummarizeOtherCards(t *testing.T) {
	w := New()
	w.SetCardType(CardItem)
	require.NoError(t, ItemGift{card: w}.SetItem(0, 1))
	require.NoError(t, ItemGift{card: w}.SetQuantity(0, 5))

	s := Summarize(w)
	assert.Nil(t, s.Creature)
	assert.Empty(t, s.Date)
	assert.Equal(t, []ItemStack{{Item: 1, Quantity: 5}}, s.Items)

	w.SetCardType(CardBean)
	assert.Equal(t, &AmountSummary{ID: 1, Quantity: 5}, Summarize(w).Bean)

	w.SetCardType(CardBP)
	assert.Equal(t, &AmountSummary{ID: 1, Quantity: 5}, Summarize(w).BP)
}
