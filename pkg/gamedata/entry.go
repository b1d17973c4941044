package gamedata

import "fmt"

// Gender ratio sentinels
const (
	RatioMale       = 0
	RatioFemale     = 254
	RatioGenderless = 255
)

// Gender values of a generated creature
const (
	GenderMale       = 0
	GenderFemale     = 1
	GenderGenderless = 2
)

// Entry holds the per-form personal data the generator reads
type Entry struct {
	BaseFriendship int    `yaml:"base_friendship" json:"base_friendship"`
	HatchCycles    int    `yaml:"hatch_cycles" json:"hatch_cycles"`
	Gender         int    `yaml:"gender" json:"gender"`
	Growth         Growth `yaml:"growth" json:"growth"`
	Abilities      [3]int `yaml:"abilities" json:"abilities"`
}

func (e Entry) validate() error {
	if e.Gender < 0 || e.Gender > RatioGenderless {
		return fmt.Errorf("gender ratio %d out of range", e.Gender)
	}
	if e.Growth < GrowthMediumFast || e.Growth > GrowthSlow {
		return fmt.Errorf("unknown growth rate %d", e.Growth)
	}
	return nil
}

// Ability returns the ability in slot 0, 1 or 2
func (e Entry) Ability(slot int) int {
	if slot < 0 || slot >= len(e.Abilities) {
		return 0
	}
	return e.Abilities[slot]
}

// RandomGender picks a gender allowed by the species ratio. Mixed ratios are
// drawn evenly; intn returns a value in [0, n).
func (e Entry) RandomGender(intn func(n int) int) int {
	switch e.Gender {
	case RatioGenderless:
		return GenderGenderless
	case RatioFemale:
		return GenderFemale
	case RatioMale:
		return GenderMale
	default:
		return intn(2)
	}
}
