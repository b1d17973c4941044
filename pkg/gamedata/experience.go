package gamedata

// Growth is an experience curve
type Growth int

const (
	GrowthMediumFast Growth = iota
	GrowthErratic
	GrowthFluctuating
	GrowthMediumSlow
	GrowthFast
	GrowthSlow
)

// MaxLevel is the highest level a creature can reach
const MaxLevel = 100

// Experience returns the total experience at which a creature of the given
// growth reaches level. Level 1 and below is zero.
func Experience(level int, growth Growth) uint32 {
	if level <= 1 {
		return 0
	}
	level = min(level, MaxLevel)

	n := level
	n3 := n * n * n
	var exp int
	switch growth {
	case GrowthErratic:
		switch {
		case n < 50:
			exp = n3 * (100 - n) / 50
		case n < 68:
			exp = n3 * (150 - n) / 100
		case n < 98:
			exp = n3 * ((1911 - 10*n) / 3) / 500
		default:
			exp = n3 * (160 - n) / 100
		}
	case GrowthFluctuating:
		switch {
		case n < 15:
			exp = n3 * ((n+1)/3 + 24) / 50
		case n < 36:
			exp = n3 * (n + 14) / 50
		default:
			exp = n3 * (n/2 + 32) / 50
		}
	case GrowthMediumSlow:
		exp = 6*n3/5 - 15*n*n + 100*n - 140
	case GrowthFast:
		exp = 4 * n3 / 5
	case GrowthSlow:
		exp = 5 * n3 / 4
	default:
		exp = n3
	}
	return uint32(max(exp, 0))
}

// Level returns the level a creature with exp experience has reached
func Level(exp uint32, growth Growth) int {
	level := 1
	for level < MaxLevel && Experience(level+1, growth) <= exp {
		level++
	}
	return level
}
