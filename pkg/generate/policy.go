package generate

import (
	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/pk7"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

// neverShinyFlip is xored into a PID that came out shiny on a never-shiny card
const neverShinyFlip = 0x10000000

// fallbackVersion draws supported versions until one passes the card's mask.
// A mask that admits no supported version keeps current.
func (g *Generator) fallbackVersion(card *wondercard.WC7, current int) int {
	if len(card.EligibleVersions()) == 0 {
		g.logger.Warn("card mask admits no supported version, keeping current",
			zap.Int("card_id", card.CardID()),
			zap.Uint8("restrict_version", card.RestrictVersion),
			zap.Int("version", current),
		)
		return current
	}

	span := wondercard.MaxVersion - wondercard.MinVersion + 1
	for {
		v := wondercard.MinVersion + g.rand.IntN(span)
		if card.CanBeReceivedByVersion(v) {
			g.logger.Debug("version fallback", zap.Int("from", current), zap.Int("to", v))
			return v
		}
	}
}

// perfectCount decodes an IV byte that asks for a number of perfect stats.
// Both the 32..34 and the 0xFC..0xFE encodings are accepted.
func perfectCount(iv int) int {
	switch {
	case iv > pk7.MaxIV && iv <= pk7.MaxIV+3:
		return iv - pk7.MaxIV
	case iv >= 0xFC && iv <= 0xFE:
		return iv - 0xFB
	default:
		return 0
	}
}

func (g *Generator) rollIVs(raw [6]int) [6]int {
	perfect := 0
	for _, iv := range raw {
		if n := perfectCount(iv); n > 0 {
			perfect = n
			break
		}
	}

	var ivs [6]int
	if perfect == 0 {
		for i, iv := range raw {
			if iv > pk7.MaxIV {
				iv = g.rand.IntN(pk7.MaxIV + 1)
			}
			ivs[i] = iv
		}
		return ivs
	}

	slots := [6]int{0, 1, 2, 3, 4, 5}
	for i := 0; i < perfect; i++ {
		j := i + g.rand.IntN(len(slots)-i)
		slots[i], slots[j] = slots[j], slots[i]
	}
	for i, slot := range slots {
		if i < perfect {
			ivs[slot] = pk7.MaxIV
		} else {
			ivs[slot] = g.rand.IntN(pk7.MaxIV)
		}
	}
	return ivs
}

// abilitySlot resolves the ability selector to slot 0, 1 or 2. Selector 3
// draws from the two regular slots and selector 4 from all three.
func (g *Generator) abilitySlot(selector int) int {
	switch selector {
	case 0, 1, 2:
		return selector
	case 3, 4:
		return g.rand.IntN(selector - 1)
	default:
		g.logger.Warn("unknown ability selector, using first slot", zap.Int("selector", selector))
		return 0
	}
}

func (g *Generator) rollPID(kind wondercard.ShinyType, fixed uint32, tid, sid int) uint32 {
	switch kind {
	case wondercard.ShinyFixed:
		return fixed
	case wondercard.ShinyRandom:
		return g.rand.Uint32()
	case wondercard.ShinyAlways:
		low := g.rand.Uint32() & 0xFFFF
		return (uint32(tid^sid)^low)<<16 | low
	case wondercard.ShinyNever:
		pid := g.rand.Uint32()
		if pk7.ShinyXor(pid, tid, sid) < pk7.ShinyThreshold {
			pid ^= neverShinyFlip
		}
		return pid
	default:
		g.logger.Warn("unknown rarity selector, leaving pid unset", zap.Stringer("selector", kind))
		return 0
	}
}
