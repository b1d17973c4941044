// Package generate turns creature gift records into generation 7 creatures.
//
// A Generator owns its random source, clock and species data so that a run
// with a fixed seed always produces the same creature. Generators are not safe
// for concurrent use; build one per goroutine.
package generate

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/ssargent/wondercard/pkg/gamedata"
	"github.com/ssargent/wondercard/pkg/pk7"
	"github.com/ssargent/wondercard/pkg/trainer"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

// ErrNotPokemon is returned when the card does not hold a creature
var ErrNotPokemon = errors.New("card does not hold a pokemon")

// natureCount is the number of natures a random nature is drawn from
const natureCount = 25

// Rand is the random source consumed by generation. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Uint32() uint32
}

// Generator converts gift records into creatures
type Generator struct {
	rand   Rand
	now    func() time.Time
	data   gamedata.Provider
	logger *zap.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithRand sets the random source
func WithRand(r Rand) Option {
	return func(g *Generator) {
		g.rand = r
	}
}

// WithSeed seeds a PCG source. A zero seed keeps the clock-seeded default.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		if seed != 0 {
			g.rand = NewRand(seed)
		}
	}
}

// WithClock sets the clock used for met dates
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithProvider sets the species and move data
func WithProvider(p gamedata.Provider) Option {
	return func(g *Generator) {
		g.data = p
	}
}

// WithLogger sets the logger; nil disables logging
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l == nil {
			l = zap.NewNop()
		}
		g.logger = l
	}
}

// NewRand returns a deterministic source for seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}

// New creates a generator using the embedded game data and a clock-seeded source
func New(opts ...Option) *Generator {
	g := &Generator{
		rand:   NewRand(uint64(time.Now().UnixNano())),
		now:    time.Now,
		data:   gamedata.Default(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ConvertToPK7 generates a creature from card for the trainer tr
func (g *Generator) ConvertToPK7(card *wondercard.WC7, tr trainer.Info) (*pk7.PK7, error) {
	if !card.IsPokemon() {
		return nil, fmt.Errorf("%w: card type %s", ErrNotPokemon, card.CardType())
	}
	c := card.Creature()

	pi, err := g.data.Personal(c.Species(), c.Form())
	if err != nil {
		return nil, fmt.Errorf("failed to read personal data: %w", err)
	}

	level := c.Level()
	if level == 0 {
		level = g.rand.IntN(gamedata.MaxLevel) + 1
	}
	metLevel := c.MetLevel()
	if metLevel == 0 {
		metLevel = level
	}

	pk := &pk7.PK7{
		EncryptionConstant: c.EncryptionConstant(),
		Species:            c.Species(),
		Form:               c.Form(),
		HeldItem:           c.HeldItem(),
		TID:                c.TID(),
		SID:                c.SID(),
		EXP:                gamedata.Experience(level, pi.Growth),
		Nature:             c.Nature(),
		Gender:             c.Gender(),
		FatefulEncounter:   true,
		EVs:                c.EVs(),
		ContestStats:       c.ContestStats(),
		Ribbons:            c.Ribbons(),
		Moves:              c.Moves(),
		RelearnMoves:       c.RelearnMoves(),
		OTFriendship:       pi.BaseFriendship,
		OTIntensity:        c.OTIntensity(),
		OTMemory:           c.OTMemory(),
		OTTextVar:          c.OTTextVar(),
		OTFeeling:          c.OTFeeling(),
		EggLocation:        c.EggLocation(),
		MetLocation:        c.MetLocation(),
		Ball:               c.Ball(),
		MetLevel:           metLevel,
		Version:            c.OriginGame(),
		Language:           c.Language(),
		Country:            tr.Country,
		Region:             tr.SubRegion,
		ConsoleRegion:      tr.ConsoleRegion,
	}

	if pk.Nature == wondercard.NatureRandom {
		pk.Nature = g.rand.IntN(natureCount)
	}
	if pk.Gender == wondercard.GenderRandom {
		pk.Gender = pi.RandomGender(g.rand.IntN)
	}
	if pk.EncryptionConstant == 0 {
		pk.EncryptionConstant = g.rand.Uint32()
	}
	if pk.Version == 0 {
		pk.Version = tr.Game
	}
	if pk.Language == 0 {
		pk.Language = tr.Language
	}

	if name := c.OTName(); name != "" {
		pk.OTName = name
		pk.HTName = tr.OT
		pk.HTGender = tr.Gender
		pk.CurrentHandler = 1
	} else {
		pk.OTName = tr.OT
		pk.TID = tr.TID
		pk.SID = tr.SID
	}
	if c.OTGender() != wondercard.OTGenderRecipient {
		pk.OTGender = c.OTGender() % 2
	} else {
		pk.OTGender = tr.Gender
	}

	if (tr.Generation > wondercard.Format && c.OriginGame() == 0) || !card.CanBeReceivedByVersion(pk.Version) {
		pk.Version = g.fallbackVersion(card, pk.Version)
	}

	pk.SetMaximumPPCurrent(g.data)

	if c.OTGender() == wondercard.OTGenderRecipient {
		pk.TID = tr.TID
		pk.SID = tr.SID
	}

	met := g.today()
	if d, ok := card.Date(); ok {
		met = d
	}
	pk.MetDate = &met

	if c.IsNicknamed() {
		pk.Nickname = c.Nickname()
		pk.IsNicknamed = true
	} else {
		pk.Nickname = g.data.SpeciesName(pk.Species, pk.Language)
	}

	pk.SetIVs(g.rollIVs(c.IVs()))

	slot := g.abilitySlot(c.AbilityType())
	pk.Ability = pi.Ability(slot)
	pk.AbilityNumber = 1 << slot

	pk.PID = g.rollPID(c.PIDType(), c.PID(), pk.TID, pk.SID)

	if c.IsEgg() {
		pk.IsEgg = true
		if d, ok := card.Date(); ok {
			pk.EggMetDate = &d
		}
		pk.Nickname = g.data.SpeciesName(0, pk.Language)
		pk.IsNicknamed = true
		pk.SetCurrentFriendship(pi.HatchCycles)
	} else {
		pk.SetCurrentFriendship(pi.BaseFriendship)
	}

	pk.RefreshChecksum()

	g.logger.Debug("generated creature",
		zap.Int("card_id", card.CardID()),
		zap.Int("species", pk.Species),
		zap.Int("version", pk.Version),
		zap.Stringer("pid_type", c.PIDType()),
		zap.Bool("shiny", pk.IsShiny()),
	)
	return pk, nil
}

func (g *Generator) today() time.Time {
	y, m, d := g.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
