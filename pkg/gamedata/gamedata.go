// Package gamedata provides the read-only species, move and name tables the
// generator consults. The default tables are embedded YAML.
package gamedata

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

// ErrSpeciesNotFound is returned for species outside [1, MaxSpecies]
var ErrSpeciesNotFound = errors.New("species not found")

// MaxSpecies is the highest national dex number in generation 7
const MaxSpecies = 807

// Fallback is the personal entry of an in-range species the tables do not
// list: the most common values among generation 7 species, no abilities.
var Fallback = Entry{
	BaseFriendship: 70,
	HatchCycles:    20,
	Gender:         127,
	Growth:         GrowthMediumFast,
}

// Language ids used by generation 7 games
const (
	LanguageJapanese           = 1
	LanguageEnglish            = 2
	LanguageFrench             = 3
	LanguageItalian            = 4
	LanguageGerman             = 5
	LanguageSpanish            = 7
	LanguageKorean             = 8
	LanguageChineseSimplified  = 9
	LanguageChineseTraditional = 10
)

// Provider is what the generator needs to know about species and moves
type Provider interface {
	// Personal returns the entry for a species form. Unknown forms fall back to
	// the base form and unlisted species up to MaxSpecies to Fallback.
	Personal(species, form int) (Entry, error)
	// MovePP returns the base PP of a move, 0 when unknown
	MovePP(move int) int
	// SpeciesName returns the localized name, falling back to English
	SpeciesName(species, language int) string
}

type speciesEntry struct {
	Species int     `yaml:"species"`
	Forms   []Entry `yaml:"forms"`
}

// Table is an in-memory Provider
type Table struct {
	personal map[int][]Entry
	moves    map[int]int
	names    map[int]map[int]string
}

var _ Provider = (*Table)(nil)

// Parse builds a table from the personal, move and name documents
func Parse(personal, moves, names []byte) (*Table, error) {
	var species []speciesEntry
	if err := yaml.Unmarshal(personal, &species); err != nil {
		return nil, fmt.Errorf("failed to parse personal table: %w", err)
	}

	t := &Table{
		personal: make(map[int][]Entry, len(species)),
		moves:    make(map[int]int),
		names:    make(map[int]map[int]string),
	}
	for _, s := range species {
		if s.Species < 0 || s.Species > MaxSpecies {
			return nil, fmt.Errorf("species %d out of range", s.Species)
		}
		if len(s.Forms) == 0 {
			return nil, fmt.Errorf("species %d has no forms", s.Species)
		}
		for i, e := range s.Forms {
			if err := e.validate(); err != nil {
				return nil, fmt.Errorf("species %d form %d: %w", s.Species, i, err)
			}
		}
		t.personal[s.Species] = s.Forms
	}

	if err := yaml.Unmarshal(moves, &t.moves); err != nil {
		return nil, fmt.Errorf("failed to parse move table: %w", err)
	}
	if err := yaml.Unmarshal(names, &t.names); err != nil {
		return nil, fmt.Errorf("failed to parse name table: %w", err)
	}
	return t, nil
}

var loadDefault = sync.OnceValues(func() (*Table, error) {
	read := func(name string) []byte {
		b, _ := files.ReadFile("data/" + name)
		return b
	}
	return Parse(read("personal.yaml"), read("moves.yaml"), read("names.yaml"))
})

// Default returns the embedded table. It panics if the embedded data is
// malformed, which the package tests rule out.
func Default() *Table {
	t, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("gamedata: embedded tables: %v", err))
	}
	return t
}

func (t *Table) Personal(species, form int) (Entry, error) {
	forms, ok := t.personal[species]
	if !ok {
		if species < 1 || species > MaxSpecies {
			return Entry{}, fmt.Errorf("%w: %d", ErrSpeciesNotFound, species)
		}
		return Fallback, nil
	}
	if form < 0 || form >= len(forms) {
		form = 0
	}
	return forms[form], nil
}

func (t *Table) MovePP(move int) int {
	return t.moves[move]
}

func (t *Table) SpeciesName(species, language int) string {
	names := t.names[species]
	if name, ok := names[language]; ok {
		return name
	}
	if name, ok := names[LanguageEnglish]; ok {
		return name
	}
	return fmt.Sprintf("#%03d", species)
}

// Species lists every species with its own personal entry
func (t *Table) Species() []int {
	out := make([]int, 0, len(t.personal))
	for s := range t.personal {
		out = append(out, s)
	}
	return out
}
