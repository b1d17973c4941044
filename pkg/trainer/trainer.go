// Package trainer describes the save file that receives a gift.
package trainer

import (
	"fmt"

	"github.com/ssargent/wondercard/pkg/codec"
)

// NameCapacity is the number of UTF-16 code units a trainer name slot holds
const NameCapacity = 12

// Info is the recipient of a gift: the trainer identity and the region
// settings of the game that redeems it.
type Info struct {
	OT            string `yaml:"ot" json:"ot" env:"OT"`
	Gender        int    `yaml:"gender" json:"gender" env:"GENDER"`
	TID           int    `yaml:"tid" json:"tid" env:"TID"`
	SID           int    `yaml:"sid" json:"sid" env:"SID"`
	Game          int    `yaml:"game" json:"game" env:"GAME"`
	Language      int    `yaml:"language" json:"language" env:"LANGUAGE"`
	Country       int    `yaml:"country" json:"country" env:"COUNTRY"`
	SubRegion     int    `yaml:"sub_region" json:"sub_region" env:"SUB_REGION"`
	ConsoleRegion int    `yaml:"console_region" json:"console_region" env:"CONSOLE_REGION"`
	Generation    int    `yaml:"generation" json:"generation" env:"GENERATION"`
}

// Default returns a Sun save with an English trainer
func Default() Info {
	return Info{
		OT:            "ASH",
		Gender:        0,
		TID:           12345,
		SID:           54321,
		Game:          30,
		Language:      2,
		Country:       49,
		SubRegion:     7,
		ConsoleRegion: 1,
		Generation:    7,
	}
}

// Validate checks the ranges the stored creature can hold
func (i Info) Validate() error {
	if i.Gender != 0 && i.Gender != 1 {
		return fmt.Errorf("trainer gender must be 0 or 1, got %d", i.Gender)
	}
	if i.TID < 0 || i.TID > 0xFFFF {
		return fmt.Errorf("trainer tid %d out of range", i.TID)
	}
	if i.SID < 0 || i.SID > 0xFFFF {
		return fmt.Errorf("trainer sid %d out of range", i.SID)
	}
	if i.Game < 0 || i.Game > 0xFF {
		return fmt.Errorf("trainer game %d out of range", i.Game)
	}
	if i.Language < 0 || i.Language > 0xFF {
		return fmt.Errorf("trainer language %d out of range", i.Language)
	}
	if i.Generation < 1 {
		return fmt.Errorf("trainer generation must be positive, got %d", i.Generation)
	}
	if n := codec.UTF16Len(i.OT); n > NameCapacity {
		return fmt.Errorf("trainer name holds %d characters, got %d", NameCapacity, n)
	}
	return nil
}
