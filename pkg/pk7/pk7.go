// Package pk7 holds the generation 7 creature record produced from gift records.
package pk7

import (
	"time"

	"github.com/ssargent/wondercard/pkg/ribbon"
)

const (
	// Size is the length of a decrypted stored creature record
	Size = 0xE8

	// MaxIV is the largest individual value
	MaxIV = 31

	// ShinyThreshold is the exclusive bound on the PID/trainer xor for a shiny creature
	ShinyThreshold = 16
)

// PK7 is a generation 7 creature. Fields are plain values; Encode lays them out
// in the stored binary form.
type PK7 struct {
	EncryptionConstant uint32 `json:"encryption_constant"`
	Checksum           uint16 `json:"checksum"`
	Species            int    `json:"species"`
	Form               int    `json:"form"`
	HeldItem           int    `json:"held_item"`
	TID                int    `json:"tid"`
	SID                int    `json:"sid"`
	EXP                uint32 `json:"exp"`
	Ability            int    `json:"ability"`
	AbilityNumber      int    `json:"ability_number"`
	PID                uint32 `json:"pid"`
	Nature             int    `json:"nature"`
	FatefulEncounter   bool   `json:"fateful_encounter"`
	Gender             int    `json:"gender"`

	EVs          [6]int     `json:"evs"`
	ContestStats [6]int     `json:"contest_stats"`
	Ribbons      ribbon.Set `json:"ribbons"`

	Nickname     string `json:"nickname"`
	IsNicknamed  bool   `json:"is_nicknamed"`
	IsEgg        bool   `json:"is_egg"`
	Moves        [4]int `json:"moves"`
	MovePP       [4]int `json:"move_pp"`
	MovePPUps    [4]int `json:"move_pp_ups"`
	RelearnMoves [4]int `json:"relearn_moves"`
	IVs          [6]int `json:"ivs"`

	HTName       string `json:"ht_name"`
	HTGender     int    `json:"ht_gender"`
	HTFriendship int    `json:"ht_friendship"`

	// CurrentHandler is 0 while the original trainer holds the creature and 1 otherwise
	CurrentHandler int `json:"current_handler"`

	OTName       string `json:"ot_name"`
	OTGender     int    `json:"ot_gender"`
	OTFriendship int    `json:"ot_friendship"`
	OTIntensity  int    `json:"ot_intensity"`
	OTMemory     int    `json:"ot_memory"`
	OTTextVar    int    `json:"ot_text_var"`
	OTFeeling    int    `json:"ot_feeling"`

	EggMetDate  *time.Time `json:"egg_met_date,omitempty"`
	MetDate     *time.Time `json:"met_date,omitempty"`
	EggLocation int        `json:"egg_location"`
	MetLocation int        `json:"met_location"`
	Ball        int        `json:"ball"`
	MetLevel    int        `json:"met_level"`

	Version       int `json:"version"`
	Country       int `json:"country"`
	Region        int `json:"region"`
	ConsoleRegion int `json:"console_region"`
	Language      int `json:"language"`
}

// PSV returns the shiny value of the PID
func (pk *PK7) PSV() int {
	return int((pk.PID>>16 ^ pk.PID&0xFFFF) >> 4)
}

// TSV returns the shiny value of the trainer
func (pk *PK7) TSV() int {
	return (pk.TID ^ pk.SID) >> 4
}

// IsShiny reports whether the PID and trainer ids produce a shiny creature
func (pk *PK7) IsShiny() bool {
	return ShinyXor(pk.PID, pk.TID, pk.SID) < ShinyThreshold
}

// ShinyXor folds a PID against a trainer id pair
func ShinyXor(pid uint32, tid, sid int) uint32 {
	return uint32(tid^sid) ^ pid>>16 ^ pid&0xFFFF
}

// MovePP looks up the base PP of a move
type MovePP interface {
	MovePP(move int) int
}

// SetMaximumPPCurrent fills each move slot with the move's full PP
func (pk *PK7) SetMaximumPPCurrent(pp MovePP) {
	for i, move := range pk.Moves {
		if move == 0 {
			pk.MovePP[i] = 0
			continue
		}
		base := pp.MovePP(move)
		pk.MovePP[i] = base + base*pk.MovePPUps[i]/5
	}
}

// CurrentFriendship returns the friendship towards whoever holds the creature
func (pk *PK7) CurrentFriendship() int {
	if pk.CurrentHandler == 0 {
		return pk.OTFriendship
	}
	return pk.HTFriendship
}

// SetCurrentFriendship sets the friendship towards whoever holds the creature
func (pk *PK7) SetCurrentFriendship(v int) {
	if pk.CurrentHandler == 0 {
		pk.OTFriendship = v
	} else {
		pk.HTFriendship = v
	}
}

// SetIVs stores ivs, clamping each value to MaxIV
func (pk *PK7) SetIVs(ivs [6]int) {
	for i, iv := range ivs {
		pk.IVs[i] = min(max(iv, 0), MaxIV)
	}
}

// RefreshChecksum recomputes the checksum over the encoded record
func (pk *PK7) RefreshChecksum() {
	pk.Checksum = CalculateChecksum(pk.encodeBody())
}

// ChecksumValid reports whether the stored checksum matches the record
func (pk *PK7) ChecksumValid() bool {
	return pk.Checksum == CalculateChecksum(pk.encodeBody())
}
