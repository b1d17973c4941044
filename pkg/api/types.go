package api

import (
	"github.com/segmentio/ksuid"

	"github.com/ssargent/wondercard/pkg/pk7"
	"github.com/ssargent/wondercard/pkg/trainer"
	"github.com/ssargent/wondercard/pkg/wondercard"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// GiftResponse is a stored gift and its id
type GiftResponse struct {
	ID          string             `json:"id"`
	SpeciesName string             `json:"species_name,omitempty"`
	Gift        wondercard.Summary `json:"gift"`
}

// ConvertResponse is a creature generated from a stored gift
type ConvertResponse struct {
	GiftID      string   `json:"gift_id"`
	Seed        uint64   `json:"seed"`
	Creature    *pk7.PK7 `json:"creature"`
	Data        string   `json:"data"`
	Shiny       bool     `json:"shiny"`
	AshGreninja bool     `json:"ash_greninja"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port          int
	Bind          string
	APIKey        string
	MaxRecordSize int
	// Trainer receives conversions that do not send their own
	Trainer trainer.Info
	// Seed seeds per-request generators; 0 seeds from the clock
	Seed uint64
}

// GiftStore is the persistence the handlers need
type GiftStore interface {
	Create(card *wondercard.WC7) (ksuid.KSUID, error)
	Read(id ksuid.KSUID) (*wondercard.WC7, error)
	Update(id ksuid.KSUID, card *wondercard.WC7) error
	Delete(id ksuid.KSUID) error
	List() ([]ksuid.KSUID, error)
}
