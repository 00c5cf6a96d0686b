package model

import (
	"time"

	"github.com/vaultpass/passgen/internal/strength"
)

// GenerationEvent records the shape of a generated password. The password
// itself is never stored.
type GenerationEvent struct {
	ID          string
	CreatedAt   time.Time
	Length      int
	Uppercase   bool
	Lowercase   bool
	Numbers     bool
	Symbols     bool
	Strength    strength.Label
	Fingerprint string
}

// StatsResponse summarizes generation events since a point in time.
type StatsResponse struct {
	Since      time.Time        `json:"since"`
	Total      int64            `json:"total"`
	ByStrength map[string]int64 `json:"by_strength"`
}
