package models

import (
	"time"

	"github.com/google/uuid"
)

// Award is a catalog entry: something a user can earn, not something earned.
type Award struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AwardEarned records one award granted to one user. Award names are unique
// per user; the store refuses to append a second record with the same name.
type AwardEarned struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

// Earn stamps a catalog award into a per-user earned record.
func (a Award) Earn(at time.Time) AwardEarned {
	return AwardEarned{
		ID:          uuid.New(),
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		EarnedAt:    at,
	}
}
