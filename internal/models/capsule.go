package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeCapsule is a longer-horizon goal tracked by subtask completion
// percentage rather than a single done flag.
type TimeCapsule struct {
	ID            uuid.UUID   `json:"id"`
	Name          string      `json:"name"`
	Deadline      time.Time   `json:"deadline"`
	Priority      Priority    `json:"priority"`
	Description   string      `json:"description"`
	Category      Category    `json:"category"`
	CompletionPct float64     `json:"completion_percentage"`
	SubtaskIDs    []uuid.UUID `json:"subtask_ids"`
}

func NewTimeCapsule(name string, deadline time.Time, priority Priority, description string, category Category) *TimeCapsule {
	return &TimeCapsule{
		ID:          uuid.New(),
		Name:        name,
		Deadline:    deadline,
		Priority:    priority,
		Description: description,
		Category:    category,
		SubtaskIDs:  []uuid.UUID{},
	}
}

// RecomputeCompletion derives the completion percentage from the capsule's
// subtasks. Zero subtasks means zero percent.
func (c *TimeCapsule) RecomputeCompletion(subtasks []Subtask) {
	if len(subtasks) == 0 {
		c.CompletionPct = 0
		return
	}
	done := 0
	for _, st := range subtasks {
		if st.Completed {
			done++
		}
	}
	c.CompletionPct = float64(done) / float64(len(subtasks)) * 100
}

type Subtask struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
}

func NewSubtask(name, description string) *Subtask {
	return &Subtask{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
	}
}
