package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PasswordHash  string        `json:"-"`
	Phone         string        `json:"phone,omitempty"`
	TaskIDs       []uuid.UUID   `json:"task_ids"`
	CapsuleIDs    []uuid.UUID   `json:"capsule_ids"`
	CurrentStreak int           `json:"current_streak"`
	MaxStreak     int           `json:"max_streak"`
	Settings      *Settings     `json:"settings,omitempty"`
	AwardsEarned  []AwardEarned `json:"awards_earned"`
	LastModified  time.Time     `json:"last_modified"`
}

type Settings struct {
	ProfilePicture       string `json:"profile_picture,omitempty"`
	Usage                Usage  `json:"usage"`
	Bedtime              string `json:"bedtime"`
	WakeUpTime           string `json:"wake_up_time"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
}

type Usage string

const (
	UsagePersonal  Usage = "Personal"
	UsageWork      Usage = "Work"
	UsageEducation Usage = "Education"
)

// NewUser mints a user with a fresh id. The password hash is stored as given;
// hashing is the caller's job (see internal/auth).
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		TaskIDs:      []uuid.UUID{},
		CapsuleIDs:   []uuid.UUID{},
		AwardsEarned: []AwardEarned{},
		LastModified: time.Now(),
	}
}

// HasAward reports whether the user already holds an award with the given name.
func (u *User) HasAward(name string) bool {
	for _, a := range u.AwardsEarned {
		if a.Name == name {
			return true
		}
	}
	return false
}
