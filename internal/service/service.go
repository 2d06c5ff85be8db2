// Package service is the surface external callers talk to. It composes the
// entity store, the streak engine and the remote mirror, so a caller gets the
// whole mutation (store write, streak refresh, mirror save) from one call.
package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"synker/internal/auth"
	"synker/internal/models"
	"synker/internal/storage"
	"synker/internal/streak"
	syncpkg "synker/internal/sync"
)

type Service struct {
	store      *storage.Store
	engine     *streak.Engine
	mirror     syncpkg.Mirror
	bcryptCost int
}

func New(store *storage.Store, engine *streak.Engine, mirror syncpkg.Mirror, bcryptCost int) *Service {
	if mirror == nil {
		mirror = syncpkg.NullMirror{}
	}
	return &Service{store: store, engine: engine, mirror: mirror, bcryptCost: bcryptCost}
}

// SignUp hashes the password, creates the user and mirrors it out.
func (s *Service) SignUp(name, email, password string) (models.User, error) {
	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.NewUser(name, email, hash)
	if err := s.store.AddUser(u); err != nil {
		return models.User{}, err
	}
	stored, err := s.store.GetUser(u.ID)
	if err != nil {
		return models.User{}, err
	}
	s.mirrorUser(stored)
	return stored, nil
}

// AddTask stores a task for the user.
func (s *Service) AddTask(userID uuid.UUID, t *models.Task) error {
	if err := s.store.AddTask(t, userID); err != nil {
		return err
	}
	_ = s.mirror.SaveTask(syncpkg.TaskDocument(*t))
	return nil
}

// CompleteTask marks the task done and refreshes the user's streak, the
// coupling the app performs on every completion event.
func (s *Service) CompleteTask(userID, taskID uuid.UUID) (streak.Stats, []models.AwardEarned, error) {
	if err := s.store.MarkTaskComplete(taskID); err != nil {
		return streak.Stats{}, nil, err
	}
	stats, granted, err := s.engine.Refresh(userID)
	if err != nil {
		return streak.Stats{}, nil, err
	}
	if t, err := s.store.GetTask(taskID); err == nil {
		_ = s.mirror.SaveTask(syncpkg.TaskDocument(t))
	}
	if u, err := s.store.GetUser(userID); err == nil {
		s.mirrorUser(u)
	}
	return stats, granted, nil
}

// RefreshStreak recomputes without a completion event, e.g. on app load.
func (s *Service) RefreshStreak(userID uuid.UUID) (streak.Stats, []models.AwardEarned, error) {
	stats, granted, err := s.engine.Refresh(userID)
	if err != nil {
		return streak.Stats{}, nil, err
	}
	if u, err := s.store.GetUser(userID); err == nil {
		s.mirrorUser(u)
	}
	return stats, granted, nil
}

// AddCapsule stores a capsule for the user.
func (s *Service) AddCapsule(userID uuid.UUID, c *models.TimeCapsule) error {
	if err := s.store.AddCapsule(c, userID); err != nil {
		return err
	}
	if stored, err := s.store.GetCapsule(c.ID); err == nil {
		_ = s.mirror.SaveCapsule(syncpkg.CapsuleDocument(stored))
	}
	return nil
}

// AddSubtask stores a subtask under a capsule and mirrors the capsule, whose
// completion percentage just changed.
func (s *Service) AddSubtask(capsuleID uuid.UUID, st *models.Subtask) error {
	if err := s.store.AddSubtask(st, capsuleID); err != nil {
		return err
	}
	_ = s.mirror.SaveSubtask(syncpkg.SubtaskDocument(*st))
	if stored, err := s.store.GetCapsule(capsuleID); err == nil {
		_ = s.mirror.SaveCapsule(syncpkg.CapsuleDocument(stored))
	}
	return nil
}

// CompleteSubtask marks a subtask done through its capsule.
func (s *Service) CompleteSubtask(capsuleID, subtaskID uuid.UUID) error {
	if err := s.store.MarkSubtaskComplete(subtaskID, capsuleID); err != nil {
		return err
	}
	if st, err := s.store.GetSubtask(subtaskID); err == nil {
		_ = s.mirror.SaveSubtask(syncpkg.SubtaskDocument(st))
	}
	if stored, err := s.store.GetCapsule(capsuleID); err == nil {
		_ = s.mirror.SaveCapsule(syncpkg.CapsuleDocument(stored))
	}
	return nil
}

// DaySummary renders the user's tasks for one calendar day, highest priority
// first, with completion markers.
func (s *Service) DaySummary(userID uuid.UUID, day time.Time) (string, error) {
	tasks, err := s.store.TasksOn(userID, day)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "No tasks scheduled.", nil
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.SortOrder() > tasks[j].Priority.SortOrder()
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Tasks for %s:\n", day.Format("02 Jan, Mon"))
	for i, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %d. %s (%s, %s-%s, %s)\n", mark, i+1, t.Name, t.Priority, t.StartTime, t.EndTime, t.Category.Metadata().Name)
	}
	return b.String(), nil
}

// CapsuleSummary renders the user's capsules with progress bars.
func (s *Service) CapsuleSummary(userID uuid.UUID) (string, error) {
	capsules, err := s.store.CapsulesFor(userID)
	if err != nil {
		return "", err
	}
	if len(capsules) == 0 {
		return "No time capsules yet.", nil
	}

	var b strings.Builder
	b.WriteString("Time capsules:\n")
	for i, c := range capsules {
		fmt.Fprintf(&b, "%d. %s (due %s)\n   %s %.0f%%\n", i+1, c.Name, c.Deadline.Format("02 Jan 2006"), progressBar(c.CompletionPct), c.CompletionPct)
	}
	return b.String(), nil
}

// StreakSummary renders the user's counters and earned awards.
func (s *Service) StreakSummary(userID uuid.UUID) (string, error) {
	u, err := s.store.GetUser(userID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Current streak: %d days | Max streak: %d days\n", u.CurrentStreak, u.MaxStreak)
	if len(u.AwardsEarned) == 0 {
		b.WriteString("No awards earned yet.")
		return b.String(), nil
	}
	b.WriteString("Awards:\n")
	for _, a := range u.AwardsEarned {
		fmt.Fprintf(&b, "- %s (%s)\n", a.Name, a.EarnedAt.Format("02 Jan 2006"))
	}
	return b.String(), nil
}

func (s *Service) mirrorUser(u models.User) {
	_ = s.mirror.SaveUser(syncpkg.UserDocument(u))
}

func progressBar(pct float64) string {
	const barLength = 10
	filled := int(pct) * barLength / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barLength-filled) + "]"
}
