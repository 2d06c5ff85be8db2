// Package storage holds the in-memory entity store: users, tasks, time
// capsules and subtasks linked by id lists, with cascade and consistency
// rules enforced on every mutation.
//
// Relations are id collections rather than pointers: a user owns the ids of
// its tasks and capsules, a capsule owns the ids of its subtasks. Deleting an
// owner deletes everything its id lists reach. Queries hand out copies, never
// references into the store.
package storage

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"synker/internal/models"
)

// Store is the single source of truth for all entities. One lock guards the
// whole store, so every exported operation is atomic with respect to its
// cascade effects.
type Store struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*models.User
	tasks    map[uuid.UUID]*models.Task
	capsules map[uuid.UUID]*models.TimeCapsule
	subtasks map[uuid.UUID]*models.Subtask
	emails   map[string]uuid.UUID
}

func New() *Store {
	return &Store{
		users:    make(map[uuid.UUID]*models.User),
		tasks:    make(map[uuid.UUID]*models.Task),
		capsules: make(map[uuid.UUID]*models.TimeCapsule),
		subtasks: make(map[uuid.UUID]*models.Subtask),
		emails:   make(map[string]uuid.UUID),
	}
}

// ---- users ----

// AddUser inserts a new user. The email is a unique key; a collision is
// rejected, never overwritten.
func (s *Store) AddUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[u.Email]; taken {
		return ErrDuplicateEmail
	}
	cp := cloneUser(u)
	s.users[cp.ID] = cp
	s.emails[cp.Email] = cp.ID
	return nil
}

func (s *Store) GetUser(id uuid.UUID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, notFoundf("user %s", id)
	}
	return *cloneUser(u), nil
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.emails[email]
	if !ok {
		return models.User{}, notFoundf("user with email %s", email)
	}
	return *cloneUser(s.users[id]), nil
}

// UpdateUser replaces the stored user's profile fields. The owned id lists,
// streak counters and earned awards are store-managed and kept as stored,
// regardless of what the caller passes in.
func (s *Store) UpdateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.users[u.ID]
	if !ok {
		return notFoundf("user %s", u.ID)
	}
	if u.Email != cur.Email {
		if _, taken := s.emails[u.Email]; taken {
			return ErrDuplicateEmail
		}
		delete(s.emails, cur.Email)
		s.emails[u.Email] = cur.ID
	}
	cp := cloneUser(u)
	cp.TaskIDs = cur.TaskIDs
	cp.CapsuleIDs = cur.CapsuleIDs
	cp.CurrentStreak = cur.CurrentStreak
	cp.MaxStreak = cur.MaxStreak
	cp.AwardsEarned = cur.AwardsEarned
	cp.LastModified = time.Now()
	s.users[cp.ID] = cp
	return nil
}

// DeleteUser removes the user and cascades over everything it owns: all
// tasks, all capsules and, through the capsules, all subtasks.
func (s *Store) DeleteUser(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return notFoundf("user %s", id)
	}
	for _, tid := range u.TaskIDs {
		delete(s.tasks, tid)
	}
	for _, cid := range u.CapsuleIDs {
		if c, ok := s.capsules[cid]; ok {
			for _, sid := range c.SubtaskIDs {
				delete(s.subtasks, sid)
			}
		}
		delete(s.capsules, cid)
	}
	delete(s.emails, u.Email)
	delete(s.users, id)
	return nil
}

// ---- tasks ----

// AddTask inserts a task and appends its id to the owner's task list. If the
// owner does not exist nothing is inserted.
func (s *Store) AddTask(t *models.Task, ownerID uuid.UUID) error {
	if err := t.Validate(); err != nil {
		return invalidf("%v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[ownerID]
	if !ok {
		return notFoundf("user %s", ownerID)
	}
	if _, dup := s.tasks[t.ID]; dup {
		return invalidf("task %s already exists", t.ID)
	}
	cp := *t
	s.tasks[cp.ID] = &cp
	owner.TaskIDs = append(owner.TaskIDs, cp.ID)
	return nil
}

func (s *Store) GetTask(id uuid.UUID) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, notFoundf("task %s", id)
	}
	return *t, nil
}

// UpdateTask replaces the stored task by id.
func (s *Store) UpdateTask(t *models.Task) error {
	if err := t.Validate(); err != nil {
		return invalidf("%v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[t.ID]; !ok {
		return notFoundf("task %s", t.ID)
	}
	cp := *t
	s.tasks[cp.ID] = &cp
	return nil
}

// MarkTaskComplete sets the completion flag. It does not recompute streaks;
// callers invoke the streak engine afterwards.
func (s *Store) MarkTaskComplete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return notFoundf("task %s", id)
	}
	if t.Completed {
		return invalidf("task %s is already complete", id)
	}
	t.Completed = true
	return nil
}

// DeleteTask removes the task and drops its id from the owner's list.
// Deleting an id that is already gone still succeeds.
func (s *Store) DeleteTask(taskID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[ownerID]
	if !ok {
		return notFoundf("user %s", ownerID)
	}
	delete(s.tasks, taskID)
	owner.TaskIDs = removeID(owner.TaskIDs, taskID)
	return nil
}

// ---- time capsules ----

func (s *Store) AddCapsule(c *models.TimeCapsule, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[ownerID]
	if !ok {
		return notFoundf("user %s", ownerID)
	}
	if _, dup := s.capsules[c.ID]; dup {
		return invalidf("capsule %s already exists", c.ID)
	}
	cp := cloneCapsule(c)
	cp.SubtaskIDs = []uuid.UUID{}
	cp.CompletionPct = 0
	s.capsules[cp.ID] = cp
	owner.CapsuleIDs = append(owner.CapsuleIDs, cp.ID)
	return nil
}

func (s *Store) GetCapsule(id uuid.UUID) (models.TimeCapsule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.capsules[id]
	if !ok {
		return models.TimeCapsule{}, notFoundf("capsule %s", id)
	}
	return *cloneCapsule(c), nil
}

// UpdateCapsule replaces the capsule's descriptive fields. The subtask id
// list and the derived completion percentage stay as stored.
func (s *Store) UpdateCapsule(c *models.TimeCapsule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.capsules[c.ID]
	if !ok {
		return notFoundf("capsule %s", c.ID)
	}
	cp := cloneCapsule(c)
	cp.SubtaskIDs = cur.SubtaskIDs
	cp.CompletionPct = cur.CompletionPct
	s.capsules[cp.ID] = cp
	return nil
}

// DeleteCapsule removes the capsule, cascades over its subtasks and drops the
// id from the owner's list. Idempotent the same way DeleteTask is.
func (s *Store) DeleteCapsule(capsuleID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.users[ownerID]
	if !ok {
		return notFoundf("user %s", ownerID)
	}
	if c, ok := s.capsules[capsuleID]; ok {
		for _, sid := range c.SubtaskIDs {
			delete(s.subtasks, sid)
		}
	}
	delete(s.capsules, capsuleID)
	owner.CapsuleIDs = removeID(owner.CapsuleIDs, capsuleID)
	return nil
}

// ---- subtasks ----

// AddSubtask inserts a subtask under a capsule and refreshes the capsule's
// completion percentage.
func (s *Store) AddSubtask(st *models.Subtask, capsuleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.capsules[capsuleID]
	if !ok {
		return notFoundf("capsule %s", capsuleID)
	}
	if _, dup := s.subtasks[st.ID]; dup {
		return invalidf("subtask %s already exists", st.ID)
	}
	cp := *st
	s.subtasks[cp.ID] = &cp
	c.SubtaskIDs = append(c.SubtaskIDs, cp.ID)
	s.recomputeCompletion(c)
	return nil
}

func (s *Store) GetSubtask(id uuid.UUID) (models.Subtask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.subtasks[id]
	if !ok {
		return models.Subtask{}, notFoundf("subtask %s", id)
	}
	return *st, nil
}

// UpdateSubtask replaces a subtask through its owning capsule and refreshes
// the capsule's completion percentage.
func (s *Store) UpdateSubtask(st *models.Subtask, capsuleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.capsules[capsuleID]
	if !ok {
		return notFoundf("capsule %s", capsuleID)
	}
	if _, ok := s.subtasks[st.ID]; !ok {
		return notFoundf("subtask %s", st.ID)
	}
	if !containsID(c.SubtaskIDs, st.ID) {
		return invalidf("subtask %s does not belong to capsule %s", st.ID, capsuleID)
	}
	cp := *st
	s.subtasks[cp.ID] = &cp
	s.recomputeCompletion(c)
	return nil
}

// MarkSubtaskComplete sets the completion flag on a subtask after verifying
// it belongs to the stated capsule, then refreshes the capsule.
func (s *Store) MarkSubtaskComplete(subtaskID, capsuleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.capsules[capsuleID]
	if !ok {
		return notFoundf("capsule %s", capsuleID)
	}
	st, ok := s.subtasks[subtaskID]
	if !ok {
		return notFoundf("subtask %s", subtaskID)
	}
	if !containsID(c.SubtaskIDs, subtaskID) {
		return invalidf("subtask %s does not belong to capsule %s", subtaskID, capsuleID)
	}
	if st.Completed {
		return invalidf("subtask %s is already complete", subtaskID)
	}
	st.Completed = true
	s.recomputeCompletion(c)
	return nil
}

// DeleteSubtask removes a subtask from its capsule. A subtask id that is
// gone already is a no-op; a subtask that exists under a different capsule is
// rejected without mutation.
func (s *Store) DeleteSubtask(subtaskID, capsuleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.capsules[capsuleID]
	if !ok {
		return notFoundf("capsule %s", capsuleID)
	}
	if _, exists := s.subtasks[subtaskID]; exists && !containsID(c.SubtaskIDs, subtaskID) {
		return invalidf("subtask %s does not belong to capsule %s", subtaskID, capsuleID)
	}
	delete(s.subtasks, subtaskID)
	c.SubtaskIDs = removeID(c.SubtaskIDs, subtaskID)
	s.recomputeCompletion(c)
	return nil
}

// recomputeCompletion must run with the write lock held.
func (s *Store) recomputeCompletion(c *models.TimeCapsule) {
	subs := make([]models.Subtask, 0, len(c.SubtaskIDs))
	for _, sid := range c.SubtaskIDs {
		if st, ok := s.subtasks[sid]; ok {
			subs = append(subs, *st)
		}
	}
	c.RecomputeCompletion(subs)
}

// ---- streaks and awards ----

// ReplaceStreak writes back streak counters computed by the engine.
func (s *Store) ReplaceStreak(userID uuid.UUID, current, maximum int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return notFoundf("user %s", userID)
	}
	u.CurrentStreak = current
	u.MaxStreak = maximum
	u.LastModified = time.Now()
	return nil
}

// GrantAward appends an earned-award record unless the user already holds an
// award with the same name. Returns true when the record was appended.
func (s *Store) GrantAward(userID uuid.UUID, a models.AwardEarned) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return false, notFoundf("user %s", userID)
	}
	if u.HasAward(a.Name) {
		return false, nil
	}
	u.AwardsEarned = append(u.AwardsEarned, a)
	u.LastModified = time.Now()
	return true, nil
}

// ---- queries ----

// TasksFor returns all tasks owned by the user, in insertion order. The
// result is freshly allocated.
func (s *Store) TasksFor(ownerID uuid.UUID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasksForLocked(ownerID)
}

func (s *Store) tasksForLocked(ownerID uuid.UUID) ([]models.Task, error) {
	u, ok := s.users[ownerID]
	if !ok {
		return nil, notFoundf("user %s", ownerID)
	}
	out := make([]models.Task, 0, len(u.TaskIDs))
	for _, tid := range u.TaskIDs {
		if t, ok := s.tasks[tid]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

// TasksOn returns the user's tasks dated on the given calendar day.
func (s *Store) TasksOn(ownerID uuid.UUID, day time.Time) ([]models.Task, error) {
	return s.filterTasks(ownerID, func(t models.Task) bool {
		return models.SameDay(t.Date, day)
	})
}

func (s *Store) TasksByCategory(ownerID uuid.UUID, c models.Category) ([]models.Task, error) {
	return s.filterTasks(ownerID, func(t models.Task) bool { return t.Category == c })
}

func (s *Store) TasksByPriority(ownerID uuid.UUID, p models.Priority) ([]models.Task, error) {
	return s.filterTasks(ownerID, func(t models.Task) bool { return t.Priority == p })
}

func (s *Store) CompletedTasks(ownerID uuid.UUID) ([]models.Task, error) {
	return s.filterTasks(ownerID, func(t models.Task) bool { return t.Completed })
}

func (s *Store) PendingTasks(ownerID uuid.UUID) ([]models.Task, error) {
	return s.filterTasks(ownerID, func(t models.Task) bool { return !t.Completed })
}

// OverdueTasks returns incomplete tasks dated strictly before today.
func (s *Store) OverdueTasks(ownerID uuid.UUID, today time.Time) ([]models.Task, error) {
	day := models.DayOf(today)
	return s.filterTasks(ownerID, func(t models.Task) bool {
		return t.Day().Before(day) && !t.Completed
	})
}

func (s *Store) filterTasks(ownerID uuid.UUID, keep func(models.Task) bool) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, err := s.tasksForLocked(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]models.Task, 0, len(all))
	for _, t := range all {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

// CapsulesFor returns all capsules owned by the user, in insertion order.
func (s *Store) CapsulesFor(ownerID uuid.UUID) ([]models.TimeCapsule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[ownerID]
	if !ok {
		return nil, notFoundf("user %s", ownerID)
	}
	out := make([]models.TimeCapsule, 0, len(u.CapsuleIDs))
	for _, cid := range u.CapsuleIDs {
		if c, ok := s.capsules[cid]; ok {
			out = append(out, *cloneCapsule(c))
		}
	}
	return out, nil
}

// SubtasksFor returns the capsule's subtasks in its id-list order.
func (s *Store) SubtasksFor(capsuleID uuid.UUID) ([]models.Subtask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.capsules[capsuleID]
	if !ok {
		return nil, notFoundf("capsule %s", capsuleID)
	}
	out := make([]models.Subtask, 0, len(c.SubtaskIDs))
	for _, sid := range c.SubtaskIDs {
		if st, ok := s.subtasks[sid]; ok {
			out = append(out, *st)
		}
	}
	return out, nil
}

// AwardsFor returns the user's earned-award records.
func (s *Store) AwardsFor(userID uuid.UUID) ([]models.AwardEarned, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, notFoundf("user %s", userID)
	}
	out := make([]models.AwardEarned, len(u.AwardsEarned))
	copy(out, u.AwardsEarned)
	return out, nil
}

// ---- helpers ----

func cloneUser(u *models.User) *models.User {
	cp := *u
	cp.TaskIDs = append([]uuid.UUID{}, u.TaskIDs...)
	cp.CapsuleIDs = append([]uuid.UUID{}, u.CapsuleIDs...)
	cp.AwardsEarned = append([]models.AwardEarned{}, u.AwardsEarned...)
	if u.Settings != nil {
		st := *u.Settings
		cp.Settings = &st
	}
	return &cp
}

func cloneCapsule(c *models.TimeCapsule) *models.TimeCapsule {
	cp := *c
	cp.SubtaskIDs = append([]uuid.UUID{}, c.SubtaskIDs...)
	return &cp
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
