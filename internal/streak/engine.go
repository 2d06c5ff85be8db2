// Package streak derives consistency metrics from a user's task history: the
// current run of fully-completed days, the best run ever seen, and the awards
// those runs unlock.
//
// Nothing here is incremental. Every computation starts from the raw task set,
// so running it twice against unchanged data always yields the same answer.
package streak

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"synker/internal/models"
)

// Stats is the pair of counters kept per user.
type Stats struct {
	Current int
	Max     int
}

// QualifyingDays returns the sorted, de-duplicated calendar days on which the
// user completed everything. A day qualifies only if it has at least one task
// and every task on it is complete; an empty day never qualifies.
func QualifyingDays(tasks []models.Task) []time.Time {
	type dayState struct {
		total int
		done  int
	}
	byDay := make(map[time.Time]*dayState)
	for _, t := range tasks {
		day := t.Day()
		st := byDay[day]
		if st == nil {
			st = &dayState{}
			byDay[day] = st
		}
		st.total++
		if t.Completed {
			st.done++
		}
	}
	days := make([]time.Time, 0, len(byDay))
	for day, st := range byDay {
		if st.total > 0 && st.done == st.total {
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Compute derives the streak counters for the given evaluation date.
//
// The streak is unbroken as long as the latest qualifying day is today or
// yesterday; anything older resets the current streak to zero. Walking back
// from the latest qualifying day, each exactly-one-day-earlier qualifying day
// extends the run, and the first gap ends it.
//
// prevMax is a monotonic floor: a recomputation never lowers the max streak.
func Compute(today time.Time, tasks []models.Task, prevMax int) Stats {
	days := QualifyingDays(tasks)
	stats := Stats{Max: prevMax}
	if len(days) == 0 {
		return stats
	}

	latest := days[len(days)-1]
	yesterday := models.DayOf(today).AddDate(0, 0, -1)
	if latest.Before(yesterday) {
		return stats
	}

	run := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i-1].Equal(days[i].AddDate(0, 0, -1)) {
			run++
			continue
		}
		break
	}
	stats.Current = run
	if run > stats.Max {
		stats.Max = run
	}
	return stats
}

// Engine reads a user's tasks from the store, recomputes the counters and
// writes them back, granting any award the new streak unlocks.
type Engine struct {
	store  TaskSource
	policy AwardPolicy
	now    func() time.Time
}

// TaskSource is the slice of the entity store the engine needs.
type TaskSource interface {
	GetUser(id uuid.UUID) (models.User, error)
	TasksFor(ownerID uuid.UUID) ([]models.Task, error)
	ReplaceStreak(userID uuid.UUID, current, maximum int) error
	GrantAward(userID uuid.UUID, a models.AwardEarned) (bool, error)
}

func NewEngine(store TaskSource, policy AwardPolicy) *Engine {
	return &Engine{store: store, policy: policy, now: time.Now}
}

// Refresh recomputes the user's streak from scratch and persists the result.
// It returns the fresh stats plus any awards granted by this evaluation.
func (e *Engine) Refresh(userID uuid.UUID) (Stats, []models.AwardEarned, error) {
	u, err := e.store.GetUser(userID)
	if err != nil {
		return Stats{}, nil, err
	}
	tasks, err := e.store.TasksFor(userID)
	if err != nil {
		return Stats{}, nil, err
	}

	stats := Compute(e.now(), tasks, u.MaxStreak)
	if err := e.store.ReplaceStreak(userID, stats.Current, stats.Max); err != nil {
		return Stats{}, nil, err
	}

	var granted []models.AwardEarned
	for _, a := range EligibleAwards(stats, u.AwardsEarned, e.policy) {
		earned := a.Earn(e.now())
		ok, err := e.store.GrantAward(userID, earned)
		if err != nil {
			return Stats{}, nil, err
		}
		if ok {
			granted = append(granted, earned)
		}
	}
	return stats, granted, nil
}
