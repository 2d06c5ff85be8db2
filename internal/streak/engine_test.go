package streak

import (
	"testing"
	"time"

	"synker/internal/models"
	"synker/internal/storage"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func taskOn(date time.Time, completed bool) models.Task {
	t := models.NewTask("t", "", "08:00 AM", "09:00 AM", date, models.PriorityLow, models.AlertNone, models.CategoryOthers)
	t.Completed = completed
	return *t
}

func tasksOn(completed bool, dates ...time.Time) []models.Task {
	out := make([]models.Task, 0, len(dates))
	for _, d := range dates {
		out = append(out, taskOn(d, completed))
	}
	return out
}

func TestQualifyingDays(t *testing.T) {
	d1 := day(2025, 3, 27)
	d2 := day(2025, 3, 28)

	tasks := []models.Task{
		taskOn(d1, true),
		taskOn(d1, true), // two complete tasks, one day
		taskOn(d2, true),
		taskOn(d2, false), // mixed day does not qualify
	}
	got := QualifyingDays(tasks)
	if len(got) != 1 || !got[0].Equal(d1) {
		t.Fatalf("got %v, want [%v]", got, d1)
	}

	if got := QualifyingDays(nil); len(got) != 0 {
		t.Fatalf("no tasks should mean no qualifying days, got %v", got)
	}
}

func TestComputeScenarios(t *testing.T) {
	today := day(2025, 3, 30)

	cases := []struct {
		name    string
		tasks   []models.Task
		prevMax int
		want    Stats
	}{
		{
			name: "no history",
			want: Stats{Current: 0, Max: 0},
		},
		{
			name:  "four consecutive days ending today",
			tasks: tasksOn(true, day(2025, 3, 27), day(2025, 3, 28), day(2025, 3, 29), today),
			want:  Stats{Current: 4, Max: 4},
		},
		{
			name:  "run ending yesterday is unbroken",
			tasks: tasksOn(true, day(2025, 3, 28), day(2025, 3, 29)),
			want:  Stats{Current: 2, Max: 2},
		},
		{
			name:    "latest three days old breaks regardless of history",
			tasks:   tasksOn(true, day(2025, 3, 20), day(2025, 3, 21), day(2025, 3, 22), day(2025, 3, 23), day(2025, 3, 24), day(2025, 3, 25), day(2025, 3, 26), day(2025, 3, 27)),
			prevMax: 8,
			want:    Stats{Current: 0, Max: 8},
		},
		{
			name: "mixed day in the middle restarts the walk",
			tasks: append(
				tasksOn(true, day(2025, 3, 27), day(2025, 3, 28), day(2025, 3, 29), today),
				taskOn(day(2025, 3, 28), false),
			),
			want: Stats{Current: 2, Max: 2},
		},
		{
			name:    "max streak is a monotonic floor",
			tasks:   tasksOn(true, day(2025, 3, 29), today),
			prevMax: 10,
			want:    Stats{Current: 2, Max: 10},
		},
		{
			name:  "gap further back limits the run",
			tasks: tasksOn(true, day(2025, 3, 25), day(2025, 3, 29), today),
			want:  Stats{Current: 2, Max: 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(today, tc.tasks, tc.prevMax)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
			// Idempotence: same inputs, same answer.
			if again := Compute(today, tc.tasks, got.Max); again.Current != got.Current || again.Max != got.Max {
				t.Fatalf("recompute changed the answer: %+v then %+v", got, again)
			}
			if got.Current > got.Max {
				t.Fatalf("current %d exceeds max %d", got.Current, got.Max)
			}
		})
	}
}

func TestEligibleAwardsExactDay(t *testing.T) {
	got := EligibleAwards(Stats{Current: 7}, nil, AwardOnExactDay)
	if len(got) != 1 || got[0].Name != "Weekly Streak" {
		t.Fatalf("got %v", got)
	}

	// Overshooting the threshold grants nothing under exact-day.
	if got := EligibleAwards(Stats{Current: 8}, nil, AwardOnExactDay); len(got) != 0 {
		t.Fatalf("day 8 granted %v", got)
	}

	// Already held: nothing.
	held := []models.AwardEarned{{Name: "Weekly Streak"}}
	if got := EligibleAwards(Stats{Current: 7}, held, AwardOnExactDay); len(got) != 0 {
		t.Fatalf("duplicate grant: %v", got)
	}
}

func TestEligibleAwardsOnReaching(t *testing.T) {
	held := []models.AwardEarned{{Name: "Weekly Streak"}}
	got := EligibleAwards(Stats{Current: 90}, held, AwardOnReaching)
	want := []string{"Monthly Streak", "Quarterly Streak"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, a := range got {
		if a.Name != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEngineRefresh(t *testing.T) {
	store := storage.New()
	u := models.NewUser("John Doe", "a@example.com", "hash")
	if err := store.AddUser(u); err != nil {
		t.Fatalf("AddUser: %v", err)
	}

	today := day(2025, 3, 30)
	// Exactly seven fully-completed days ending today.
	for i := 0; i < 7; i++ {
		task := taskOn(today.AddDate(0, 0, -i), true)
		if err := store.AddTask(&task, u.ID); err != nil {
			t.Fatalf("AddTask: %v", err)
		}
	}

	e := NewEngine(store, AwardOnExactDay)
	e.now = func() time.Time { return today }

	stats, granted, err := e.Refresh(u.ID)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if stats.Current != 7 || stats.Max != 7 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(granted) != 1 || granted[0].Name != "Weekly Streak" {
		t.Fatalf("granted = %v", granted)
	}

	got, _ := store.GetUser(u.ID)
	if got.CurrentStreak != 7 || got.MaxStreak != 7 {
		t.Fatalf("write-back missing: %+v", got)
	}
	if len(got.AwardsEarned) != 1 {
		t.Fatalf("award not persisted: %v", got.AwardsEarned)
	}

	// Second run with no data change: same counters, no new award.
	stats, granted, err = e.Refresh(u.ID)
	if err != nil {
		t.Fatalf("second Refresh: %v", err)
	}
	if stats.Current != 7 || stats.Max != 7 {
		t.Fatalf("recompute drifted: %+v", stats)
	}
	if len(granted) != 0 {
		t.Fatalf("duplicate award granted: %v", granted)
	}
	got, _ = store.GetUser(u.ID)
	if len(got.AwardsEarned) != 1 {
		t.Fatalf("award count = %d, want 1", len(got.AwardsEarned))
	}
}

func TestEngineRefreshMaxNeverDrops(t *testing.T) {
	store := storage.New()
	u := models.NewUser("John Doe", "a@example.com", "hash")
	if err := store.AddUser(u); err != nil {
		t.Fatalf("AddUser: %v", err)
	}
	today := day(2025, 3, 30)
	// History too old to count.
	task := taskOn(today.AddDate(0, 0, -5), true)
	if err := store.AddTask(&task, u.ID); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := store.ReplaceStreak(u.ID, 0, 12); err != nil {
		t.Fatalf("ReplaceStreak: %v", err)
	}

	e := NewEngine(store, AwardOnExactDay)
	e.now = func() time.Time { return today }

	stats, _, err := e.Refresh(u.ID)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if stats.Current != 0 || stats.Max != 12 {
		t.Fatalf("stats = %+v, want current 0 max 12", stats)
	}
}
