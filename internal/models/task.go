package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// clockLayout is the 12-hour clock format tasks carry for start/end times,
// e.g. "06:30 AM".
const clockLayout = "03:04 PM"

type Task struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Date          time.Time `json:"date"`
	Priority      Priority  `json:"priority"`
	Completed     bool      `json:"completed"`
	Alert         Alert     `json:"alert"`
	Category      Category  `json:"category"`
	OtherCategory string    `json:"other_category,omitempty"`
}

func NewTask(name, description, startTime, endTime string, date time.Time, priority Priority, alert Alert, category Category) *Task {
	return &Task{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		StartTime:   startTime,
		EndTime:     endTime,
		Date:        date,
		Priority:    priority,
		Alert:       alert,
		Category:    category,
	}
}

// Validate checks the fields a task must carry before it enters the store.
// Start and end are same-day clock times and start must come first.
func (t *Task) Validate() error {
	if t.Name == "" {
		return errors.New("task name is empty")
	}
	start, err := ParseClock(t.StartTime)
	if err != nil {
		return fmt.Errorf("start time: %w", err)
	}
	end, err := ParseClock(t.EndTime)
	if err != nil {
		return fmt.Errorf("end time: %w", err)
	}
	if !start.Before(end) {
		return errors.New("task start must be before its end")
	}
	if t.Date.IsZero() {
		return errors.New("task date is unset")
	}
	return nil
}

// Day returns the task's calendar day with the time-of-day stripped.
func (t *Task) Day() time.Time {
	return DayOf(t.Date)
}

// DayOf truncates a time to midnight of its calendar day.
func DayOf(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

// ParseClock parses a 12-hour clock string like "10:30 AM".
func ParseClock(s string) (time.Time, error) {
	ts, err := time.Parse(clockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse clock %q: %w", s, err)
	}
	return ts, nil
}

// CombineDayTime anchors a clock string on a calendar day, in the day's location.
func CombineDayTime(day time.Time, clock string) (time.Time, error) {
	c, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, day.Location()), nil
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// SortOrder ranks priorities for display, low first.
func (p Priority) SortOrder() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	}
	return 0
}

// Color returns the display color token for the priority.
func (p Priority) Color() string {
	switch p {
	case PriorityLow:
		return "green"
	case PriorityMedium:
		return "orange"
	case PriorityHigh:
		return "red"
	}
	return "gray"
}

func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("unknown priority %q", s)
}

type Alert string

const (
	AlertNone           Alert = "None"
	AlertFiveMinutes    Alert = "5 minutes"
	AlertTenMinutes     Alert = "10 minutes"
	AlertFifteenMinutes Alert = "15 minutes"
	AlertThirtyMinutes  Alert = "30 minutes"
	AlertOneHour        Alert = "1 hour"
)

// Offset returns how long before the task start the alert should fire.
func (a Alert) Offset() time.Duration {
	switch a {
	case AlertFiveMinutes:
		return 5 * time.Minute
	case AlertTenMinutes:
		return 10 * time.Minute
	case AlertFifteenMinutes:
		return 15 * time.Minute
	case AlertThirtyMinutes:
		return 30 * time.Minute
	case AlertOneHour:
		return time.Hour
	}
	return 0
}

func ParseAlert(s string) (Alert, error) {
	switch Alert(s) {
	case AlertNone, AlertFiveMinutes, AlertTenMinutes, AlertFifteenMinutes, AlertThirtyMinutes, AlertOneHour:
		return Alert(s), nil
	}
	return "", fmt.Errorf("unknown alert %q", s)
}
