// Package notify computes when a task's alert should be delivered. It only
// reads task data; actual delivery belongs to an external scheduler.
package notify

import (
	"fmt"
	"sort"
	"time"

	"synker/internal/models"
)

// Delivery pairs a task with the moment its alert fires.
type Delivery struct {
	Task models.Task
	At   time.Time
}

// DeliveryTime computes the alert moment for a task: the start clock anchored
// on the task's date, minus the alert lead time. The second return is false
// when the task has no alert or its start time does not parse.
func DeliveryTime(t models.Task) (time.Time, bool) {
	if t.Alert == models.AlertNone {
		return time.Time{}, false
	}
	start, err := models.CombineDayTime(t.Date, t.StartTime)
	if err != nil {
		return time.Time{}, false
	}
	return start.Add(-t.Alert.Offset()), true
}

// Message renders the alert body for a task.
func Message(t models.Task) string {
	switch t.Alert {
	case models.AlertFiveMinutes:
		return fmt.Sprintf("Task starting in 5 minutes at %s", t.StartTime)
	case models.AlertTenMinutes:
		return fmt.Sprintf("Task starting in 10 minutes at %s", t.StartTime)
	case models.AlertFifteenMinutes:
		return fmt.Sprintf("Task starting in 15 minutes at %s", t.StartTime)
	case models.AlertThirtyMinutes:
		return fmt.Sprintf("Task starting in 30 minutes at %s", t.StartTime)
	case models.AlertOneHour:
		return fmt.Sprintf("Task starting in 1 hour at %s", t.StartTime)
	}
	return fmt.Sprintf("Task starting now at %s", t.StartTime)
}

// Upcoming returns the deliveries still in the future at the given moment,
// soonest first. Past deliveries are never scheduled.
func Upcoming(now time.Time, tasks []models.Task) []Delivery {
	var out []Delivery
	for _, t := range tasks {
		at, ok := DeliveryTime(t)
		if !ok || !at.After(now) {
			continue
		}
		out = append(out, Delivery{Task: t, At: at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}
