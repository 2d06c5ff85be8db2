package notify

import (
	"testing"
	"time"

	"synker/internal/models"
)

func testTask(alert models.Alert) models.Task {
	date := time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)
	return *models.NewTask("Team Meeting", "", "10:00 AM", "11:00 AM", date, models.PriorityMedium, alert, models.CategoryMeetings)
}

func TestDeliveryTime(t *testing.T) {
	start := time.Date(2025, 3, 30, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		alert models.Alert
		want  time.Time
	}{
		{models.AlertFiveMinutes, start.Add(-5 * time.Minute)},
		{models.AlertTenMinutes, start.Add(-10 * time.Minute)},
		{models.AlertFifteenMinutes, start.Add(-15 * time.Minute)},
		{models.AlertThirtyMinutes, start.Add(-30 * time.Minute)},
		{models.AlertOneHour, start.Add(-time.Hour)},
	}
	for _, tc := range cases {
		t.Run(string(tc.alert), func(t *testing.T) {
			at, ok := DeliveryTime(testTask(tc.alert))
			if !ok {
				t.Fatalf("expected a delivery time")
			}
			if !at.Equal(tc.want) {
				t.Fatalf("got %v, want %v", at, tc.want)
			}
		})
	}
}

func TestDeliveryTimeNoAlert(t *testing.T) {
	if _, ok := DeliveryTime(testTask(models.AlertNone)); ok {
		t.Fatalf("AlertNone should not schedule")
	}
}

func TestDeliveryTimeUnparseableStart(t *testing.T) {
	task := testTask(models.AlertFiveMinutes)
	task.StartTime = "sometime"
	if _, ok := DeliveryTime(task); ok {
		t.Fatalf("unparseable start should not schedule")
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		alert models.Alert
		want  string
	}{
		{models.AlertNone, "Task starting now at 10:00 AM"},
		{models.AlertFiveMinutes, "Task starting in 5 minutes at 10:00 AM"},
		{models.AlertOneHour, "Task starting in 1 hour at 10:00 AM"},
	}
	for _, tc := range cases {
		if got := Message(testTask(tc.alert)); got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.alert, got, tc.want)
		}
	}
}

func TestUpcomingSkipsPastAndSorts(t *testing.T) {
	early := testTask(models.AlertOneHour)     // fires 09:00
	late := testTask(models.AlertFiveMinutes)  // fires 09:55
	past := testTask(models.AlertThirtyMinutes)
	past.Date = past.Date.AddDate(0, 0, -1)

	now := time.Date(2025, 3, 30, 8, 0, 0, 0, time.UTC)
	got := Upcoming(now, []models.Task{late, past, early})
	if len(got) != 2 {
		t.Fatalf("got %d deliveries, want 2", len(got))
	}
	if !got[0].At.Before(got[1].At) {
		t.Fatalf("deliveries out of order: %v then %v", got[0].At, got[1].At)
	}
}
