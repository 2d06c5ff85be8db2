package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"synker/internal/config"
	"synker/internal/models"
	"synker/internal/service"
	"synker/internal/storage"
	"synker/internal/streak"
	syncpkg "synker/internal/sync"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	store := storage.New()
	engine := streak.NewEngine(store, cfg.AwardPolicy)
	svc := service.New(store, engine, syncpkg.NullMirror{}, cfg.BcryptCost)

	if !cfg.SeedDemo {
		log.Println("Nothing to do. Set SYNKER_SEED_DEMO=true to run the demo walkthrough.")
		return
	}

	if err := runDemo(svc); err != nil {
		log.Fatalf("demo: %v", err)
	}
}

// runDemo seeds one user with a month of completed history plus a few live
// tasks and capsules, then prints the derived summaries.
func runDemo(svc *service.Service) error {
	user, err := svc.SignUp("John Doe", "john@example.com", "change-me")
	if err != nil {
		return err
	}

	today := models.DayOf(time.Now())

	tasks := []*models.Task{
		models.NewTask("Morning Workout", "30-minute cardio session", "06:00 AM", "06:30 AM", today, models.PriorityLow, models.AlertFiveMinutes, models.CategorySports),
		models.NewTask("Team Meeting", "Weekly project status update", "10:00 AM", "11:00 AM", today, models.PriorityMedium, models.AlertTenMinutes, models.CategoryMeetings),
		models.NewTask("Evening Jog", "Run 5km in the park", "06:30 PM", "07:00 PM", today.AddDate(0, 0, -1), models.PriorityMedium, models.AlertTenMinutes, models.CategorySports),
		models.NewTask("Read a Book", "Read at least 20 pages", "09:00 PM", "09:30 PM", today.AddDate(0, 0, -2), models.PriorityLow, models.AlertFiveMinutes, models.CategoryHabits),
	}
	for _, t := range tasks {
		if err := svc.AddTask(user.ID, t); err != nil {
			return err
		}
	}
	// Backfill: a completed task on each of the last 30 days.
	for i := 1; i <= 30; i++ {
		t := models.NewTask("Daily Review", fmt.Sprintf("Completed the day-%d review.", i), "08:00 AM", "08:30 AM", today.AddDate(0, 0, -i), models.PriorityLow, models.AlertNone, models.CategoryOthers)
		t.Completed = true
		if err := svc.AddTask(user.ID, t); err != nil {
			return err
		}
	}

	capsule := models.NewTimeCapsule("Learn Go", today.AddDate(0, 0, 30), models.PriorityLow, "Master the basics of the Go language", models.CategoryStudy)
	if err := svc.AddCapsule(user.ID, capsule); err != nil {
		return err
	}
	subtasks := []*models.Subtask{
		models.NewSubtask("Variables and constants", "Declarations, zero values, iota"),
		models.NewSubtask("Control flow", "if, for, switch, defer"),
		models.NewSubtask("Goroutines and channels", "Concurrency building blocks"),
	}
	for _, st := range subtasks {
		if err := svc.AddSubtask(capsule.ID, st); err != nil {
			return err
		}
	}
	if err := svc.CompleteSubtask(capsule.ID, subtasks[0].ID); err != nil {
		return err
	}

	// Complete the remaining task of yesterday's backlog, then today's.
	if _, _, err := svc.CompleteTask(user.ID, tasks[2].ID); err != nil {
		return err
	}
	if _, _, err := svc.CompleteTask(user.ID, tasks[0].ID); err != nil {
		return err
	}
	stats, granted, err := svc.CompleteTask(user.ID, tasks[1].ID)
	if err != nil {
		return err
	}
	for _, a := range granted {
		log.Printf("award earned: %s", a.Name)
	}
	log.Printf("streak after completions: current=%d max=%d", stats.Current, stats.Max)

	day, err := svc.DaySummary(user.ID, today)
	if err != nil {
		return err
	}
	capsules, err := svc.CapsuleSummary(user.ID)
	if err != nil {
		return err
	}
	streaks, err := svc.StreakSummary(user.ID)
	if err != nil {
		return err
	}
	fmt.Println(day)
	fmt.Println(capsules)
	fmt.Println(streaks)
	return nil
}
