// Package sync maps entities onto the field-for-field documents a remote
// document store keeps, and defines the Mirror hook the service layer calls
// after mutations. The core never depends on a mirror for its invariants;
// NullMirror is a valid wiring.
package sync

import (
	"synker/internal/models"
)

// Document is one remote record. Keys follow the entities' JSON names; ids
// are string-encoded, users are additionally keyed by email.
type Document = map[string]any

// Mirror receives entity snapshots after local mutations succeed.
type Mirror interface {
	SaveUser(doc Document) error
	SaveTask(doc Document) error
	SaveCapsule(doc Document) error
	SaveSubtask(doc Document) error
	Delete(collection, id string) error
}

// NullMirror drops everything. Used when no remote store is configured.
type NullMirror struct{}

func (NullMirror) SaveUser(Document) error     { return nil }
func (NullMirror) SaveTask(Document) error     { return nil }
func (NullMirror) SaveCapsule(Document) error  { return nil }
func (NullMirror) SaveSubtask(Document) error  { return nil }
func (NullMirror) Delete(string, string) error { return nil }

// UserDocument flattens a user. The password hash never leaves the process.
func UserDocument(u models.User) Document {
	taskIDs := make([]string, len(u.TaskIDs))
	for i, id := range u.TaskIDs {
		taskIDs[i] = id.String()
	}
	capsuleIDs := make([]string, len(u.CapsuleIDs))
	for i, id := range u.CapsuleIDs {
		capsuleIDs[i] = id.String()
	}
	awards := make([]Document, len(u.AwardsEarned))
	for i, a := range u.AwardsEarned {
		awards[i] = Document{
			"id":          a.ID.String(),
			"name":        a.Name,
			"description": a.Description,
			"icon":        a.Icon,
			"earned_at":   a.EarnedAt,
		}
	}
	doc := Document{
		"id":             u.ID.String(),
		"name":           u.Name,
		"email":          u.Email,
		"phone":          u.Phone,
		"task_ids":       taskIDs,
		"capsule_ids":    capsuleIDs,
		"current_streak": u.CurrentStreak,
		"max_streak":     u.MaxStreak,
		"awards_earned":  awards,
		"last_modified":  u.LastModified,
	}
	if u.Settings != nil {
		doc["settings"] = Document{
			"profile_picture":       u.Settings.ProfilePicture,
			"usage":                 string(u.Settings.Usage),
			"bedtime":               u.Settings.Bedtime,
			"wake_up_time":          u.Settings.WakeUpTime,
			"notifications_enabled": u.Settings.NotificationsEnabled,
		}
	}
	return doc
}

func TaskDocument(t models.Task) Document {
	return Document{
		"id":             t.ID.String(),
		"name":           t.Name,
		"description":    t.Description,
		"start_time":     t.StartTime,
		"end_time":       t.EndTime,
		"date":           t.Date,
		"priority":       string(t.Priority),
		"completed":      t.Completed,
		"alert":          string(t.Alert),
		"category":       string(t.Category),
		"other_category": t.OtherCategory,
	}
}

func CapsuleDocument(c models.TimeCapsule) Document {
	subtaskIDs := make([]string, len(c.SubtaskIDs))
	for i, id := range c.SubtaskIDs {
		subtaskIDs[i] = id.String()
	}
	return Document{
		"id":                    c.ID.String(),
		"name":                  c.Name,
		"deadline":              c.Deadline,
		"priority":              string(c.Priority),
		"description":           c.Description,
		"category":              string(c.Category),
		"completion_percentage": c.CompletionPct,
		"subtask_ids":           subtaskIDs,
	}
}

func SubtaskDocument(st models.Subtask) Document {
	return Document{
		"id":          st.ID.String(),
		"name":        st.Name,
		"description": st.Description,
		"completed":   st.Completed,
	}
}
