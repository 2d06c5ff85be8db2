package models

import "testing"

func TestCategoryMetadataComplete(t *testing.T) {
	for _, c := range Categories() {
		m := c.Metadata()
		if m.Name == "" || m.Color == "" || m.Icon == "" || m.Insight == "" {
			t.Fatalf("category %s has incomplete metadata: %+v", c, m)
		}
		if m.Name != string(c) {
			t.Fatalf("category %s: display name %q", c, m.Name)
		}
	}
}

func TestCategoryMetadataUnknownFallsBack(t *testing.T) {
	if got := Category("Nonsense").Metadata(); got.Name != "Others" {
		t.Fatalf("expected Others fallback, got %q", got.Name)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Gym")
	if err != nil || c != CategoryGym {
		t.Fatalf("got %v, %v", c, err)
	}
	if _, err := ParseCategory("gym"); err == nil {
		t.Fatalf("expected error for wrong case")
	}
}

func TestCapsuleRecomputeCompletion(t *testing.T) {
	c := NewTimeCapsule("Learn Go", day(2025, 6, 1), PriorityLow, "basics", CategoryStudy)

	c.RecomputeCompletion(nil)
	if c.CompletionPct != 0 {
		t.Fatalf("empty capsule: got %v", c.CompletionPct)
	}

	subs := []Subtask{
		{Name: "a", Completed: true},
		{Name: "b", Completed: true},
		{Name: "c"},
	}
	c.RecomputeCompletion(subs)
	want := 100.0 * 2 / 3
	if diff := c.CompletionPct - want; diff > 0.01 || diff < -0.01 {
		t.Fatalf("got %v, want %v", c.CompletionPct, want)
	}
}
