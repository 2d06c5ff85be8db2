package streak

import (
	"fmt"

	"synker/internal/models"
)

// Threshold binds a streak length to the award it unlocks.
type Threshold struct {
	Days  int
	Award models.Award
}

// StreakAwards is the fixed catalog of streak awards, ascending by length.
var StreakAwards = []Threshold{
	{7, models.Award{Name: "Weekly Streak", Description: "Completed every task for 7 consecutive days", Icon: "flame.fill"}},
	{30, models.Award{Name: "Monthly Streak", Description: "Completed every task for 30 consecutive days", Icon: "flame.fill"}},
	{90, models.Award{Name: "Quarterly Streak", Description: "Completed every task for 90 consecutive days", Icon: "star.fill"}},
	{180, models.Award{Name: "Half-Year Streak", Description: "Completed every task for 180 consecutive days", Icon: "star.fill"}},
	{365, models.Award{Name: "Yearly Streak", Description: "Completed every task for 365 consecutive days", Icon: "crown.fill"}},
}

// AwardPolicy selects how streak thresholds trigger.
//
// AwardOnExactDay grants an award only when the computed streak lands exactly
// on a threshold. A streak that jumps past a threshold between evaluations
// (bulk import, missed check-in) skips that award.
//
// AwardOnReaching grants every threshold at or below the computed streak that
// the user does not hold yet.
type AwardPolicy int

const (
	AwardOnExactDay AwardPolicy = iota
	AwardOnReaching
)

func (p AwardPolicy) String() string {
	switch p {
	case AwardOnExactDay:
		return "exact"
	case AwardOnReaching:
		return "reaching"
	}
	return fmt.Sprintf("AwardPolicy(%d)", int(p))
}

func ParseAwardPolicy(s string) (AwardPolicy, error) {
	switch s {
	case "exact", "":
		return AwardOnExactDay, nil
	case "reaching":
		return AwardOnReaching, nil
	}
	return 0, fmt.Errorf("unknown award policy %q", s)
}

// EligibleAwards returns the catalog awards the given stats unlock under the
// policy, excluding any the user already holds. Holding is checked by name,
// so the result is safe to grant repeatedly.
func EligibleAwards(stats Stats, held []models.AwardEarned, policy AwardPolicy) []models.Award {
	holds := func(name string) bool {
		for _, h := range held {
			if h.Name == name {
				return true
			}
		}
		return false
	}

	var out []models.Award
	for _, th := range StreakAwards {
		switch policy {
		case AwardOnExactDay:
			if stats.Current != th.Days {
				continue
			}
		case AwardOnReaching:
			if stats.Current < th.Days {
				continue
			}
		}
		if holds(th.Award.Name) {
			continue
		}
		out = append(out, th.Award)
	}
	return out
}
