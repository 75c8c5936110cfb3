package progress

import (
	"sort"

	"github.com/2beens/axend/internal/tracking/goals"
)

// SelectWeightGoal picks the goal backing the quick progress card among the
// weight-classified goals: active goals first, then the most recently
// created, then the greatest id. Nil when the client has no weight goal.
func SelectWeightGoal(gs []goals.Goal) *goals.Goal {
	var candidates []goals.Goal
	for _, g := range gs {
		if goals.Classify(g) == goals.Weight {
			candidates = append(candidates, g)
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		aActive, bActive := a.Status == goals.StatusActive, b.Status == goals.StatusActive
		if aActive != bActive {
			return aActive
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID.String() > b.ID.String()
	})

	selected := candidates[0]
	return &selected
}
