package progress

import (
	"math"

	"github.com/2beens/axend/internal/tracking/goals"
	"github.com/2beens/axend/internal/tracking/measurements"
)

// Result is the progress of a weight goal. Initial, Current and Target are
// surfaced next to Percent so callers can show start, current and target.
type Result struct {
	Percent int     `json:"percent"`
	Initial float64 `json:"initial"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// ComputeGoalProgress derives how far the client got from the first
// measurement towards the goal target, as a 0..100 percentage. It works for
// both losing and gaining goals.
//
// It returns nil when progress is not computable: the target is missing or
// not a finite number, the goal is not a weight goal, or a measured weight is
// not finite. cachedWeight is the client's denormalized current weight, used
// only when there is no measurement history.
func ComputeGoalProgress(goal goals.Goal, ms []measurements.Measurement, cachedWeight *float64) *Result {
	if goal.TargetValue == nil || !finite(*goal.TargetValue) {
		return nil
	}
	if goals.Classify(goal) != goals.Weight {
		return nil
	}
	target := *goal.TargetValue

	var initial, current float64
	if earliest, latest, ok := measurements.Bounds(ms); ok {
		initial, current = earliest.Weight, latest.Weight
	} else {
		// without history the start and the current value are the same point:
		// the cached weight, or the target itself
		initial, _ = FirstOf(
			Value(SourceProfile, cachedWeight),
			Value(SourceGoal, goal.TargetValue),
		)
		current = initial
	}
	if !finite(initial) || !finite(current) {
		return nil
	}

	return &Result{
		Percent: percent(initial, current, target),
		Initial: initial,
		Current: current,
		Target:  target,
	}
}

func percent(initial, current, target float64) int {
	// no distance to travel, either at target or not
	if initial == target {
		if current == target {
			return 100
		}
		return 0
	}

	raw := (current - initial) / (target - initial) * 100
	return int(math.Round(math.Max(0, math.Min(100, raw))))
}
