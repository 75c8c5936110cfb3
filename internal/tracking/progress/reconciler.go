package progress

import (
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/internal/tracking/goals"
	"github.com/2beens/axend/internal/tracking/measurements"
)

// DisplayWeights are the weights shown on the client's quick progress card.
// A zero weight with SourceNone means nothing is known and should render as N/A.
type DisplayWeights struct {
	CurrentWeight float64    `json:"currentWeight"`
	CurrentSource SourceName `json:"currentSource"`
	TargetWeight  float64    `json:"targetWeight"`
	TargetSource  SourceName `json:"targetSource"`
}

// ResolveDisplayWeights picks the current and target weight to display.
// Computed goal progress is preferred over raw measurements, and the profile
// fields, being a lagging copy, are only read as the last resort.
// goal, progress and profile may all be nil.
func ResolveDisplayWeights(
	goal *goals.Goal,
	progress *Result,
	ms []measurements.Measurement,
	profile *clients.Profile,
) DisplayWeights {
	var weightGoal *goals.Goal
	if goal != nil && goals.Classify(*goal) == goals.Weight {
		weightGoal = goal
	}

	var progressCurrent, progressTarget, goalTarget *float64
	if weightGoal != nil {
		if progress != nil {
			progressCurrent = &progress.Current
			progressTarget = &progress.Target
		}
		goalTarget = weightGoal.TargetValue
	}

	var latestWeight *float64
	if _, latest, ok := measurements.Bounds(ms); ok {
		latestWeight = &latest.Weight
	}

	var profileCurrent, profileTarget *float64
	if profile != nil {
		profileCurrent = profile.CurrentWeight
		profileTarget = profile.TargetWeight
	}

	var dw DisplayWeights
	dw.CurrentWeight, dw.CurrentSource = FirstOf(
		Value(SourceProgress, progressCurrent),
		Value(SourceMeasurement, latestWeight),
		Value(SourceProfile, profileCurrent),
	)
	dw.TargetWeight, dw.TargetSource = FirstOf(
		Value(SourceProgress, progressTarget),
		Value(SourceGoal, goalTarget),
		Value(SourceProfile, profileTarget),
	)
	return dw
}
