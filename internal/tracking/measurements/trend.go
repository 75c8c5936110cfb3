package measurements

import (
	"math"
	"sort"

	"github.com/2beens/axend/pkg"
)

type TrendPoint struct {
	Date   pkg.Date `json:"date"`
	Weight float64  `json:"weight"`
	// Change is the difference to the previous point, nil for the first one.
	Change *float64 `json:"change"`
}

type Trend struct {
	Points      []TrendPoint `json:"points"`
	From        pkg.Date     `json:"from"`
	To          pkg.Date     `json:"to"`
	TotalChange *float64     `json:"totalChange"`
}

// ComputeTrend sorts the history by date and derives per-entry and total
// weight changes. The input slice is not modified.
func ComputeTrend(ms []Measurement) Trend {
	trend := Trend{
		Points: []TrendPoint{},
	}
	if len(ms) == 0 {
		return trend
	}

	sorted := make([]Measurement, len(ms))
	copy(sorted, ms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	for i, m := range sorted {
		point := TrendPoint{
			Date:   m.Date,
			Weight: m.Weight,
		}
		if i > 0 {
			change := roundWeight(m.Weight - sorted[i-1].Weight)
			point.Change = &change
		}
		trend.Points = append(trend.Points, point)
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	total := roundWeight(last.Weight - first.Weight)
	trend.From = first.Date
	trend.To = last.Date
	trend.TotalChange = &total

	return trend
}

// roundWeight drops float noise below 10 grams.
func roundWeight(w float64) float64 {
	return math.Round(w*100) / 100
}
