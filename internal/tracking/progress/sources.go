package progress

import "math"

type SourceName string

const (
	SourceProgress    SourceName = "progress"
	SourceMeasurement SourceName = "measurement"
	SourceGoal        SourceName = "goal"
	SourceProfile     SourceName = "profile"
	SourceNone        SourceName = "none"
)

// Source is one named candidate for a value. Lookup reports false when the
// source has nothing to offer.
type Source struct {
	Name   SourceName
	Lookup func() (float64, bool)
}

// Value is a Source backed by an optional number; nil means absent.
func Value(name SourceName, v *float64) Source {
	return Source{
		Name: name,
		Lookup: func() (float64, bool) {
			if v == nil {
				return 0, false
			}
			return *v, true
		},
	}
}

// FirstOf returns the first finite value offered by sources, in order,
// together with the name of the source that supplied it. NaN and infinite
// values count as absent. With no usable source it returns 0 and SourceNone.
func FirstOf(sources ...Source) (float64, SourceName) {
	for _, s := range sources {
		if s.Lookup == nil {
			continue
		}
		v, ok := s.Lookup()
		if !ok || !finite(v) {
			continue
		}
		return v, s.Name
	}
	return 0, SourceNone
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
