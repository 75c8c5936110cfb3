package measurements

import (
	"errors"
	"math"

	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var ErrMeasurementNotFound = errors.New("measurement not found")

// Measurement is one body measurement of a client. A client has at most one
// measurement per date.
type Measurement struct {
	ClientID   uuid.UUID `json:"clientId"`
	Date       pkg.Date  `json:"date"`
	Weight     float64   `json:"weight"`
	BodyFat    *float64  `json:"bodyFat,omitempty"`
	MuscleMass *float64  `json:"muscleMass,omitempty"`
}

func (m Measurement) Validate() error {
	var err error
	if m.Date.IsZero() {
		err = multierr.Append(err, errors.New("date is required"))
	}
	if !positive(m.Weight) {
		err = multierr.Append(err, errors.New("weight must be a positive number"))
	}
	if m.BodyFat != nil && (!positive(*m.BodyFat) || *m.BodyFat > 100) {
		err = multierr.Append(err, errors.New("body fat must be a percentage above 0"))
	}
	if m.MuscleMass != nil && !positive(*m.MuscleMass) {
		err = multierr.Append(err, errors.New("muscle mass must be a positive number"))
	}
	return err
}

func positive(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// Bounds returns the chronologically earliest and latest measurements.
// On equal dates the first one seen wins. ok is false for an empty list.
func Bounds(ms []Measurement) (earliest, latest Measurement, ok bool) {
	if len(ms) == 0 {
		return Measurement{}, Measurement{}, false
	}
	earliest, latest = ms[0], ms[0]
	for _, m := range ms[1:] {
		if m.Date.Before(earliest.Date) {
			earliest = m
		}
		if m.Date.After(latest.Date) {
			latest = m
		}
	}
	return earliest, latest, true
}
