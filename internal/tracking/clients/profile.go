package clients

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var ErrClientNotFound = errors.New("client not found")

// Profile is the client record with its denormalized weight fields.
// CurrentWeight mirrors the latest measurement and is only refreshed on
// measurement writes, so it may lag behind the measurement history.
type Profile struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CurrentWeight *float64  `json:"currentWeight"`
	TargetWeight  *float64  `json:"targetWeight"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p Profile) Validate() error {
	var err error
	if len(p.Name) > 200 {
		err = multierr.Append(err, errors.New("name too long"))
	}
	err = multierr.Append(err, validateWeight("current weight", p.CurrentWeight))
	err = multierr.Append(err, validateWeight("target weight", p.TargetWeight))
	return err
}

func validateWeight(name string, w *float64) error {
	if w == nil {
		return nil
	}
	if math.IsNaN(*w) || math.IsInf(*w, 0) || *w <= 0 {
		return errors.New(name + " must be a positive number")
	}
	return nil
}
