package goals

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

var ErrGoalNotFound = errors.New("goal not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusAchieved  Status = "achieved"
	StatusAbandoned Status = "abandoned"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusAchieved, StatusAbandoned:
		return true
	}
	return false
}

const (
	maxTitleLen    = 200
	maxUnitLen     = 16
	maxGoalTypeLen = 32
)

type Goal struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"clientId"`
	Title       string    `json:"title"`
	TargetValue *float64  `json:"targetValue"`
	Unit        string    `json:"unit,omitempty"`
	GoalType    string    `json:"goalType,omitempty"`
	// Deadline is advisory only, it never enters the progress math.
	Deadline  pkg.Date  `json:"deadline"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate reports every problem with the goal at once.
func (g Goal) Validate() error {
	var err error
	if strings.TrimSpace(g.Title) == "" {
		err = multierr.Append(err, errors.New("title is required"))
	} else if len(g.Title) > maxTitleLen {
		err = multierr.Append(err, fmt.Errorf("title longer than %d", maxTitleLen))
	}
	if !g.Status.Valid() {
		err = multierr.Append(err, fmt.Errorf("unknown status %q", g.Status))
	}
	if g.TargetValue != nil && (math.IsNaN(*g.TargetValue) || math.IsInf(*g.TargetValue, 0)) {
		err = multierr.Append(err, errors.New("target value must be a finite number"))
	}
	if len(g.Unit) > maxUnitLen {
		err = multierr.Append(err, fmt.Errorf("unit longer than %d", maxUnitLen))
	}
	if len(g.GoalType) > maxGoalTypeLen {
		err = multierr.Append(err, fmt.Errorf("goal type longer than %d", maxGoalTypeLen))
	}
	return err
}
