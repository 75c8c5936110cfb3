package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/axend/internal/cache"
	"github.com/2beens/axend/internal/telemetry/metrics"
	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/internal/tracking/goals"
	"github.com/2beens/axend/internal/tracking/measurements"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type goalsReader interface {
	Get(ctx context.Context, id uuid.UUID) (*goals.Goal, error)
	ListByClient(ctx context.Context, clientID uuid.UUID) ([]goals.Goal, error)
}

type measurementsReader interface {
	List(ctx context.Context, clientID uuid.UUID) ([]measurements.Measurement, error)
}

type profilesReader interface {
	Get(ctx context.Context, id uuid.UUID) (*clients.Profile, error)
}

type GoalProgress struct {
	Goal           goals.Goal `json:"goal"`
	Classification string     `json:"classification"`
	// Progress is nil when it is not computable for the goal.
	Progress *Result `json:"progress"`
}

// Snapshot is the progress view of one client at a point in time.
type Snapshot struct {
	ClientID       uuid.UUID      `json:"clientId"`
	Goals          []GoalProgress `json:"goals"`
	WeightGoalID   *uuid.UUID     `json:"weightGoalId"`
	WeightProgress *Result        `json:"weightProgress"`
	Display        DisplayWeights `json:"display"`
	ComputedAt     time.Time      `json:"computedAt"`
}

type NewServiceParams struct {
	Goals          goalsReader
	Measurements   measurementsReader
	Profiles       profilesReader
	Cache          cache.Cache // nil disables snapshot caching
	CacheTTL       time.Duration
	MetricsManager *metrics.Manager
}

type Service struct {
	goals          goalsReader
	measurements   measurementsReader
	profiles       profilesReader
	cache          cache.Cache
	cacheTTL       time.Duration
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewService(params NewServiceParams) *Service {
	return &Service{
		goals:          params.Goals,
		measurements:   params.Measurements,
		profiles:       params.Profiles,
		cache:          params.Cache,
		cacheTTL:       params.CacheTTL,
		metricsManager: params.MetricsManager,
		now:            time.Now,
	}
}

// BuildSnapshot computes the progress of every goal and the display weights
// from one consistent read of the client's data.
func BuildSnapshot(
	clientID uuid.UUID,
	gs []goals.Goal,
	ms []measurements.Measurement,
	profile *clients.Profile,
) Snapshot {
	var cachedWeight *float64
	if profile != nil {
		cachedWeight = profile.CurrentWeight
	}

	snap := Snapshot{
		ClientID: clientID,
		Goals:    make([]GoalProgress, 0, len(gs)),
	}
	for _, g := range gs {
		snap.Goals = append(snap.Goals, GoalProgress{
			Goal:           g,
			Classification: goals.Classify(g).String(),
			Progress:       ComputeGoalProgress(g, ms, cachedWeight),
		})
	}

	weightGoal := SelectWeightGoal(gs)
	if weightGoal != nil {
		id := weightGoal.ID
		snap.WeightGoalID = &id
		snap.WeightProgress = ComputeGoalProgress(*weightGoal, ms, cachedWeight)
	}
	snap.Display = ResolveDisplayWeights(weightGoal, snap.WeightProgress, ms, profile)

	return snap
}

func (s *Service) ClientProgress(ctx context.Context, clientID uuid.UUID) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.client")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))

	if snap, ok := s.cachedSnapshot(ctx, clientID); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return snap, nil
	}

	profile, err := s.profiles.Get(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("get client profile: %w", err)
	}
	gs, err := s.goals.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	ms, err := s.measurements.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	snap := BuildSnapshot(clientID, gs, ms, profile)
	snap.ComputedAt = s.now().UTC()
	for _, gp := range snap.Goals {
		s.countOutcome(gp.Progress)
	}
	span.SetAttributes(attribute.Int("goals.count", len(snap.Goals)))

	s.storeSnapshot(ctx, &snap)
	return &snap, nil
}

func (s *Service) GoalProgress(ctx context.Context, goalID uuid.UUID) (_ *GoalProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.goal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goalID.String()))

	goal, err := s.goals.Get(ctx, goalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	ms, err := s.measurements.List(ctx, goal.ClientID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}

	var cachedWeight *float64
	profile, err := s.profiles.Get(ctx, goal.ClientID)
	switch {
	case err == nil:
		cachedWeight = profile.CurrentWeight
	case errors.Is(err, clients.ErrClientNotFound):
		// goals cascade with their client, a racing delete just leaves no cached weight
	default:
		return nil, fmt.Errorf("get client profile: %w", err)
	}

	gp := GoalProgress{
		Goal:           *goal,
		Classification: goals.Classify(*goal).String(),
		Progress:       ComputeGoalProgress(*goal, ms, cachedWeight),
	}
	s.countOutcome(gp.Progress)
	span.SetAttributes(attribute.Bool("computable", gp.Progress != nil))

	return &gp, nil
}

// InvalidateClient drops the cached snapshot of the client.
func (s *Service) InvalidateClient(ctx context.Context, clientID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, snapshotKey(clientID))
}

func (s *Service) cachedSnapshot(ctx context.Context, clientID uuid.UUID) (*Snapshot, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, snapshotKey(clientID))
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Errorf("progress cache get for client %s: %s", clientID, err)
			s.countCache("error")
			return nil, false
		}
		s.countCache("miss")
		return nil, false
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Errorf("progress cache unmarshal for client %s: %s", clientID, err)
		s.countCache("error")
		return nil, false
	}
	s.countCache("hit")
	return &snap, true
}

func (s *Service) storeSnapshot(ctx context.Context, snap *Snapshot) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Errorf("progress cache marshal for client %s: %s", snap.ClientID, err)
		return
	}
	if err := s.cache.Set(ctx, snapshotKey(snap.ClientID), raw, s.cacheTTL); err != nil {
		log.Errorf("progress cache set for client %s: %s", snap.ClientID, err)
	}
}

func (s *Service) countOutcome(r *Result) {
	if s.metricsManager == nil {
		return
	}
	outcome := metrics.ProgressOutcomeComputed
	if r == nil {
		outcome = metrics.ProgressOutcomeNotComputable
	}
	s.metricsManager.CounterGoalProgress.WithLabelValues(outcome).Inc()
}

func (s *Service) countCache(result string) {
	if s.metricsManager == nil {
		return
	}
	s.metricsManager.CounterProgressCache.WithLabelValues(result).Inc()
}

func snapshotKey(clientID uuid.UUID) string {
	return "progress:" + clientID.String()
}
