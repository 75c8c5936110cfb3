package measurements

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/axend/internal/telemetry/metrics"
	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=measurements_test

type measurementsRepo interface {
	Upsert(ctx context.Context, m Measurement) (*Measurement, error)
	List(ctx context.Context, clientID uuid.UUID) ([]Measurement, error)
	Latest(ctx context.Context, clientID uuid.UUID) (*Measurement, error)
	Delete(ctx context.Context, clientID uuid.UUID, date pkg.Date) error
}

type profileWriter interface {
	SetCurrentWeight(ctx context.Context, clientID uuid.UUID, weight *float64) error
}

type cacheInvalidator interface {
	InvalidateClient(ctx context.Context, clientID uuid.UUID) error
}

type Service struct {
	repo           measurementsRepo
	profiles       profileWriter
	invalidator    cacheInvalidator
	metricsManager *metrics.Manager
}

func NewService(
	repo measurementsRepo,
	profiles profileWriter,
	invalidator cacheInvalidator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:           repo,
		profiles:       profiles,
		invalidator:    invalidator,
		metricsManager: metricsManager,
	}
}

// Upsert stores the measurement and refreshes the client's cached weight.
func (s *Service) Upsert(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", m.ClientID.String()))

	stored, err := s.repo.Upsert(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("upsert measurement: %w", err)
	}
	s.metricsManager.CounterMeasurementWrites.WithLabelValues("upsert").Inc()

	s.afterWrite(ctx, m.ClientID)
	return stored, nil
}

func (s *Service) List(ctx context.Context, clientID uuid.UUID) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return measurements, nil
}

func (s *Service) Delete(ctx context.Context, clientID uuid.UUID, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))

	if err := s.repo.Delete(ctx, clientID, date); err != nil {
		return fmt.Errorf("delete measurement: %w", err)
	}
	s.metricsManager.CounterMeasurementWrites.WithLabelValues("delete").Inc()

	s.afterWrite(ctx, clientID)
	return nil
}

func (s *Service) Trend(ctx context.Context, clientID uuid.UUID) (_ *Trend, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.measurements.trend")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	measurements, err := s.repo.List(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	trend := ComputeTrend(measurements)
	return &trend, nil
}

// afterWrite copies the latest measurement's weight onto the client profile
// and drops the cached progress snapshot. The measurement write already
// succeeded, so failures here are only logged.
func (s *Service) afterWrite(ctx context.Context, clientID uuid.UUID) {
	if err := s.syncCurrentWeight(ctx, clientID); err != nil {
		log.Errorf("failed to sync current weight for client %s: %s", clientID, err)
	}
	if err := s.invalidator.InvalidateClient(ctx, clientID); err != nil {
		log.Errorf("failed to invalidate progress cache for client %s: %s", clientID, err)
	}
}

func (s *Service) syncCurrentWeight(ctx context.Context, clientID uuid.UUID) error {
	latest, err := s.repo.Latest(ctx, clientID)
	if err != nil {
		if errors.Is(err, ErrMeasurementNotFound) {
			// history is empty now, keep the last known weight as the fallback
			return nil
		}
		return fmt.Errorf("latest measurement: %w", err)
	}
	weight := latest.Weight
	return s.profiles.SetCurrentWeight(ctx, clientID, &weight)
}
