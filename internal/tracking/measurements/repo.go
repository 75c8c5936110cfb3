package measurements

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/axend/internal/telemetry/tracing"
	"github.com/2beens/axend/internal/tracking/clients"
	"github.com/2beens/axend/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert stores the measurement, replacing an existing one on the same date.
func (r *Repo) Upsert(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", m.ClientID.String()))
	span.SetAttributes(attribute.String("date", m.Date.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO measurement (client_id, date, weight, body_fat, muscle_mass)
				VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (client_id, date) DO UPDATE
				SET weight = EXCLUDED.weight, body_fat = EXCLUDED.body_fat, muscle_mass = EXCLUDED.muscle_mass;`,
		m.ClientID, m.Date.Time, m.Weight, m.BodyFat, m.MuscleMass,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, clients.ErrClientNotFound
		}
		return nil, fmt.Errorf("upsert measurement: %w", err)
	}

	return &m, nil
}

// List returns the client's measurements ordered by date, oldest first.
func (r *Repo) List(ctx context.Context, clientID uuid.UUID) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT client_id, date, weight, body_fat, muscle_mass
			FROM measurement WHERE client_id = $1 ORDER BY date;`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	measurements, err := rows2measurements(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("measurements.count", len(measurements)))
	return measurements, nil
}

func (r *Repo) Latest(ctx context.Context, clientID uuid.UUID) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT client_id, date, weight, body_fat, muscle_mass
			FROM measurement WHERE client_id = $1 ORDER BY date DESC LIMIT 1;`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	measurements, err := rows2measurements(rows)
	if err != nil {
		return nil, err
	}
	if len(measurements) == 0 {
		return nil, ErrMeasurementNotFound
	}
	return &measurements[0], nil
}

func (r *Repo) Delete(ctx context.Context, clientID uuid.UUID, date pkg.Date) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.measurements.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))
	span.SetAttributes(attribute.String("date", date.String()))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM measurement WHERE client_id = $1 AND date = $2;`,
		clientID, date.Time,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

func rows2measurements(rows pgx.Rows) ([]Measurement, error) {
	var measurements []Measurement
	for rows.Next() {
		var m Measurement
		var date time.Time
		if err := rows.Scan(&m.ClientID, &date, &m.Weight, &m.BodyFat, &m.MuscleMass); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		m.Date = pkg.DateOf(date)
		measurements = append(measurements, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return measurements, nil
}

