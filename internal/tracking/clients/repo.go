package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/axend/internal/telemetry/tracing"

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

func (r *Repo) Create(ctx context.Context, profile Profile) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	span.SetAttributes(attribute.String("client.id", profile.ID.String()))

	now := time.Now().UTC()
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO client (id, name, current_weight, target_weight, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5);`,
		profile.ID, profile.Name, profile.CurrentWeight, profile.TargetWeight, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	profile.CreatedAt = now
	profile.UpdatedAt = now
	return &profile, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id.String()))

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, current_weight, target_weight, created_at, updated_at
			FROM client WHERE id = $1;`,
		id,
	).Scan(&p.ID, &p.Name, &p.CurrentWeight, &p.TargetWeight, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("query client: %w", err)
	}
	return &p, nil
}

// SetCurrentWeight overwrites the cached current weight; nil clears it.
func (r *Repo) SetCurrentWeight(ctx context.Context, id uuid.UUID, weight *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.setcurrentweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id.String()))

	return r.setWeight(ctx, `UPDATE client SET current_weight = $1, updated_at = now() WHERE id = $2;`, id, weight)
}

func (r *Repo) SetTargetWeight(ctx context.Context, id uuid.UUID, weight *float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.clients.settargetweight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", id.String()))

	return r.setWeight(ctx, `UPDATE client SET target_weight = $1, updated_at = now() WHERE id = $2;`, id, weight)
}

func (r *Repo) setWeight(ctx context.Context, query string, id uuid.UUID, weight *float64) error {
	tag, err := r.db.Exec(ctx, query, weight, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}
	return nil
}
