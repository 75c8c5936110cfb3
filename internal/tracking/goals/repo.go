package goals

import (
	"context"
	"errors"
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

const goalColumns = `id, client_id, title, target_value, unit, goal_type, deadline, status, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	now := time.Now().UTC()
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = now
	}
	goal.UpdatedAt = now
	span.SetAttributes(attribute.String("goal.id", goal.ID.String()))
	span.SetAttributes(attribute.String("client.id", goal.ClientID.String()))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO goal (`+goalColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		goal.ID, goal.ClientID, goal.Title, goal.TargetValue, goal.Unit, goal.GoalType,
		deadlineArg(goal.Deadline), string(goal.Status), goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, clients.ErrClientNotFound
		}
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, id uuid.UUID) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id.String()))

	rows, err := r.db.Query(ctx, `SELECT `+goalColumns+` FROM goal WHERE id = $1;`, id)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, err
	}
	if len(goals) != 1 {
		return nil, ErrGoalNotFound
	}
	return &goals[0], nil
}

// ListByClient returns the client's goals, oldest first.
func (r *Repo) ListByClient(ctx context.Context, clientID uuid.UUID) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listbyclient")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID.String()))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+goalColumns+` FROM goal WHERE client_id = $1 ORDER BY created_at, id;`,
		clientID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	goals, err := rows2goals(rows)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("goals.count", len(goals)))
	return goals, nil
}

// Update overwrites the editable fields of the goal. ClientID, CreatedAt and
// UpdatedAt are read back into goal.
func (r *Repo) Update(ctx context.Context, goal *Goal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", goal.ID.String()))

	err = r.db.QueryRow(
		ctx,
		`UPDATE goal SET title = $1, target_value = $2, unit = $3, goal_type = $4,
				deadline = $5, status = $6, updated_at = now()
			WHERE id = $7
			RETURNING client_id, created_at, updated_at;`,
		goal.Title, goal.TargetValue, goal.Unit, goal.GoalType,
		deadlineArg(goal.Deadline), string(goal.Status), goal.ID,
	).Scan(&goal.ClientID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGoalNotFound
		}
		return fmt.Errorf("update goal: %w", err)
	}
	return nil
}

// Delete removes the goal and returns the client it belonged to.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (_ uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("goal.id", id.String()))

	var clientID uuid.UUID
	err = r.db.QueryRow(ctx, `DELETE FROM goal WHERE id = $1 RETURNING client_id;`, id).Scan(&clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrGoalNotFound
		}
		return uuid.Nil, fmt.Errorf("delete goal: %w", err)
	}
	return clientID, nil
}

func rows2goals(rows pgx.Rows) ([]Goal, error) {
	var goals []Goal
	for rows.Next() {
		var g Goal
		var deadline *time.Time
		var status string
		if err := rows.Scan(
			&g.ID, &g.ClientID, &g.Title, &g.TargetValue, &g.Unit, &g.GoalType,
			&deadline, &status, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if deadline != nil {
			g.Deadline = pkg.DateOf(*deadline)
		}
		g.Status = Status(status)
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return goals, nil
}

func deadlineArg(d pkg.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	return &d.Time
}
