package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema holds the statements needed by the tracking repos. Every statement
// is idempotent so it can run on each startup.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS client (
		id             UUID PRIMARY KEY,
		name           TEXT NOT NULL DEFAULT '',
		current_weight DOUBLE PRECISION,
		target_weight  DOUBLE PRECISION,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS measurement (
		id          BIGSERIAL PRIMARY KEY,
		client_id   UUID NOT NULL REFERENCES client (id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		weight      DOUBLE PRECISION NOT NULL,
		body_fat    DOUBLE PRECISION,
		muscle_mass DOUBLE PRECISION,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (client_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS goal (
		id           UUID PRIMARY KEY,
		client_id    UUID NOT NULL REFERENCES client (id) ON DELETE CASCADE,
		title        TEXT NOT NULL,
		target_value DOUBLE PRECISION,
		unit         TEXT NOT NULL DEFAULT '',
		goal_type    TEXT NOT NULL DEFAULT '',
		deadline     DATE,
		status       TEXT NOT NULL DEFAULT 'active',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS goal_client_id_idx ON goal (client_id)`,
}

func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range Schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i, err)
		}
	}
	log.Debugf("db schema ensured, %d statements", len(Schema))
	return nil
}
