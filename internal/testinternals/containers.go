package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/axend/internal/db"
)

const TestDBName = "axend_test"

// Containers runs the docker dependencies used by the integration tests.
type Containers struct {
	dockerPool *dockertest.Pool
	teardown   []func()
}

func NewContainers() (*Containers, error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("new dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping dockertest pool: %w", err)
	}
	return &Containers{dockerPool: dockerPool}, nil
}

// Redis starts a redis container and returns its host port.
func (c *Containers) Redis() (string, error) {
	redisResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %w", err)
	}

	c.teardown = append(c.teardown, func() {
		if err := redisResource.Close(); err != nil {
			log.Printf("redis teardown: %s\n", err)
		}
	})

	return redisResource.GetPort("6379/tcp"), nil
}

// Postgres starts a postgres container, waits until it accepts connections
// and applies the schema. Returns the host port.
func (c *Containers) Postgres() (string, error) {
	pgResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=" + TestDBName,
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %w", err)
	}

	c.teardown = append(c.teardown, func() {
		if err := pgResource.Close(); err != nil {
			log.Printf("postgres teardown: %s\n", err)
		}
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres@localhost:%s/%s?sslmode=disable",
		pgPort, TestDBName,
	)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db: %w", err)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Printf("close sql db: %s\n", err)
		}
	}()

	if err := c.dockerPool.Retry(sqlDB.Ping); err != nil {
		return "", fmt.Errorf("connect to db: %w", err)
	}

	for i, stmt := range db.Schema {
		if _, err := sqlDB.Exec(stmt); err != nil {
			return "", fmt.Errorf("schema statement %d: %w", i, err)
		}
	}

	return pgPort, nil
}

func (c *Containers) Teardown() {
	for i := len(c.teardown) - 1; i >= 0; i-- {
		c.teardown[i]()
	}
	c.teardown = nil
	c.dockerPool.Client.HTTPClient.CloseIdleConnections()
}

// NewPostgresPool starts a fresh postgres for a single test and returns a
// pool connected to it. Everything is torn down with the test.
func NewPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	containers, err := NewContainers()
	if err != nil {
		t.Fatalf("new containers: %s", err)
	}
	t.Cleanup(containers.Teardown)

	pgPort, err := containers.Postgres()
	if err != nil {
		t.Fatalf("setup postgres: %s", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgPort,
		DBName: TestDBName,
	})
	if err != nil {
		t.Fatalf("new db pool: %s", err)
	}
	t.Cleanup(pool.Close)

	return pool
}
