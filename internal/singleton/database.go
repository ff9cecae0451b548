package singleton

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnhealthy = errors.New("database is not reachable")

// Database holds the one connection pool shared by the whole process.
type Database struct {
	pool *pgxpool.Pool
}

var (
	mu       sync.Mutex
	instance *Database
)

// Instance returns the process wide Database. The first successful call
// creates the pool from databaseURL; later calls return the same Database and
// ignore their argument. A failed call leaves nothing behind, so it can be
// retried. The pool connects lazily.
func Instance(ctx context.Context, databaseURL string) (*Database, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	instance = &Database{pool: pool}
	slog.Info("database instance created", "host", config.ConnConfig.Host, "database", config.ConnConfig.Database)
	return instance, nil
}

// Pool returns the underlying connection pool.
func (db *Database) Pool() *pgxpool.Pool {
	return db.pool
}

// Ping checks that the database answers, trying up to attempts times with a
// fixed delay between tries.
func (db *Database) Ping(ctx context.Context, attempts uint, delay time.Duration) error {
	// retry-go treats zero attempts as unlimited
	if attempts == 0 {
		attempts = 1
	}
	err := retry.Do(func() error {
		return db.pool.Ping(ctx)
	},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			slog.Warn("database ping failed", "attempt", attempt+1, "attempts", attempts, "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	return nil
}

// Close shuts down the pool and forgets the instance, so the next call to
// Instance builds a new one.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return
	}
	instance.pool.Close()
	instance = nil
}
