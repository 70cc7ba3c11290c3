// Package metadb provides readiness helpers for the Superset metadata
// database the derived connection URI points at. It owns no schema —
// Superset manages its own migrations — so the surface is limited to
// opening, pinging, and waiting for the database.
package metadb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Open opens a connection pool to the database at the given URL. The pool
// is small: this tool only probes readiness, it does not serve traffic.
func Open(databaseURL string) (*sql.DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Ping verifies the database accepts connections.
func Ping(ctx context.Context, db *sql.DB) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// Version returns the server version string, confirming the database is
// not just accepting connections but answering queries.
func Version(ctx context.Context, db *sql.DB) (string, error) {
	var version string
	if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", fmt.Errorf("query version: %w", err)
	}
	return version, nil
}

// WaitReady pings the database at the given interval until it responds or
// the context ends. Failed attempts are logged and retried; containerized
// stacks routinely start Superset's dependencies in parallel, so refused
// connections early on are expected.
func WaitReady(ctx context.Context, db *sql.DB, interval time.Duration, logger *slog.Logger) error {
	attempt := 0
	for {
		attempt++
		if err := db.PingContext(ctx); err == nil {
			logger.Info("metadata database ready", "attempts", attempt)
			return nil
		} else if ctx.Err() == nil {
			logger.Debug("metadata database not ready", "attempt", attempt, "err", err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for database: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}
