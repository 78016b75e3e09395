package database

import (
	"context"
	"fmt"
	"net"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/onboarding-qr-generator/internal/config"
)

// DB wraps an sqlx connection to one named database. The generator talks to
// the central database first and to a tenant-<id> database afterwards; each
// gets its own handle.
type DB struct {
	*sqlx.DB
	Name string
	log  zerolog.Logger
}

// Probe checks TCP reachability of the database server before any SQL is
// attempted, so the operator gets a clear verdict on network trouble.
func Probe(cfg *config.DatabaseConfig, log zerolog.Logger) error {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	log.Info().Str("addr", addr).Msg("Testing network connectivity")

	conn, err := net.DialTimeout("tcp", addr, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("cannot reach %s: %w", addr, err)
	}
	conn.Close()
	return nil
}

// Connect opens a connection to the named database with a fixed retry loop
func Connect(cfg *config.DatabaseConfig, dbName string, log zerolog.Logger) (*DB, error) {
	dbLog := log.With().Str("component", "database").Str("database", dbName).Logger()

	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		db, err := open(cfg, dbName)
		if err == nil {
			dbLog.Info().
				Str("host", cfg.Host).
				Int("max_open_conns", cfg.MaxOpenConns).
				Msg("Database connection established")
			return &DB{DB: db, Name: dbName, log: dbLog}, nil
		}

		lastErr = err
		if attempt < cfg.ConnectRetries {
			dbLog.Warn().Err(err).Int("attempt", attempt).Msg("Connection attempt failed, retrying")
			time.Sleep(cfg.RetryDelay)
		}
	}

	return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", dbName, cfg.ConnectRetries, lastErr)
}

func open(cfg *config.DatabaseConfig, dbName string) (*sqlx.DB, error) {
	db, err := sqlx.Open("mysql", cfg.GetDSN(dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// HealthCheck verifies the database connection is healthy
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.PingContext(ctx)
}
