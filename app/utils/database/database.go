// Package database provides the database/sql connection used by the
// migration runner.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
	connectTimeout  = 15 * time.Second
)

// Connection wraps a database/sql connection
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens a connection for the given PostgreSQL URL
func NewConnection(databaseURL string, logger *slog.Logger) (*Connection, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return &Connection{db: db, logger: logger.With("component", "database")}, nil
}

// DB returns the underlying database handle
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the connection
func (c *Connection) Close() error {
	c.logger.Info("database connection closed")
	return c.db.Close()
}
