package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the SQLite connection holding the settings key space.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// One writer keeps the single-user store strictly serialised.
	conn.SetMaxOpenConns(1)

	d := &Database{DB: conn, dbFile: path}
	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return conn.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

// Close releases the connection.
func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path is the database file location.
func (d *Database) Path() string { return d.dbFile }

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		for _, query := range queries {
			if _, err := d.DB.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("create tables: %w", err)
			}
		}
		return nil
	})
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}
