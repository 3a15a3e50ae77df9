package catalog

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DB wraps a DuckDB database connection.
type DB struct {
	db *sql.DB
}

// Open opens a DuckDB database at the given path. An empty path opens
// an in-memory database, which is all the catalog queries need.
func Open(path string) (*DB, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Version returns the engine's version string, e.g. "v1.3.2".
func (d *DB) Version(ctx context.Context) (string, error) {
	var v string
	if err := d.db.QueryRowContext(ctx, "SELECT version()").Scan(&v); err != nil {
		return "", fmt.Errorf("querying version: %w", err)
	}
	return v, nil
}

// Today returns the engine's current date formatted as YYYY-MM-DD.
func (d *DB) Today(ctx context.Context) (string, error) {
	var day string
	if err := d.db.QueryRowContext(ctx, "SELECT CAST(today() AS VARCHAR)").Scan(&day); err != nil {
		return "", fmt.Errorf("querying current date: %w", err)
	}
	return day, nil
}

// names runs a single-column query and returns the values in row order.
func (d *DB) names(ctx context.Context, query string) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}
	return out, nil
}
