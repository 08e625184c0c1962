package database

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// Open opens a connection to the configured database.
// driver is "sqlite" or "pgx"; dsn is the file path or connection URL.
func Open(driver, dsn string) (*sql.DB, error) {
	// Open database connection
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == "sqlite" {
		// Set timezone to UTC
		if _, err := db.Exec("PRAGMA timezone = 'UTC'"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set timezone: %w", err)
		}
		// Single writer; also keeps ":memory:" databases on one connection.
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// HealthCheck performs a simple health check on the database
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}

// Rebind rewrites '?' placeholders into the form expected by driver.
// SQLite accepts '?' as-is; PostgreSQL needs $1, $2, ...
func Rebind(driver, query string) string {
	if driver != "pgx" {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
