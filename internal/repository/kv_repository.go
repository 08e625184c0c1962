package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/imobiliaria/portal-locacao/internal/database"
	"github.com/imobiliaria/portal-locacao/internal/kvstore"
)

// KVRepository provides data access methods for the kv_entries table.
// It implements kvstore.Store on top of SQLite or PostgreSQL.
type KVRepository struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// NewKVRepository creates a new KVRepository with the provided database connection.
// driver selects the placeholder style ("sqlite" or "pgx").
func NewKVRepository(db *sql.DB, driver string) *KVRepository {
	return &KVRepository{db: db, driver: driver, now: time.Now}
}

// Get retrieves the value stored under namespace/key.
// Returns kvstore.ErrNotFound if the key does not exist.
func (r *KVRepository) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	query := database.Rebind(r.driver, `
		SELECT value
		FROM kv_entries
		WHERE namespace = ? AND entry_key = ?
	`)

	var value string
	err := r.db.QueryRowContext(ctx, query, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kvstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query kv entry: %w", err)
	}
	return []byte(value), nil
}

// Set inserts or replaces the value stored under namespace/key.
func (r *KVRepository) Set(ctx context.Context, namespace, key string, value []byte) error {
	query := database.Rebind(r.driver, `
		INSERT INTO kv_entries (namespace, entry_key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, entry_key)
		DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)

	if _, err := r.db.ExecContext(ctx, query, namespace, key, string(value), r.now().Unix()); err != nil {
		return fmt.Errorf("failed to upsert kv entry: %w", err)
	}
	return nil
}

// Delete removes namespace/key. Deleting a missing key is not an error.
func (r *KVRepository) Delete(ctx context.Context, namespace, key string) error {
	query := database.Rebind(r.driver, `DELETE FROM kv_entries WHERE namespace = ? AND entry_key = ?`)

	if _, err := r.db.ExecContext(ctx, query, namespace, key); err != nil {
		return fmt.Errorf("failed to delete kv entry: %w", err)
	}
	return nil
}

// Prune deletes every entry of namespace last updated before cutoff.
func (r *KVRepository) Prune(ctx context.Context, namespace string, cutoff time.Time) (int64, error) {
	query := database.Rebind(r.driver, `DELETE FROM kv_entries WHERE namespace = ? AND updated_at < ?`)

	res, err := r.db.ExecContext(ctx, query, namespace, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune kv entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned kv entries: %w", err)
	}
	return n, nil
}
