package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// healthKey is the namespaced KV key holding the whole health record map
const healthKey = "link_health"

// HealthRepository persists link health records as a single JSON map keyed by
// item ID. Whole-collection read/replace semantics, not a proper index.
type HealthRepository struct {
	db *sqlx.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(database *sqlx.DB) *HealthRepository {
	return &HealthRepository{db: database}
}

// Load reads the full health record map, empty map when nothing stored yet
func (r *HealthRepository) Load(ctx context.Context) (map[string]domain.LinkHealthRecord, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM kv WHERE key = ?", healthKey)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]domain.LinkHealthRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load health records: %w", err)
	}

	records := map[string]domain.LinkHealthRecord{}
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("decode health records: %w", err)
	}
	return records, nil
}

// Save replaces the full health record map. Retried with backoff on sqlite
// lock contention.
func (r *HealthRepository) Save(ctx context.Context, records map[string]domain.LinkHealthRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode health records: %w", err)
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO kv (key, value, updated_at) VALUES (?, ?, datetime('now'))
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
		if _, err := r.db.ExecContext(ctx, query, healthKey, string(data)); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("save health records: %w", err)}
		}
		return nil
	})
}
