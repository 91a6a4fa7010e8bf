package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// ActivityRepository handles the append-only activity log
type ActivityRepository struct {
	db *sqlx.DB
}

// eventSQL represents an activity event for SQL operations
type eventSQL struct {
	ID           string      `db:"id"`
	Type         string      `db:"type"`
	ItemID       string      `db:"item_id"`
	CollectionID string      `db:"collection_id"`
	Metadata     metadataSQL `db:"metadata"`
	Timestamp    time.Time   `db:"timestamp"`
}

// metadataSQL is a JSON object of string pairs for SQL operations
type metadataSQL map[string]string

// Value implements driver.Valuer for database storage
func (m metadataSQL) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *metadataSQL) Scan(value interface{}) error {
	if value == nil {
		*m = metadataSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*m = metadataSQL{}
		return nil
	}

	return json.Unmarshal(data, m)
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(database *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: database}
}

// Append adds one event to the log, assigning ID and timestamp when missing.
// Retried with backoff on sqlite lock contention.
func (r *ActivityRepository) Append(ctx context.Context, event domain.ActivityEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	se := &eventSQL{
		ID:           event.ID,
		Type:         string(event.Type),
		ItemID:       event.ItemID,
		CollectionID: event.CollectionID,
		Metadata:     metadataSQL(event.Metadata),
		Timestamp:    event.Timestamp,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO activity_events (id, type, item_id, collection_id, metadata, timestamp)
			VALUES (:id, :type, :item_id, :collection_id, :metadata, :timestamp)
		`
		if _, err := r.db.NamedExecContext(ctx, query, se); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("append activity event: %w", err)}
		}
		return nil
	})
}

// Query returns events in chronological order, optionally bounded by time.
// Zero limit means no limit.
func (r *ActivityRepository) Query(ctx context.Context, since, until *time.Time, limit int) ([]domain.ActivityEvent, error) {
	query := "SELECT * FROM activity_events WHERE 1=1"
	var args []interface{}

	if since != nil {
		query += " AND timestamp >= ?"
		args = append(args, *since)
	}
	if until != nil {
		query += " AND timestamp <= ?"
		args = append(args, *until)
	}
	query += " ORDER BY timestamp"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var sqlEvents []eventSQL
	if err := r.db.SelectContext(ctx, &sqlEvents, query, args...); err != nil {
		return nil, fmt.Errorf("query activity events: %w", err)
	}

	events := make([]domain.ActivityEvent, len(sqlEvents))
	for i, se := range sqlEvents {
		events[i] = domain.ActivityEvent{
			ID:           se.ID,
			Type:         domain.EventType(se.Type),
			ItemID:       se.ItemID,
			CollectionID: se.CollectionID,
			Metadata:     se.Metadata,
			Timestamp:    se.Timestamp,
		}
	}
	return events, nil
}
