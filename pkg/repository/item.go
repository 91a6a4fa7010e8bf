package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/maveryjr/nestmind/pkg/domain"
)

// ItemRepository handles item and collection database operations
type ItemRepository struct {
	db *sqlx.DB
}

// itemSQL represents an item for SQL operations
type itemSQL struct {
	ID             string      `db:"id"`
	URL            string      `db:"url"`
	Title          string      `db:"title"`
	Category       string      `db:"category"`
	CollectionID   string      `db:"collection_id"`
	Tags           stringsSQL  `db:"tags"`
	Annotations    stringsSQL  `db:"annotations"`
	Archived       bool        `db:"archived"`
	HighlightCount int         `db:"highlight_count"`
	CreatedAt      time.Time   `db:"created_at"`
	LastAccessedAt *time.Time  `db:"last_accessed_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

// stringsSQL is a JSON array of strings for SQL operations
type stringsSQL []string

// Value implements driver.Valuer for database storage
func (s stringsSQL) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for database retrieval
func (s *stringsSQL) Scan(value interface{}) error {
	if value == nil {
		*s = stringsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return json.Unmarshal([]byte("[]"), s)
	}

	return json.Unmarshal(data, s)
}

// NewItemRepository creates a new item repository
func NewItemRepository(database *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: database}
}

// CreateItem inserts a new item, assigning an ID when missing
func (r *ItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Category == "" {
		item.Category = domain.CategoryGeneral
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	sqlItem := &itemSQL{
		ID:             item.ID,
		URL:            item.URL,
		Title:          item.Title,
		Category:       string(item.Category),
		CollectionID:   item.CollectionID,
		Tags:           stringsSQL(item.Tags),
		Annotations:    stringsSQL(item.Annotations),
		Archived:       item.Archived,
		HighlightCount: item.HighlightCount,
		CreatedAt:      item.CreatedAt,
		LastAccessedAt: item.LastAccessedAt,
		UpdatedAt:      time.Now(),
	}

	query := `
		INSERT INTO items (
			id, url, title, category, collection_id, tags, annotations,
			archived, highlight_count, created_at, last_accessed_at, updated_at
		) VALUES (
			:id, :url, :title, :category, :collection_id, :tags, :annotations,
			:archived, :highlight_count, :created_at, :last_accessed_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, sqlItem); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetItem retrieves a single item by ID
func (r *ItemRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var si itemSQL
	err := r.db.GetContext(ctx, &si, "SELECT * FROM items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("item %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return toDomainItem(&si), nil
}

// ListItems returns all non-archived items
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	var sqlItems []itemSQL
	err := r.db.SelectContext(ctx, &sqlItems,
		"SELECT * FROM items WHERE archived = 0 ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := make([]domain.Item, len(sqlItems))
	for i := range sqlItems {
		items[i] = *toDomainItem(&sqlItems[i])
	}
	return items, nil
}

// ListCollections returns all collections
func (r *ItemRepository) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	var collections []domain.Collection
	err := r.db.SelectContext(ctx, &collections,
		"SELECT id, name, created_at AS createdat FROM collections ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return collections, nil
}

// CreateCollection inserts a collection, returning the existing one if the
// name is already taken
func (r *ItemRepository) CreateCollection(ctx context.Context, name string) (*domain.Collection, error) {
	var existing domain.Collection
	err := r.db.GetContext(ctx, &existing,
		"SELECT id, name, created_at AS createdat FROM collections WHERE name = ?", name)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lookup collection: %w", err)
	}

	c := domain.Collection{ID: uuid.NewString(), Name: name, CreatedAt: time.Now()}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO collections (id, name, created_at) VALUES (?, ?, ?)", c.ID, c.Name, c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return &c, nil
}

// GetTagsForItem returns the tags of a single item
func (r *ItemRepository) GetTagsForItem(ctx context.Context, id string) ([]string, error) {
	var tags stringsSQL
	err := r.db.GetContext(ctx, &tags, "SELECT tags FROM items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return tags, nil
}

// UpdateItem applies a partial update to an item. Retried with backoff on
// sqlite lock contention, updating an already-archived item is not an error.
func (r *ItemRepository) UpdateItem(ctx context.Context, id string, upd domain.ItemUpdate) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if upd.AppendAnnotation != "" {
			var annotations stringsSQL
			if err := r.db.GetContext(ctx, &annotations, "SELECT annotations FROM items WHERE id = ?", id); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("read annotations: %w", err)}
			}
			annotations = append(annotations, upd.AppendAnnotation)
			if _, err := r.db.ExecContext(ctx,
				"UPDATE items SET annotations = ?, updated_at = datetime('now') WHERE id = ?", annotations, id); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("append annotation: %w", err)}
			}
		}

		if upd.CollectionID != nil {
			if _, err := r.db.ExecContext(ctx,
				"UPDATE items SET collection_id = ?, updated_at = datetime('now') WHERE id = ?", *upd.CollectionID, id); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("update item collection: %w", err)}
			}
		}

		if upd.Archived != nil {
			if _, err := r.db.ExecContext(ctx,
				"UPDATE items SET archived = ?, updated_at = datetime('now') WHERE id = ?", *upd.Archived, id); err != nil {
				if isLockError(err) {
					return err // retry
				}
				return &criticalError{err: fmt.Errorf("update item archived: %w", err)}
			}
		}

		return nil
	})
}

// MarkAccessed records an item access time
func (r *ItemRepository) MarkAccessed(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE items SET last_accessed_at = ?, updated_at = datetime('now') WHERE id = ?", at, id)
	if err != nil {
		return fmt.Errorf("mark accessed: %w", err)
	}
	return nil
}

func toDomainItem(si *itemSQL) *domain.Item {
	return &domain.Item{
		ID:             si.ID,
		URL:            si.URL,
		Title:          si.Title,
		Category:       domain.Category(si.Category),
		CollectionID:   si.CollectionID,
		Tags:           si.Tags,
		Annotations:    si.Annotations,
		Archived:       si.Archived,
		HighlightCount: si.HighlightCount,
		CreatedAt:      si.CreatedAt,
		LastAccessedAt: si.LastAccessedAt,
		UpdatedAt:      si.UpdatedAt,
	}
}
