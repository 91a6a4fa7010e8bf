package domain

import (
	"net/url"
	"strings"
	"time"
)

// Category groups saved items by broad intent
type Category string

// item categories
const (
	CategoryWork     Category = "work"
	CategoryLearning Category = "learning"
	CategoryPersonal Category = "personal"
	CategoryGeneral  Category = "general"
)

// Item represents a saved bookmark/knowledge item
type Item struct {
	ID             string
	URL            string
	Title          string
	Category       Category
	CollectionID   string // empty means the item sits in the inbox
	Tags           []string
	Annotations    []string
	Archived       bool
	HighlightCount int
	CreatedAt      time.Time
	LastAccessedAt *time.Time
	UpdatedAt      time.Time
}

// InInbox reports whether the item is still unfiled
func (i *Item) InInbox() bool {
	return i.CollectionID == "" && !i.Archived
}

// Domain returns the host of the item URL with a www prefix stripped,
// empty string if the URL does not parse
func (i *Item) Domain() string {
	u, err := url.Parse(i.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Host), "www.")
}

// Collection represents a named group of filed items
type Collection struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ItemUpdate describes a partial item mutation. Nil fields are left untouched.
type ItemUpdate struct {
	CollectionID     *string
	Archived         *bool
	AppendAnnotation string
}
