// Package memory provides the in-memory ContentStore. It is the explicit,
// constructed-once replacement for what used to be module-level singleton
// state: build one Store at process start and pass it to collaborators.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
	"techpulse/internal/store"
)

var _ store.ContentStore = (*Store)(nil)

// Store keeps content in mutex-guarded slices keyed by content type.
type Store struct {
	mu    sync.RWMutex
	items map[models.ContentType][]models.AutoContent
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		items: make(map[models.ContentType][]models.AutoContent),
		now:   time.Now,
	}
}

// SaveContent appends items under the given type. Items are stored as given;
// deduplication is not part of the persistence contract.
func (s *Store) SaveContent(ctx context.Context, items []models.AutoContent, contentType models.ContentType) error {
	if !models.IsValidContentType(string(contentType)) {
		return fmt.Errorf("%w: cannot save under content type %q", models.ErrPersistence, contentType)
	}

	s.mu.Lock()
	s.items[contentType] = append(s.items[contentType], items...)
	s.mu.Unlock()

	log.Infof("saved %d %s item(s)", len(items), contentType)
	return nil
}

// ListContent returns a copy of all items stored under the given type.
func (s *Store) ListContent(ctx context.Context, contentType models.ContentType) ([]models.AutoContent, error) {
	if !models.IsValidContentType(string(contentType)) {
		return nil, fmt.Errorf("%w: invalid content type %q", models.ErrValidation, contentType)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AutoContent, len(s.items[contentType]))
	copy(out, s.items[contentType])
	return out, nil
}

// GetContent finds an item by ID across all types.
func (s *Store) GetContent(ctx context.Context, id string) (models.AutoContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, items := range s.items {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return models.AutoContent{}, fmt.Errorf("content %s: %w", id, models.ErrNotFound)
}

// UpdateAnalytics mutates the item's analytics block under the store lock.
// Counters updated this way are best-effort in-process counts.
func (s *Store) UpdateAnalytics(ctx context.Context, id string, update func(*models.ContentAnalytics)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for contentType, items := range s.items {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if items[i].Analytics == nil {
				items[i].Analytics = &models.ContentAnalytics{ContentID: id}
			}
			update(items[i].Analytics)
			items[i].Analytics.LastUpdated = s.now()
			s.items[contentType] = items
			return nil
		}
	}
	return fmt.Errorf("content %s: %w", id, models.ErrNotFound)
}

// CountContent reports how many items are stored per type.
func (s *Store) CountContent(ctx context.Context) map[models.ContentType]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.ContentType]int, len(s.items))
	for contentType, items := range s.items {
		counts[contentType] = len(items)
	}
	return counts
}
