package store

import (
	"context"

	"github.com/hibiken/asynq"

	"techpulse/internal/models"
)

// ContentStore is the persistence collaborator for the aggregation pipeline.
// There is no contract on idempotence or ordering: SaveContent appends.
type ContentStore interface {
	SaveContent(ctx context.Context, items []models.AutoContent, contentType models.ContentType) error
	ListContent(ctx context.Context, contentType models.ContentType) ([]models.AutoContent, error)
	GetContent(ctx context.Context, id string) (models.AutoContent, error)
	// UpdateAnalytics applies update to the item's analytics block under the
	// store's lock, creating the block if absent.
	UpdateAnalytics(ctx context.Context, id string, update func(*models.ContentAnalytics)) error
	CountContent(ctx context.Context) map[models.ContentType]int
}

// JobClient enqueues background tasks.
type JobClient interface {
	Enqueue(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
	Close() error
}
