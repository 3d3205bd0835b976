package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
	"techpulse/internal/store"
)

// Engagement actions accepted by Track.
const (
	ActionView    = "view"
	ActionLike    = "like"
	ActionShare   = "share"
	ActionComment = "comment"
)

// AnalyticsService increments per-item engagement counters. Counters are
// best-effort: each update is atomic under the store lock, but there is no
// cross-process exactness guarantee.
type AnalyticsService struct {
	store store.ContentStore
}

func NewAnalyticsService(contentStore store.ContentStore) *AnalyticsService {
	return &AnalyticsService{store: contentStore}
}

// Track records one engagement action against a content item. An unknown
// action is a validation error; an unknown id surfaces the store's not-found.
func (s *AnalyticsService) Track(ctx context.Context, contentID, action string) error {
	var update func(*models.ContentAnalytics)
	switch action {
	case ActionView:
		update = func(a *models.ContentAnalytics) { a.Views++ }
	case ActionLike:
		update = func(a *models.ContentAnalytics) { a.Likes++ }
	case ActionShare:
		update = func(a *models.ContentAnalytics) { a.Shares++ }
	case ActionComment:
		update = func(a *models.ContentAnalytics) { a.Comments++ }
	default:
		return fmt.Errorf("%w: unknown engagement action %q", models.ErrValidation, action)
	}

	if err := s.store.UpdateAnalytics(ctx, contentID, update); err != nil {
		return err
	}
	log.Debugf("tracked %s on %s", action, contentID)
	return nil
}
