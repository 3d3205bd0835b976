package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
)

// NoopCompletionProvider stands in when no AI provider is configured.
// Every completion attempt fails with models.ErrNoProvider so callers can
// distinguish "unconfigured" from a transient API failure.
type NoopCompletionProvider struct{}

var _ CompletionProvider = (*NoopCompletionProvider)(nil)

func NewNoopCompletionProvider() *NoopCompletionProvider { return &NoopCompletionProvider{} }

func (p *NoopCompletionProvider) Name() string { return "noop" }

func (p *NoopCompletionProvider) Enabled() bool { return false }

func (p *NoopCompletionProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	return "", fmt.Errorf("no completion provider configured: %w", models.ErrNoProvider)
}

// NoopNotificationService logs and discards notifications. Wiring an actual
// delivery channel (email, webhook) replaces this at app init.
type NoopNotificationService struct{}

var _ NotificationService = (*NoopNotificationService)(nil)

func NewNoopNotificationService() *NoopNotificationService { return &NoopNotificationService{} }

func (s *NoopNotificationService) NotifyNewContent(ctx context.Context, items []models.AutoContent) error {
	log.Debugf("notification service not configured, dropping notice for %d items", len(items))
	return nil
}
