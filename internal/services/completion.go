package services

import (
	"context"

	"techpulse/internal/models"
)

// CompletionProvider is the black-box AI text generator: it takes a prompt
// and a token budget and returns a single text blob. There is no schema
// negotiation; callers parse the text themselves.
type CompletionProvider interface {
	Name() string
	Enabled() bool
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

// NotificationService tells interested users about newly persisted content.
// Delivery transports live outside this repository; the default
// implementation is a no-op.
type NotificationService interface {
	NotifyNewContent(ctx context.Context, items []models.AutoContent) error
}
