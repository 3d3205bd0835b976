package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"techpulse/internal/models"
	"techpulse/internal/pipeline"
	"techpulse/internal/store"
	"techpulse/internal/validation"
)

const (
	defaultInitialPerType = 20
	batchMaxTokens        = 4000
	suggestionMaxTokens   = 1000

	aiGeneratedSource  = "ai-generated"
	aiSuggestionSource = "ai-suggestion"

	// Suggestions rank at the top of a discovery batch.
	suggestionPopularity = 100
)

// GenerationDeps bundles the generation service's collaborators.
type GenerationDeps struct {
	Provider CompletionProvider
	Store    store.ContentStore

	InitialPerType int
}

// GenerationService produces AI-written content: the one-off initial catalog,
// the hourly top-up, and topic suggestions for the discovery run. All
// generated items pass through the same normalize/validate path as scraped
// content before they are persisted.
type GenerationService struct {
	deps GenerationDeps
}

var _ SuggestionSource = (*GenerationService)(nil)

func NewGenerationService(deps GenerationDeps) *GenerationService {
	if deps.Provider == nil {
		deps.Provider = NewNoopCompletionProvider()
	}
	if deps.InitialPerType <= 0 {
		deps.InitialPerType = defaultInitialPerType
	}
	return &GenerationService{deps: deps}
}

// Enabled reports whether a real completion provider is configured.
func (s *GenerationService) Enabled() bool { return s.deps.Provider.Enabled() }

// GenerateInitial seeds the catalog with a full batch of every content type,
// generated concurrently. Any single batch failure fails the whole seed.
func (s *GenerationService) GenerateInitial(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, contentType := range models.ContentTypes {
		g.Go(func() error {
			return s.generateAndSave(gctx, contentType, s.deps.InitialPerType)
		})
	}
	if err := g.Wait(); err != nil {
		return &models.ContentProcessingError{Stage: "generating", Err: err}
	}
	log.Info("initial content generation completed")
	return nil
}

// GenerateHourly tops up the catalog with one item of each type.
func (s *GenerationService) GenerateHourly(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, contentType := range models.ContentTypes {
		g.Go(func() error {
			return s.generateAndSave(gctx, contentType, 1)
		})
	}
	if err := g.Wait(); err != nil {
		return &models.ContentProcessingError{Stage: "generating", Err: err}
	}
	log.Info("hourly content update completed")
	return nil
}

func (s *GenerationService) generateAndSave(ctx context.Context, contentType models.ContentType, count int) error {
	text, err := s.deps.Provider.Complete(ctx, generationSystemPrompt, generationPrompt(contentType, count), batchMaxTokens)
	if err != nil {
		return err
	}

	raw, err := parseItemArray(text)
	if err != nil {
		return fmt.Errorf("parsing generated %s batch: %w", contentType, err)
	}

	items := make([]models.AutoContent, 0, len(raw))
	for _, item := range raw {
		item.Source = aiGeneratedSource
		item.Type = string(contentType)
		if item.URL == "" {
			item.URL = placeholderURL(contentType, item.Title)
		}

		content := pipeline.Normalize(item)
		content.AIGenerated = true
		if err := validation.Validate(content); err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				log.Warnf("dropping invalid generated %s: %v", contentType, verr)
				continue
			}
			return err
		}
		items = append(items, content)
	}
	if len(items) == 0 {
		return fmt.Errorf("generated %s batch contained no valid items", contentType)
	}

	return s.deps.Store.SaveContent(ctx, items, contentType)
}

// suggestionPayload is the element shape the suggestion prompt asks for.
type suggestionPayload struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ContentType    string   `json:"contentType"`
	TargetAudience []string `json:"targetAudience"`
}

// Suggestions asks the provider for trending topics and returns them as raw
// items for the discovery pipeline. Each carries the ai-suggestion source and
// a fixed top popularity so the scorer treats it as already-popular.
func (s *GenerationService) Suggestions(ctx context.Context) ([]models.RawItem, error) {
	if !s.deps.Provider.Enabled() {
		return nil, nil
	}

	text, err := s.deps.Provider.Complete(ctx, suggestionSystemPrompt, suggestionPrompt, suggestionMaxTokens)
	if err != nil {
		return nil, err
	}

	var payloads []suggestionPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payloads); err != nil {
		return nil, fmt.Errorf("parsing suggestions: %w", err)
	}

	items := make([]models.RawItem, 0, len(payloads))
	for _, p := range payloads {
		// The model sometimes answers "Course" or "courses"; resolve it the
		// same way the listing endpoint does. Unresolvable types are left for
		// the classifier's source rules.
		if t, err := models.ParseContentType(p.ContentType); err == nil {
			p.ContentType = string(t)
		} else {
			p.ContentType = ""
		}
		items = append(items, models.RawItem{
			Title:          p.Title,
			Description:    p.Description,
			URL:            fmt.Sprintf("https://example.com/suggestions/%s", slugify(p.Title)),
			Source:         aiSuggestionSource,
			Type:           p.ContentType,
			Popularity:     suggestionPopularity,
			TargetAudience: p.TargetAudience,
		})
	}
	return items, nil
}

// parseItemArray decodes the provider's response text as a JSON array of raw
// items. A malformed response is an error, not something to repair.
func parseItemArray(text string) ([]models.RawItem, error) {
	var items []models.RawItem
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// stripCodeFence removes a markdown ```json fence if the model wrapped its
// response in one.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
