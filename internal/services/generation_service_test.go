package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/models"
	"techpulse/internal/services"
	"techpulse/internal/store/memory"
)

// fakeProvider returns a canned completion and records the prompts it saw.
type fakeProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *fakeProvider) Name() string  { return "fake" }
func (p *fakeProvider) Enabled() bool { return true }

func (p *fakeProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	p.prompts = append(p.prompts, userPrompt)
	return p.response, p.err
}

func TestGenerateHourlyPersistsOnePerType(t *testing.T) {
	provider := &fakeProvider{
		response: `[{"title": "Generated item", "description": "A thing.", "tags": ["go"], "difficulty": "beginner"}]`,
	}
	contentStore := memory.NewStore()
	svc := services.NewGenerationService(services.GenerationDeps{
		Provider: provider,
		Store:    contentStore,
	})

	require.NoError(t, svc.GenerateHourly(context.Background()))

	counts := contentStore.CountContent(context.Background())
	for _, contentType := range models.ContentTypes {
		assert.Equal(t, 1, counts[contentType], "expected one %s item", contentType)
	}

	items, err := contentStore.ListContent(context.Background(), models.ContentTypeGame)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].AIGenerated)
	assert.Equal(t, "ai-generated", items[0].Source)
	assert.Equal(t, "https://example.com/games/generated-item", items[0].URL)
}

func TestGenerateFailsOnMalformedResponse(t *testing.T) {
	provider := &fakeProvider{response: "Sure! Here are some items:"}
	svc := services.NewGenerationService(services.GenerationDeps{
		Provider: provider,
		Store:    memory.NewStore(),
	})

	err := svc.GenerateHourly(context.Background())
	require.Error(t, err)

	var perr *models.ContentProcessingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "generating", perr.Stage)
}

func TestGenerateParsesFencedResponse(t *testing.T) {
	provider := &fakeProvider{
		response: "```json\n[{\"title\": \"Fenced\", \"description\": \"d\"}]\n```",
	}
	contentStore := memory.NewStore()
	svc := services.NewGenerationService(services.GenerationDeps{
		Provider: provider,
		Store:    contentStore,
	})

	require.NoError(t, svc.GenerateHourly(context.Background()))
	items, err := contentStore.ListContent(context.Background(), models.ContentTypeNews)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fenced", items[0].Title)
}

func TestSuggestionsCarrySourceAndPopularity(t *testing.T) {
	provider := &fakeProvider{
		response: `[
			{"title": "Rust for Go developers", "description": "d", "contentType": "course"},
			{"title": "LLM security", "description": "d", "contentType": "news"}
		]`,
	}
	svc := services.NewGenerationService(services.GenerationDeps{
		Provider: provider,
		Store:    memory.NewStore(),
	})

	items, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, "ai-suggestion", item.Source)
		assert.Equal(t, 100, item.Popularity)
	}
	assert.Equal(t, "course", items[0].Type)
	assert.Equal(t, "https://example.com/suggestions/rust-for-go-developers", items[0].URL)
}

func TestSuggestionsDisabledProviderReturnsNothing(t *testing.T) {
	svc := services.NewGenerationService(services.GenerationDeps{Store: memory.NewStore()})

	items, err := svc.Suggestions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
