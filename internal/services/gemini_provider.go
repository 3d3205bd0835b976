package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"techpulse/internal/models"
)

const defaultGeminiModel = "gemini-pro"

// GeminiCompletionProvider generates content text via the Google Gemini API.
// It serves as the fallback when no OpenAI key is configured.
type GeminiCompletionProvider struct {
	client *genai.Client
	model  string
}

var _ CompletionProvider = (*GeminiCompletionProvider)(nil)

// NewGeminiCompletionProvider creates a Gemini provider, falling back to the
// GEMINI_API_KEY environment variable. A missing key yields a disabled
// provider; a client construction failure is a real error.
func NewGeminiCompletionProvider(apiKey, model string) (*GeminiCompletionProvider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if apiKey == "" {
		log.Debug("Gemini API key not configured, provider disabled")
		return &GeminiCompletionProvider{model: model}, nil
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiCompletionProvider{client: client, model: model}, nil
}

func (p *GeminiCompletionProvider) Name() string { return "gemini" }

func (p *GeminiCompletionProvider) Enabled() bool { return p.client != nil }

// Close releases the underlying gRPC connection.
func (p *GeminiCompletionProvider) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *GeminiCompletionProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("gemini provider: %w", models.ErrNoProvider)
	}

	model := p.client.GenerativeModel(p.model)
	model.SetMaxOutputTokens(int32(maxTokens))
	model.SetTemperature(defaultCompletionTemp)

	// Gemini has no separate system role on this model; prepend it.
	resp, err := model.GenerateContent(ctx, genai.Text(systemPrompt+"\n\n"+userPrompt))
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: %s", errNoCompletionChoices)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini: completion contained no text parts")
	}
	return sb.String(), nil
}
