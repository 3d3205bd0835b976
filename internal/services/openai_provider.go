package services

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
)

const (
	defaultOpenAIModel     = openai.GPT4
	defaultCompletionTemp  = 0.7
	errNoCompletionChoices = "completion returned no choices"
)

// OpenAICompletionProvider generates content text via the OpenAI chat
// completion API. It is the primary provider; Gemini is tried when this
// one is not configured.
type OpenAICompletionProvider struct {
	client *openai.Client
	model  string
}

var _ CompletionProvider = (*OpenAICompletionProvider)(nil)

// NewOpenAICompletionProvider builds a provider from the given API key,
// falling back to the OPENAI_API_KEY environment variable. A provider
// without a key is returned disabled rather than failing construction.
func NewOpenAICompletionProvider(apiKey, model string) *OpenAICompletionProvider {
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	p := &OpenAICompletionProvider{model: model}
	if apiKey == "" {
		log.Debug("OpenAI API key not configured, provider disabled")
		return p
	}
	p.client = openai.NewClient(apiKey)
	return p
}

func (p *OpenAICompletionProvider) Name() string { return "openai" }

func (p *OpenAICompletionProvider) Enabled() bool { return p.client != nil }

func (p *OpenAICompletionProvider) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if p.client == nil {
		return "", fmt.Errorf("openai provider: %w", models.ErrNoProvider)
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: defaultCompletionTemp,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: %s", errNoCompletionChoices)
	}
	return resp.Choices[0].Message.Content, nil
}
