package scoring

import (
	"context"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"techpulse/internal/models"
)

// defaultTopics are the platform's subject areas; relevance rises with the
// number of topics a record mentions.
var defaultTopics = []string{
	"ai", "technology", "programming", "software", "developer",
	"machine learning", "cloud", "security", "open source",
}

// HeuristicScorer is a lightweight scoring policy based on topic keyword
// overlap and description structure. It exists to exercise the pluggable
// scoring seam with something better than constants; it is not a ranking
// model.
type HeuristicScorer struct {
	topics    []string
	tokenizer *sentences.DefaultSentenceTokenizer
}

func NewHeuristicScorer(topics []string) *HeuristicScorer {
	if len(topics) == 0 {
		topics = defaultTopics
	}
	// The english constructor carries embedded punkt training data; a bare
	// sentences.NewSentenceTokenizer(nil) has none and cannot tokenize.
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		// Quality falls back to the fragment baseline without a tokenizer.
		tokenizer = nil
	}
	return &HeuristicScorer{
		topics:    topics,
		tokenizer: tokenizer,
	}
}

// Relevance scores topic overlap in the title and description. A record that
// mentions none of the platform topics lands below the filtering threshold.
func (s *HeuristicScorer) Relevance(ctx context.Context, content models.AutoContent) (float64, error) {
	text := strings.ToLower(content.Title + " " + content.Description)
	matched := 0
	for _, topic := range s.topics {
		if strings.Contains(text, topic) {
			matched++
		}
	}

	score := 0.5 + 0.15*float64(matched)
	if content.Popularity > 0 {
		score += 0.05
	}
	return clamp(score), nil
}

// Quality scores description substance: well-formed multi-sentence
// descriptions rate higher than fragments, and engagement counters add a
// small boost.
func (s *HeuristicScorer) Quality(ctx context.Context, content models.AutoContent) (float64, error) {
	sentenceCount := 0
	if s.tokenizer != nil {
		for _, sent := range s.tokenizer.Tokenize(content.Description) {
			if strings.TrimSpace(sent.Text) != "" {
				sentenceCount++
			}
		}
	}

	score := 0.4
	if n := sentenceCount; n > 0 {
		if n > 4 {
			n = 4
		}
		score += 0.1 * float64(n)
	}
	if a := content.Analytics; a != nil && a.Views+a.Likes+a.Shares+a.Comments > 0 {
		score += 0.1
	}
	return clamp(score), nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ Scorer = (*HeuristicScorer)(nil)
