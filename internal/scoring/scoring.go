// Package scoring assigns relevance and quality signals to validated
// content. The scoring algorithm is a pluggable policy: the pipeline only
// depends on the Scorer interface.
package scoring

import (
	"context"

	"techpulse/internal/models"
)

// Scorer produces relevance and quality scores, each conceptually in [0,1].
type Scorer interface {
	Relevance(ctx context.Context, content models.AutoContent) (float64, error)
	Quality(ctx context.Context, content models.AutoContent) (float64, error)
}

// Default thresholds applied by the orchestrator's filtering stage.
const (
	DefaultRelevanceThreshold = 0.7
	DefaultQualityThreshold   = 0.6
)

// StaticScorer returns fixed scores for every item. It is the default policy
// until a real ranking model exists, and doubles as a test stub.
type StaticScorer struct {
	RelevanceScore float64
	QualityScore   float64
}

// NewStaticScorer returns the placeholder policy with the historical
// constants 0.8/0.7.
func NewStaticScorer() *StaticScorer {
	return &StaticScorer{RelevanceScore: 0.8, QualityScore: 0.7}
}

func (s *StaticScorer) Relevance(ctx context.Context, content models.AutoContent) (float64, error) {
	return s.RelevanceScore, nil
}

func (s *StaticScorer) Quality(ctx context.Context, content models.AutoContent) (float64, error) {
	return s.QualityScore, nil
}

var _ Scorer = (*StaticScorer)(nil)
