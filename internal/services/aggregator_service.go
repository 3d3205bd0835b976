package services

import (
	"context"
	"errors"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"techpulse/internal/models"
	"techpulse/internal/pipeline"
	"techpulse/internal/scoring"
	"techpulse/internal/store"
	"techpulse/internal/validation"
)

// Per-source fetch interfaces. The concrete clients live in
// internal/sources; the orchestrator only needs the trending call of each.
type (
	NewsSource interface {
		TopHeadlines(ctx context.Context) ([]models.NewsArticle, error)
	}
	RedditSource interface {
		HotPosts(ctx context.Context, subreddit string) ([]models.RedditPost, error)
	}
	GitHubSource interface {
		TrendingRepos(ctx context.Context) ([]models.GitHubRepo, error)
	}
	TwitterSource interface {
		TrendingTweets(ctx context.Context) ([]models.Tweet, error)
	}
	LinkedInSource interface {
		TrendingPosts(ctx context.Context) ([]models.LinkedInPost, error)
	}
	StackOverflowSource interface {
		TrendingQuestions(ctx context.Context) ([]models.StackQuestion, error)
	}
)

// SuggestionSource contributes extra raw items to a discovery run, e.g. AI
// topic suggestions. Suggestions are best-effort: a failure is logged and the
// run continues without them.
type SuggestionSource interface {
	Suggestions(ctx context.Context) ([]models.RawItem, error)
}

// AggregatorDeps bundles the orchestrator's collaborators.
type AggregatorDeps struct {
	News          NewsSource
	Reddit        RedditSource
	GitHub        GitHubSource
	Twitter       TwitterSource
	LinkedIn      LinkedInSource
	StackOverflow StackOverflowSource

	Scorer    scoring.Scorer
	Store     store.ContentStore
	Suggester SuggestionSource    // optional
	Notifier  NotificationService // optional

	Subreddit string

	// Nil thresholds fall back to the scoring defaults; an explicit zero is
	// honored so an operator can configure an accept-all run.
	RelevanceThreshold *float64
	QualityThreshold   *float64
}

// AggregatorService runs the multi-source aggregation pipeline:
// fan-out fetch, normalize, validate, score, filter, persist.
type AggregatorService struct {
	deps AggregatorDeps

	relevanceThreshold float64
	qualityThreshold   float64
}

func NewAggregatorService(deps AggregatorDeps) *AggregatorService {
	if deps.Scorer == nil {
		deps.Scorer = scoring.NewStaticScorer()
	}
	if deps.Subreddit == "" {
		deps.Subreddit = "programming"
	}
	s := &AggregatorService{
		deps:               deps,
		relevanceThreshold: scoring.DefaultRelevanceThreshold,
		qualityThreshold:   scoring.DefaultQualityThreshold,
	}
	if deps.RelevanceThreshold != nil {
		s.relevanceThreshold = *deps.RelevanceThreshold
	}
	if deps.QualityThreshold != nil {
		s.qualityThreshold = *deps.QualityThreshold
	}
	return s
}

// DiscoverTrending fans out to all six sources concurrently and returns the
// merged batch normalized, validated and scored. The join is all-or-nothing:
// the first source error cancels the wait and fails the whole run, and no
// items from any source are returned.
func (s *AggregatorService) DiscoverTrending(ctx context.Context) ([]models.AutoContent, error) {
	var (
		articles  []models.NewsArticle
		posts     []models.RedditPost
		repos     []models.GitHubRepo
		tweets    []models.Tweet
		liPosts   []models.LinkedInPost
		questions []models.StackQuestion
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.deps.News.TopHeadlines(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.deps.Reddit.HotPosts(gctx, s.deps.Subreddit)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.deps.GitHub.TrendingRepos(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tweets, err = s.deps.Twitter.TrendingTweets(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		liPosts, err = s.deps.LinkedIn.TrendingPosts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.deps.StackOverflow.TrendingQuestions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, &models.ContentProcessingError{Stage: "fetching", Err: err}
	}

	items := make([]any, 0, len(articles)+len(posts)+len(repos)+len(tweets)+len(liPosts)+len(questions))
	for _, a := range articles {
		items = append(items, a)
	}
	for _, p := range posts {
		items = append(items, p)
	}
	for _, r := range repos {
		items = append(items, r)
	}
	for _, t := range tweets {
		items = append(items, t)
	}
	for _, p := range liPosts {
		items = append(items, p)
	}
	for _, q := range questions {
		items = append(items, q)
	}

	if s.deps.Suggester != nil {
		suggestions, err := s.deps.Suggester.Suggestions(ctx)
		if err != nil {
			log.Warnf("content suggestions unavailable: %v", err)
		} else {
			for _, sug := range suggestions {
				items = append(items, sug)
			}
		}
	}

	return s.analyzeItems(ctx, items)
}

// analyzeItems runs normalize -> validate -> score for every item
// concurrently. A validation failure drops only that item; any other error
// aborts the batch.
func (s *AggregatorService) analyzeItems(ctx context.Context, items []any) ([]models.AutoContent, error) {
	results := make([]*models.AutoContent, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			content := pipeline.Normalize(item)

			if err := validation.Validate(content); err != nil {
				var verr *models.ValidationError
				if errors.As(err, &verr) {
					log.Warnf("dropping invalid item from %s: %v", content.Source, verr)
					return nil
				}
				return err
			}

			relevance, err := s.deps.Scorer.Relevance(gctx, content)
			if err != nil {
				return err
			}
			quality, err := s.deps.Scorer.Quality(gctx, content)
			if err != nil {
				return err
			}
			content.RelevanceScore = relevance
			content.QualityScore = quality

			results[i] = &content
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &models.ContentProcessingError{Stage: "analyzing", Err: err}
	}

	out := make([]models.AutoContent, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, nil
}

// IngestRaw runs operator-supplied raw items through the analysis pipeline
// and persists the valid ones. No threshold filtering: the operator chose to
// submit them, scores are attached for listing only.
func (s *AggregatorService) IngestRaw(ctx context.Context, raw []models.RawItem) ([]models.AutoContent, error) {
	items := make([]any, len(raw))
	for i, r := range raw {
		items[i] = r
	}

	analyzed, err := s.analyzeItems(ctx, items)
	if err != nil {
		return nil, err
	}
	if err := s.persistByType(ctx, analyzed); err != nil {
		return nil, err
	}
	return analyzed, nil
}

// FilterAndSort keeps items above both score thresholds and orders them by
// descending relevance (stable for ties).
func (s *AggregatorService) FilterAndSort(items []models.AutoContent) []models.AutoContent {
	kept := make([]models.AutoContent, 0, len(items))
	for _, item := range items {
		if item.RelevanceScore > s.relevanceThreshold && item.QualityScore > s.qualityThreshold {
			kept = append(kept, item)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].RelevanceScore > kept[j].RelevanceScore
	})
	return kept
}

// AutoDiscover runs one full aggregation cycle and persists the surviving
// items grouped by content type. It returns what was persisted.
func (s *AggregatorService) AutoDiscover(ctx context.Context) ([]models.AutoContent, error) {
	discovered, err := s.DiscoverTrending(ctx)
	if err != nil {
		return nil, err
	}

	relevant := s.FilterAndSort(discovered)
	if err := s.persistByType(ctx, relevant); err != nil {
		return nil, err
	}

	if s.deps.Notifier != nil && len(relevant) > 0 {
		if err := s.deps.Notifier.NotifyNewContent(ctx, relevant); err != nil {
			log.Warnf("%v: %v", models.ErrNotification, err)
		}
	}

	log.Infof("auto discovery persisted %d of %d discovered item(s)", len(relevant), len(discovered))
	return relevant, nil
}

func (s *AggregatorService) persistByType(ctx context.Context, items []models.AutoContent) error {
	byType := make(map[models.ContentType][]models.AutoContent)
	for _, item := range items {
		byType[item.Type] = append(byType[item.Type], item)
	}
	for _, contentType := range models.ContentTypes {
		batch := byType[contentType]
		if len(batch) == 0 {
			continue
		}
		if err := s.deps.Store.SaveContent(ctx, batch, contentType); err != nil {
			return &models.ContentProcessingError{Stage: "persisting", Err: err}
		}
	}
	return nil
}
