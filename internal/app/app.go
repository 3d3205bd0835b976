package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"techpulse/internal/cache"
	"techpulse/internal/config"
	"techpulse/internal/scheduler"
	"techpulse/internal/scoring"
	"techpulse/internal/services"
	"techpulse/internal/sources"
	"techpulse/internal/store"
	"techpulse/internal/store/memory"
	"techpulse/internal/tasks"
)

type App struct {
	Config *config.Config

	Store store.ContentStore
	Cache *cache.Cache

	// JobClient is nil when Redis is not configured; callers fall back to
	// in-process execution.
	JobClient store.JobClient

	Provider   services.CompletionProvider
	Aggregator *services.AggregatorService
	Generator  *services.GenerationService
	Analytics  *services.AnalyticsService

	Scheduler *scheduler.Scheduler
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.initStore()
	app.initJobClient()
	if err := app.initProvider(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	if err := app.initServices(); err != nil {
		app.cleanupPartialInit()
		return nil, err
	}
	app.initScheduler()

	log.Debug("application initialization complete")
	return app, nil
}

func (a *App) initStore() {
	a.Store = memory.NewStore()
	a.Cache = cache.New(a.Config.Cache.TTL, nil)
}

func (a *App) initJobClient() {
	if a.Config.Redis.Address == "" {
		log.Debug("redis not configured, background tasks run in-process")
		return
	}
	a.JobClient = store.NewAsynqJobClient(a.Config.Redis.Address, a.Config.Redis.Password, a.Config.Redis.DB)
}

// initProvider picks the completion provider: OpenAI first, Gemini as
// fallback, noop when neither is configured.
func (a *App) initProvider() error {
	oa := services.NewOpenAICompletionProvider(a.Config.AI.OpenAIAPIKey, a.Config.AI.OpenAIModel)
	if oa.Enabled() {
		a.Provider = oa
		log.Info("using OpenAI completion provider")
		return nil
	}

	gem, err := services.NewGeminiCompletionProvider(a.Config.AI.GeminiAPIKey, a.Config.AI.GeminiModel)
	if err != nil {
		return fmt.Errorf("init gemini provider: %w", err)
	}
	if gem.Enabled() {
		a.Provider = gem
		log.Info("using Gemini completion provider")
		return nil
	}

	a.Provider = services.NewNoopCompletionProvider()
	log.Warn("no AI provider configured, content generation disabled")
	return nil
}

func (a *App) initServices() error {
	var scorer scoring.Scorer
	switch a.Config.Discovery.Scorer {
	case "heuristic":
		scorer = scoring.NewHeuristicScorer(nil)
	default:
		scorer = scoring.NewStaticScorer()
	}

	a.Generator = services.NewGenerationService(services.GenerationDeps{
		Provider:       a.Provider,
		Store:          a.Store,
		InitialPerType: a.Config.Generation.InitialPerType,
	})
	a.Analytics = services.NewAnalyticsService(a.Store)

	srcCfg := a.Config.Sources
	a.Aggregator = services.NewAggregatorService(services.AggregatorDeps{
		News:          sources.NewNewsClient(srcCfg.NewsAPIKey),
		Reddit:        sources.NewRedditClient(srcCfg.RedditClientID, srcCfg.RedditClientSecret),
		GitHub:        sources.NewGitHubClient(srcCfg.GitHubToken),
		Twitter:       sources.NewTwitterClient(srcCfg.TwitterAPIKey),
		LinkedIn:      sources.NewLinkedInClient(srcCfg.LinkedInAPIKey),
		StackOverflow: sources.NewStackOverflowClient(srcCfg.StackOverflowAPIKey),

		Scorer:    scorer,
		Store:     a.Store,
		Suggester: a.Generator,
		Notifier:  services.NewNoopNotificationService(),

		Subreddit:          a.Config.Discovery.Subreddit,
		RelevanceThreshold: &a.Config.Discovery.RelevanceThreshold,
		QualityThreshold:   &a.Config.Discovery.QualityThreshold,
	})
	return nil
}

// initScheduler wires the recurring discovery + hourly generation run. With a
// job client the tick only enqueues; otherwise the work runs in-process.
func (a *App) initScheduler() {
	run := func(ctx context.Context) error {
		if a.JobClient != nil {
			if _, err := a.JobClient.Enqueue(ctx, tasks.NewContentDiscoverTask()); err != nil {
				return err
			}
			_, err := a.JobClient.Enqueue(ctx, tasks.NewContentGenerateHourlyTask())
			return err
		}

		if _, err := a.Aggregator.AutoDiscover(ctx); err != nil {
			return err
		}
		if a.Generator.Enabled() {
			return a.Generator.GenerateHourly(ctx)
		}
		return nil
	}
	a.Scheduler = scheduler.New("content-refresh", a.Config.Discovery.Schedule, run)
}

// Close releases the app's long-lived resources.
func (a *App) Close() {
	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}
	a.cleanupPartialInit()
}

func (a *App) cleanupPartialInit() {
	if a.JobClient != nil {
		a.JobClient.Close()
	}
	if p, ok := a.Provider.(interface{ Close() error }); ok && p != nil {
		if err := p.Close(); err != nil {
			log.Warnf("error closing completion provider: %v", err)
		}
	}
}
