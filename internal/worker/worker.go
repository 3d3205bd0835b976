package worker

import (
	"context"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"techpulse/internal/models"
	"techpulse/internal/tasks"
)

// Discoverer runs one aggregation cycle.
type Discoverer interface {
	AutoDiscover(ctx context.Context) ([]models.AutoContent, error)
}

// Generator produces AI content batches.
type Generator interface {
	GenerateInitial(ctx context.Context) error
	GenerateHourly(ctx context.Context) error
}

// Deps bundles the services the task handlers run against.
type Deps struct {
	Discoverer Discoverer
	Generator  Generator
}

// RegisterHandlers wires the content task handlers onto the mux.
func RegisterHandlers(mux *asynq.ServeMux, deps Deps) {
	mux.HandleFunc(tasks.TypeContentDiscover, HandleContentDiscover(deps))
	mux.HandleFunc(tasks.TypeContentGenerateInitial, HandleContentGenerateInitial(deps))
	mux.HandleFunc(tasks.TypeContentGenerateHourly, HandleContentGenerateHourly(deps))
}

// HandleContentDiscover returns the handler for a full discovery cycle.
func HandleContentDiscover(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		items, err := deps.Discoverer.AutoDiscover(ctx)
		if err != nil {
			log.Errorf("discovery task failed: %v", err)
			return err
		}
		log.Infof("discovery task persisted %d item(s)", len(items))
		return nil
	}
}

// HandleContentGenerateInitial returns the handler for the initial seed.
func HandleContentGenerateInitial(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := deps.Generator.GenerateInitial(ctx); err != nil {
			log.Errorf("initial generation task failed: %v", err)
			return err
		}
		return nil
	}
}

// HandleContentGenerateHourly returns the handler for the hourly top-up.
func HandleContentGenerateHourly(deps Deps) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := deps.Generator.GenerateHourly(ctx); err != nil {
			log.Errorf("hourly generation task failed: %v", err)
			return err
		}
		return nil
	}
}
