package worker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techpulse/internal/models"
	"techpulse/internal/tasks"
	"techpulse/internal/worker"
)

type fakeDiscoverer struct {
	items []models.AutoContent
	err   error
	calls int
}

func (f *fakeDiscoverer) AutoDiscover(ctx context.Context) ([]models.AutoContent, error) {
	f.calls++
	return f.items, f.err
}

type fakeGenerator struct {
	initialCalls int
	hourlyCalls  int
	err          error
}

func (f *fakeGenerator) GenerateInitial(ctx context.Context) error {
	f.initialCalls++
	return f.err
}

func (f *fakeGenerator) GenerateHourly(ctx context.Context) error {
	f.hourlyCalls++
	return f.err
}

func TestHandleContentDiscover(t *testing.T) {
	disc := &fakeDiscoverer{items: []models.AutoContent{{ID: "a"}}}
	handler := worker.HandleContentDiscover(worker.Deps{Discoverer: disc})

	err := handler(context.Background(), tasks.NewContentDiscoverTask())
	require.NoError(t, err)
	assert.Equal(t, 1, disc.calls)
}

func TestHandleContentDiscoverPropagatesError(t *testing.T) {
	disc := &fakeDiscoverer{err: errors.New("fetch failed")}
	handler := worker.HandleContentDiscover(worker.Deps{Discoverer: disc})

	err := handler(context.Background(), tasks.NewContentDiscoverTask())
	assert.Error(t, err)
}

func TestGenerationHandlers(t *testing.T) {
	gen := &fakeGenerator{}
	deps := worker.Deps{Generator: gen}

	require.NoError(t, worker.HandleContentGenerateInitial(deps)(context.Background(), tasks.NewContentGenerateInitialTask()))
	require.NoError(t, worker.HandleContentGenerateHourly(deps)(context.Background(), tasks.NewContentGenerateHourlyTask()))

	assert.Equal(t, 1, gen.initialCalls)
	assert.Equal(t, 1, gen.hourlyCalls)
}

func TestRegisterHandlersCoversAllTaskTypes(t *testing.T) {
	mux := asynq.NewServeMux()
	worker.RegisterHandlers(mux, worker.Deps{
		Discoverer: &fakeDiscoverer{},
		Generator:  &fakeGenerator{},
	})

	for _, taskType := range []string{
		tasks.TypeContentDiscover,
		tasks.TypeContentGenerateInitial,
		tasks.TypeContentGenerateHourly,
	} {
		_, pattern := mux.Handler(asynq.NewTask(taskType, nil))
		assert.Equal(t, taskType, pattern)
	}
}
