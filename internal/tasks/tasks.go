package tasks

import "github.com/hibiken/asynq"

// Task types handled by the worker process.
const (
	// TypeContentDiscover runs a full multi-source aggregation cycle.
	TypeContentDiscover = "content:discover"
	// TypeContentGenerateInitial seeds the catalog with the initial AI batch.
	TypeContentGenerateInitial = "content:generate_initial"
	// TypeContentGenerateHourly tops up the catalog with one item per type.
	TypeContentGenerateHourly = "content:generate_hourly"
)

// The discovery and generation tasks carry no payload; the worker's wired
// services hold all configuration.

func NewContentDiscoverTask() *asynq.Task {
	return asynq.NewTask(TypeContentDiscover, nil)
}

func NewContentGenerateInitialTask() *asynq.Task {
	return asynq.NewTask(TypeContentGenerateInitial, nil)
}

func NewContentGenerateHourlyTask() *asynq.Task {
	return asynq.NewTask(TypeContentGenerateHourly, nil)
}
