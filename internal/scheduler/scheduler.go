// Package scheduler runs the recurring content-generation trigger as a
// single-flight job: a tick that fires while the previous run is still
// executing is skipped, never overlapped.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// RunFunc is the unit of work the scheduler drives.
type RunFunc func(ctx context.Context) error

// Scheduler wraps a cron entry with an in-flight guard.
type Scheduler struct {
	name     string
	spec     string
	run      RunFunc
	cron     *cron.Cron
	inFlight atomic.Bool

	mu      sync.Mutex
	started bool
	entry   cron.EntryID
}

// New builds a scheduler that runs fn on the cron spec (e.g. "@hourly").
func New(name, spec string, fn RunFunc) *Scheduler {
	return &Scheduler{
		name: name,
		spec: spec,
		run:  fn,
		cron: cron.New(),
	}
}

// Start registers the cron entry and begins ticking. Starting an already
// started scheduler is a no-op.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil
	}

	id, err := s.cron.AddFunc(s.spec, s.tick)
	if err != nil {
		return fmt.Errorf("schedule %s (%s): %w", s.name, s.spec, err)
	}
	s.entry = id
	s.cron.Start()
	s.started = true
	log.Infof("scheduler %s started (%s)", s.name, s.spec)
	return nil
}

// Stop removes the cron entry and stops ticking. An in-flight run is allowed
// to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	s.cron.Remove(s.entry)
	s.cron.Stop()
	s.started = false
	log.Infof("scheduler %s stopped", s.name)
}

// Running reports whether the scheduler is ticking.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// tick runs one iteration unless the previous one is still in flight, in
// which case the tick is skipped.
func (s *Scheduler) tick() {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Warnf("scheduler %s: previous run still executing, skipping tick", s.name)
		return
	}
	defer s.inFlight.Store(false)

	if err := s.run(context.Background()); err != nil {
		log.Errorf("scheduler %s: run failed: %v", s.name, err)
	}
}

// TriggerNow runs one iteration immediately, subject to the same
// single-flight guard.
func (s *Scheduler) TriggerNow() {
	s.tick()
}
