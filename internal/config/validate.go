package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}

	if c.Discovery.Schedule == "" {
		return errors.New("discovery.schedule is required")
	}
	if c.Discovery.RelevanceThreshold < 0 || c.Discovery.RelevanceThreshold > 1 {
		return fmt.Errorf("discovery.relevance_threshold (%v) must be within [0, 1]", c.Discovery.RelevanceThreshold)
	}
	if c.Discovery.QualityThreshold < 0 || c.Discovery.QualityThreshold > 1 {
		return fmt.Errorf("discovery.quality_threshold (%v) must be within [0, 1]", c.Discovery.QualityThreshold)
	}
	switch c.Discovery.Scorer {
	case "", "static", "heuristic":
	default:
		return fmt.Errorf("discovery.scorer must be \"static\" or \"heuristic\", got %q", c.Discovery.Scorer)
	}

	if c.Generation.InitialPerType <= 0 {
		return errors.New("generation.initial_per_type must be a positive integer")
	}
	if c.Cache.TTL <= 0 {
		return errors.New("cache.ttl must be positive")
	}

	// Redis is optional; the worker settings only matter when it is set.
	if c.Redis.Address != "" {
		if c.Worker.Concurrency <= 0 {
			return errors.New("worker.concurrency must be a positive integer")
		}
		if len(c.Worker.Queues) == 0 {
			return errors.New("worker.queues must define at least one queue")
		}
		for name, priority := range c.Worker.Queues {
			if name == "" {
				return errors.New("worker.queues contains an empty queue name")
			}
			if priority <= 0 {
				return fmt.Errorf("worker.queues priority for queue %q must be positive", name)
			}
		}
	}

	return nil
}
