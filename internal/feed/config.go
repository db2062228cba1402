package feed

import "time"

// Config holds configuration for the simulated feed.
type Config struct {
	// MinInterval and MaxInterval bound the delay before each tick; the delay is re-rolled every tick.
	MinInterval time.Duration
	MaxInterval time.Duration
	// MinBatch and MaxBatch bound the number of pairs emitted per tick.
	MinBatch int
	MaxBatch int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		MinInterval: 2 * time.Second,
		MaxInterval: 5 * time.Second,
		MinBatch:    1,
		MaxBatch:    3,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinInterval <= 0 {
		c.MinInterval = d.MinInterval
	}
	if c.MaxInterval <= 0 {
		c.MaxInterval = d.MaxInterval
	}
	if c.MaxInterval < c.MinInterval {
		c.MaxInterval = c.MinInterval
	}
	if c.MinBatch <= 0 {
		c.MinBatch = d.MinBatch
	}
	if c.MaxBatch <= 0 {
		c.MaxBatch = d.MaxBatch
	}
	if c.MaxBatch < c.MinBatch {
		c.MaxBatch = c.MinBatch
	}
	return c
}
