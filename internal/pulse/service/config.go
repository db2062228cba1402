package service

import (
	"github.com/zappabad/pulse/internal/observability"
	"github.com/zappabad/pulse/internal/pulse/view"
	"github.com/zappabad/pulse/internal/token/synth"
)

// Config holds configuration for the pulse service.
type Config struct {
	// Initial sizes the columns generated at start.
	Initial synth.Config
	// MaxLen caps every column.
	MaxLen int
	// EventBuffer is the size of the external events channel.
	EventBuffer int
	// DropEvents determines whether the events channel drops on overflow.
	DropEvents bool
	// Metrics is optional.
	Metrics *observability.Metrics
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Initial:     synth.DefaultConfig(),
		MaxLen:      view.DefaultMaxLen,
		EventBuffer: 64,
		DropEvents:  true,
	}
}
