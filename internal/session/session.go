// Package session wires the feed and pulse service for one dashboard run.
package session

import (
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zappabad/pulse/internal/config"
	"github.com/zappabad/pulse/internal/feed"
	"github.com/zappabad/pulse/internal/observability"
	pulseservice "github.com/zappabad/pulse/internal/pulse/service"
	"github.com/zappabad/pulse/internal/random"
	"github.com/zappabad/pulse/internal/token/synth"
)

// Session owns all subsystems of a dashboard run and manages their lifecycle.
type Session struct {
	Feed     *feed.Simulated
	Pulse    *pulseservice.PulseService
	Metrics  *observability.Metrics
	Registry *prometheus.Registry

	mu     sync.Mutex
	closed bool
}

// New acquires the feed and the pulse service. Nothing runs until Start.
func New(cfg *config.Config, buyer pulseservice.Buyer, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}

	src := random.New(cfg.Seed)
	sy := synth.NewSynthesizer(src, nil)
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics("pulse", reg)

	svcCfg := cfg.Service()
	svcCfg.Metrics = metrics

	f := feed.NewSimulated(cfg.Feed(), sy, src, svcCfg.Initial.EndIndex(), logger)

	pulse, err := pulseservice.NewPulseService(svcCfg, sy, f, buyer, logger)
	if err != nil {
		return nil, err
	}

	return &Session{Feed: f, Pulse: pulse, Metrics: metrics, Registry: reg}, nil
}

// Start loads the initial columns and starts the feed.
func (s *Session) Start() error {
	return s.Pulse.Start()
}

// Close shuts down all subsystems in reverse dependency order.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	// Stop the pulse service first; it disconnects the feed.
	s.Pulse.Close()
	s.Feed.Disconnect()
}
