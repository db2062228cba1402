// Package service owns the per-category columns and is the single place
// where feed batches are reconciled into them.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zappabad/pulse/internal/feed"
	"github.com/zappabad/pulse/internal/pulse/view"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/internal/token/synth"
)

var (
	ErrClosed         = errors.New("service closed")
	ErrAlreadyStarted = errors.New("service already started")
	ErrUnknownPair    = errors.New("unknown pair")
)

// PulseService holds the dashboard state and applies feed batches to it.
type PulseService struct {
	cfg    Config
	synth  *synth.Synthesizer
	src    feed.Source
	buyer  Buyer
	logger *slog.Logger

	mu      sync.RWMutex
	columns token.Columns
	ready   bool
	seq     int64

	// eventsMu guards externalEvents against a send racing its close.
	eventsMu       sync.RWMutex
	externalEvents chan view.BatchEvent
	droppedEvents  atomic.Int64

	closed    chan struct{}
	closeOnce sync.Once
}

// NewPulseService creates a PulseService with empty columns. A nil buyer
// defaults to LogBuyer.
func NewPulseService(cfg Config, sy *synth.Synthesizer, src feed.Source, buyer Buyer, logger *slog.Logger) (*PulseService, error) {
	if err := cfg.Initial.Validate(); err != nil {
		return nil, fmt.Errorf("initial columns: %w", err)
	}
	if cfg.MaxLen <= 0 {
		cfg.MaxLen = DefaultConfig().MaxLen
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = DefaultConfig().EventBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	if buyer == nil {
		buyer = LogBuyer{Logger: logger}
	}

	return &PulseService{
		cfg:            cfg,
		synth:          sy,
		src:            src,
		buyer:          buyer,
		logger:         logger.With("component", "pulse"),
		columns:        token.NewColumns(),
		externalEvents: make(chan view.BatchEvent, cfg.EventBuffer),
		closed:         make(chan struct{}),
	}, nil
}

// Start loads the initial columns and connects to the feed.
func (s *PulseService) Start() error {
	select {
	case <-s.closed:
		return ErrClosed
	default:
	}

	initial, err := s.synth.InitialState(s.cfg.Initial)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.ready {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	for cat, pairs := range initial {
		if len(pairs) > s.cfg.MaxLen {
			pairs = pairs[:s.cfg.MaxLen]
		}
		s.columns[cat] = pairs
	}
	s.cfg.Metrics.SetColumnSizes(s.columns)
	s.ready = true
	s.mu.Unlock()

	s.logger.Info("initial_state_loaded",
		"new_pairs", len(initial[token.CategoryNewPairs]),
		"final_stretch", len(initial[token.CategoryFinalStretch]),
		"migrated", len(initial[token.CategoryMigrated]),
	)

	if err := s.src.Connect(s.apply); err != nil {
		return fmt.Errorf("connect feed: %w", err)
	}

	// Close may have run while connecting; it could not stop a feed that
	// was not yet started.
	select {
	case <-s.closed:
		s.src.Disconnect()
		return ErrClosed
	default:
	}
	return nil
}

func (s *PulseService) apply(batch []token.Pair) {
	started := time.Now()

	s.mu.Lock()
	s.columns = view.Reconcile(s.columns, batch, s.cfg.MaxLen)
	s.seq++
	s.cfg.Metrics.RecordBatch(batch, time.Since(started))
	s.cfg.Metrics.SetColumnSizes(s.columns)
	ev := view.BatchEvent{
		Seq:     s.seq,
		Pairs:   batch,
		Columns: s.columns.Clone(),
	}
	s.mu.Unlock()

	s.logger.Debug("batch_reconciled", "seq", ev.Seq, "pairs", len(batch))

	s.eventsMu.RLock()
	defer s.eventsMu.RUnlock()

	select {
	case <-s.closed:
		return
	default:
	}

	if s.cfg.DropEvents {
		select {
		case s.externalEvents <- ev:
		default:
			s.droppedEvents.Add(1)
			s.cfg.Metrics.RecordDropped()
		}
	} else {
		select {
		case s.externalEvents <- ev:
		case <-s.closed:
		}
	}
}

// Ready reports whether the initial columns are loaded.
func (s *PulseService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Snapshot returns a copy of all columns.
func (s *PulseService) Snapshot() token.Columns {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.columns.Clone()
}

// Column returns one column ordered by c. The canonical state is not reordered.
func (s *PulseService) Column(cat token.Category, c view.Criterion) []token.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return view.SortForDisplay(s.columns[cat], c)
}

// Buy hands the pair with the given id to the buyer.
func (s *PulseService) Buy(ctx context.Context, pairID string) error {
	select {
	case <-s.closed:
		return ErrClosed
	default:
	}

	s.mu.RLock()
	pair, ok := s.columns.Find(pairID)
	s.mu.RUnlock()
	if !ok {
		err := fmt.Errorf("%w: %s", ErrUnknownPair, pairID)
		s.cfg.Metrics.RecordBuy(err)
		return err
	}

	err := s.buyer.Buy(ctx, pair)
	s.cfg.Metrics.RecordBuy(err)
	return err
}

// Events returns the reconciled-batch channel for subscribers.
func (s *PulseService) Events() <-chan view.BatchEvent {
	return s.externalEvents
}

// DroppedEvents returns the count of dropped external events.
func (s *PulseService) DroppedEvents() int64 {
	return s.droppedEvents.Load()
}

// Close disconnects the feed and closes the events channel.
func (s *PulseService) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.src.Disconnect()

		s.eventsMu.Lock()
		close(s.externalEvents)
		s.eventsMu.Unlock()
	})
}
