// Package feed provides the source of incremental pair updates.
package feed

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zappabad/pulse/internal/random"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/internal/token/synth"
)

var (
	ErrStopped     = errors.New("feed stopped")
	ErrNilListener = errors.New("nil listener")
)

// Listener receives every batch emitted by a Source.
type Listener func(batch []token.Pair)

// Source is a push feed of token pairs.
type Source interface {
	// Connect registers l and starts the feed if it is not running yet.
	Connect(l Listener) error
	// Disconnect stops the feed and drops all listeners. No listener runs
	// after it returns. It must not be called from inside a listener.
	Disconnect()
}

// State is the lifecycle state of a feed.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Simulated fabricates batches of pairs at randomized intervals.
type Simulated struct {
	cfg    Config
	synth  *synth.Synthesizer
	src    random.Source
	logger *slog.Logger

	mu        sync.Mutex
	state     State
	listeners []Listener

	nextIndex atomic.Int64
	ticks     atomic.Int64

	closed chan struct{}
	wg     sync.WaitGroup
}

var _ Source = (*Simulated)(nil)

// NewSimulated creates an idle feed. Generated indices start at startIndex
// and increase monotonically so pair ids stay unique within a session.
func NewSimulated(cfg Config, sy *synth.Synthesizer, src random.Source, startIndex int, logger *slog.Logger) *Simulated {
	if logger == nil {
		logger = slog.Default()
	}
	f := &Simulated{
		cfg:    cfg.withDefaults(),
		synth:  sy,
		src:    src,
		logger: logger.With("component", "feed"),
		closed: make(chan struct{}),
	}
	f.nextIndex.Store(int64(startIndex))
	return f
}

// Connect registers l. The first call starts the timer.
func (f *Simulated) Connect(l Listener) error {
	if l == nil {
		return ErrNilListener
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch f.state {
	case StateStopped:
		return ErrStopped
	case StateIdle:
		f.state = StateRunning
		f.wg.Add(1)
		go f.run()
		f.logger.Info("feed_connected",
			"min_interval", f.cfg.MinInterval,
			"max_interval", f.cfg.MaxInterval,
		)
	}
	f.listeners = append(f.listeners, l)
	return nil
}

// Disconnect cancels the timer, clears listeners and waits for any in-flight
// delivery to finish. An idle feed is stopped as well, so a later Connect
// returns ErrStopped. Calling it on a stopped feed is a no-op.
func (f *Simulated) Disconnect() {
	f.mu.Lock()
	if f.state == StateStopped {
		f.mu.Unlock()
		return
	}
	f.state = StateStopped
	f.listeners = nil
	close(f.closed)
	f.mu.Unlock()

	f.wg.Wait()
	f.logger.Info("feed_disconnected", "ticks", f.ticks.Load())
}

// State returns the current lifecycle state.
func (f *Simulated) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Ticks returns the number of batches emitted so far.
func (f *Simulated) Ticks() int64 {
	return f.ticks.Load()
}

func (f *Simulated) run() {
	defer f.wg.Done()

	timer := time.NewTimer(f.nextInterval())
	defer timer.Stop()

	for {
		select {
		case <-f.closed:
			return
		case <-timer.C:
			f.tick()
			timer.Reset(f.nextInterval())
		}
	}
}

func (f *Simulated) nextInterval() time.Duration {
	return random.Duration(f.src, f.cfg.MinInterval, f.cfg.MaxInterval)
}

func (f *Simulated) tick() {
	batch := f.generate()

	f.mu.Lock()
	if f.state != StateRunning {
		f.mu.Unlock()
		return
	}
	listeners := append([]Listener(nil), f.listeners...)
	f.mu.Unlock()

	n := f.ticks.Add(1)
	f.logger.Debug("feed_tick", "tick", n, "pairs", len(batch), "listeners", len(listeners))

	for _, l := range listeners {
		l(append([]token.Pair(nil), batch...))
	}
}

func (f *Simulated) generate() []token.Pair {
	n := f.src.Int(f.cfg.MinBatch, f.cfg.MaxBatch)
	batch := make([]token.Pair, 0, n)
	for i := 0; i < n; i++ {
		cat := random.Choice(f.src, token.Categories())
		idx := int(f.nextIndex.Add(1) - 1)
		batch = append(batch, f.synth.Pair(idx, cat))
	}
	return batch
}
