// Package random isolates every source of nondeterminism used by the
// synthesizer and the simulated feed behind a seedable interface.
package random

import (
	"errors"
	"math/rand"
	"sync"
	"time"
)

// ErrEmptyChoice is the panic value of Choice when given no items.
var ErrEmptyChoice = errors.New("random: choice from empty sequence")

// Source produces bounded random numbers.
type Source interface {
	// Int returns an integer uniformly in [min, max].
	Int(min, max int) int
	// Float returns a float uniformly in [min, max).
	Float(min, max float64) float64
}

// Rand is a goroutine-safe Source backed by math/rand.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Rand seeded with seed. A zero seed picks a time-based one.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Int returns an integer uniformly in [min, max]. Swapped bounds are reordered.
func (r *Rand) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Intn(max-min+1)
}

// Float returns a float uniformly in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.rng.Float64()*(max-min)
}

// Choice returns a uniformly selected element of items.
// It panics with ErrEmptyChoice when items is empty.
func Choice[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic(ErrEmptyChoice)
	}
	return items[src.Int(0, len(items)-1)]
}

// Duration returns a duration uniformly in [min, max] at millisecond resolution.
func Duration(src Source, min, max time.Duration) time.Duration {
	ms := src.Int(int(min/time.Millisecond), int(max/time.Millisecond))
	return time.Duration(ms) * time.Millisecond
}
