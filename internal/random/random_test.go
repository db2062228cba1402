package random

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBoundsAndEndpoints(t *testing.T) {
	r := New(42)

	seenMin, seenMax := false, false
	for i := 0; i < 10000; i++ {
		v := r.Int(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
		if v == 3 {
			seenMin = true
		}
		if v == 7 {
			seenMax = true
		}
	}
	assert.True(t, seenMin, "lower endpoint never produced")
	assert.True(t, seenMax, "upper endpoint never produced")
}

func TestIntSingleValue(t *testing.T) {
	r := New(1)
	for i := 0; i < 100; i++ {
		if got := r.Int(5, 5); got != 5 {
			t.Fatalf("expected 5, got %d", got)
		}
	}
}

func TestIntSwappedBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Int(10, 2)
		require.True(t, v >= 2 && v <= 10, "value %d out of range", v)
	}
}

func TestFloatHalfOpen(t *testing.T) {
	r := New(99)
	for i := 0; i < 10000; i++ {
		v := r.Float(-50, 50)
		require.GreaterOrEqual(t, v, -50.0)
		require.Less(t, v, 50.0)
	}
}

func TestSeedDeterminism(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
		require.Equal(t, a.Float(0, 1), b.Float(0, 1))
	}
}

func TestChoice(t *testing.T) {
	r := New(5)
	items := []string{"pump", "yMko", "rB6V", "qwrx"}

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[Choice(r, items)] = true
	}
	assert.Len(t, seen, len(items))
}

func TestChoiceEmptyPanics(t *testing.T) {
	r := New(5)
	assert.PanicsWithError(t, ErrEmptyChoice.Error(), func() {
		Choice(r, []int{})
	})
}

func TestDuration(t *testing.T) {
	r := New(11)
	for i := 0; i < 1000; i++ {
		d := Duration(r, 2*time.Second, 5*time.Second)
		require.GreaterOrEqual(t, d, 2*time.Second)
		require.LessOrEqual(t, d, 5*time.Second)
	}
}
