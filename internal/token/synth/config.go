package synth

import (
	"errors"
	"fmt"
	"sort"

	"github.com/zappabad/pulse/internal/token"
)

var (
	ErrUnknownCategory   = errors.New("unknown category")
	ErrInvalidColumnSize = errors.New("column size must be positive")
	ErrOverlappingRanges = errors.New("column index ranges overlap")
)

// ColumnSpec sizes the initial list of one category.
type ColumnSpec struct {
	Category token.Category
	// Size is the number of pairs generated at session start.
	Size int
	// Offset is added to each generated index so ids never collide across categories.
	Offset int
}

// Config holds configuration for the batch generator.
type Config struct {
	Columns []ColumnSpec
}

// DefaultConfig returns a Config with the reference column sizes.
func DefaultConfig() Config {
	return Config{
		Columns: []ColumnSpec{
			{Category: token.CategoryNewPairs, Size: 15, Offset: 0},
			{Category: token.CategoryFinalStretch, Size: 12, Offset: 20},
			{Category: token.CategoryMigrated, Size: 18, Offset: 40},
		},
	}
}

// Validate checks that every category is known, sized, and owns a disjoint index range.
func (c Config) Validate() error {
	specs := append([]ColumnSpec(nil), c.Columns...)
	for _, s := range specs {
		if !s.Category.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, s.Category)
		}
		if s.Size <= 0 {
			return fmt.Errorf("%w: %s has %d", ErrInvalidColumnSize, s.Category, s.Size)
		}
	}

	sort.Slice(specs, func(i, j int) bool { return specs[i].Offset < specs[j].Offset })
	for i := 1; i < len(specs); i++ {
		prev := specs[i-1]
		if specs[i].Offset < prev.Offset+prev.Size {
			return fmt.Errorf("%w: %s and %s", ErrOverlappingRanges, prev.Category, specs[i].Category)
		}
	}
	return nil
}

// EndIndex returns the first index above every initial range.
func (c Config) EndIndex() int {
	end := 0
	for _, s := range c.Columns {
		if e := s.Offset + s.Size; e > end {
			end = e
		}
	}
	return end
}
