package token

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Category is the column a pair is displayed under.
type Category string

const (
	CategoryNewPairs     Category = "new-pairs"
	CategoryFinalStretch Category = "final-stretch"
	CategoryMigrated     Category = "migrated"
)

// Categories returns all categories in column order.
func Categories() []Category {
	return []Category{CategoryNewPairs, CategoryFinalStretch, CategoryMigrated}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNewPairs, CategoryFinalStretch, CategoryMigrated:
		return true
	}
	return false
}

// Title returns the column heading for c.
func (c Category) Title() string {
	switch c {
	case CategoryNewPairs:
		return "New Pairs"
	case CategoryFinalStretch:
		return "Final Stretch"
	case CategoryMigrated:
		return "Migrated"
	}
	return string(c)
}

// Token is the identity and metadata of an asset.
type Token struct {
	ID              string
	Name            string
	Symbol          string
	Ticker          string
	ImageURL        string
	ContractAddress string // short display form, e.g. "FrGY_pump"
	Mint            string // base58 mint address
	CreatedAt       time.Time
}

// Metrics is a point-in-time snapshot of a pair's market data.
type Metrics struct {
	MarketCap    float64
	Volume       float64
	Liquidity    float64
	Transactions int
	Holders      int
	FDV          *float64 // fully diluted valuation; nil when unknown
}

// PercentageChange is a signed percent move over an optional timeframe.
type PercentageChange struct {
	Value     float64
	Timeframe string
}

// Ratio is a migration ratio rendered as "a/b".
type Ratio struct {
	Num int
	Den int
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Stage carries the category-specific payload of a pair.
// The only implementations are NewPairStage, FinalStretchStage and MigratedStage.
type Stage interface {
	Category() Category
	stage()
}

// NewPairStage has no payload.
type NewPairStage struct{}

// FinalStretchStage is a pair close to migration.
type FinalStretchStage struct {
	Progress int // 0-100
	Ratio    Ratio
}

// MigratedStage is a pair that has completed migration.
type MigratedStage struct {
	Ratio Ratio
}

func (NewPairStage) Category() Category      { return CategoryNewPairs }
func (FinalStretchStage) Category() Category { return CategoryFinalStretch }
func (MigratedStage) Category() Category     { return CategoryMigrated }

func (NewPairStage) stage()      {}
func (FinalStretchStage) stage() {}
func (MigratedStage) stage()     {}

// Pair is the aggregate record that drives one card.
type Pair struct {
	ID                string
	Token             Token
	Metrics           Metrics
	Price             float64
	PriceChange       float64
	PercentageChanges []PercentageChange
	TimeAgo           string
	Category          Category
	SolAmount         decimal.Decimal
	Featured          bool
	Stage             Stage
}

// MigrationProgress returns the progress of a final-stretch pair.
func (p Pair) MigrationProgress() (int, bool) {
	if s, ok := p.Stage.(FinalStretchStage); ok {
		return s.Progress, true
	}
	return 0, false
}

// MigrationRatio returns the ratio of a final-stretch or migrated pair.
func (p Pair) MigrationRatio() (Ratio, bool) {
	switch s := p.Stage.(type) {
	case FinalStretchStage:
		return s.Ratio, true
	case MigratedStage:
		return s.Ratio, true
	}
	return Ratio{}, false
}

// Columns holds the per-category lists.
type Columns map[Category][]Pair

// NewColumns returns Columns with an empty list for every category.
func NewColumns() Columns {
	c := make(Columns, 3)
	for _, cat := range Categories() {
		c[cat] = []Pair{}
	}
	return c
}

// Clone returns a copy whose slices do not alias c.
func (c Columns) Clone() Columns {
	out := make(Columns, len(c))
	for cat, pairs := range c {
		out[cat] = append([]Pair(nil), pairs...)
	}
	return out
}

// Find looks up a pair by id across all columns.
func (c Columns) Find(id string) (Pair, bool) {
	for _, pairs := range c {
		for _, p := range pairs {
			if p.ID == id {
				return p, true
			}
		}
	}
	return Pair{}, false
}
