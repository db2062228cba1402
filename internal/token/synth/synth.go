// Package synth composes random fields into token pairs and builds the
// initial per-category state.
package synth

import (
	"fmt"
	"time"

	"github.com/mr-tron/base58"
	"github.com/shopspring/decimal"

	"github.com/zappabad/pulse/internal/random"
	"github.com/zappabad/pulse/internal/token"
)

const (
	maxAgeSeconds = 86400
	mintBytes     = 32
)

// Synthesizer generates token pairs from a random source.
type Synthesizer struct {
	src random.Source
	now func() time.Time
}

// NewSynthesizer creates a Synthesizer. A nil clock defaults to time.Now.
func NewSynthesizer(src random.Source, now func() time.Time) *Synthesizer {
	if now == nil {
		now = time.Now
	}
	return &Synthesizer{src: src, now: now}
}

// Token derives the token for index. Name, symbol and contract prefix depend
// only on index; everything else is random.
func (s *Synthesizer) Token(index int) token.Token {
	symbol := pick(tokenSymbols, index)
	return token.Token{
		ID:              fmt.Sprintf("token-%d", index),
		Name:            pick(tokenNames, index),
		Symbol:          symbol,
		Ticker:          symbol,
		ImageURL:        fmt.Sprintf("https://api.dicebear.com/7.x/shapes/svg?seed=%d&backgroundColor=1e293b", index),
		ContractAddress: pick(contractPrefixes, index) + "_" + random.Choice(s.src, contractSuffixes),
		Mint:            s.mint(),
		CreatedAt:       s.now().Add(-time.Duration(s.src.Int(0, maxAgeSeconds*1000-1)) * time.Millisecond),
	}
}

// Pair synthesizes a complete pair. An unknown category is treated as new-pairs.
func (s *Synthesizer) Pair(index int, cat token.Category) token.Pair {
	if !cat.Valid() {
		cat = token.CategoryNewPairs
	}

	marketCap := s.src.Float(1000, 500000)
	metrics := token.Metrics{
		MarketCap:    marketCap,
		Volume:       s.src.Float(0, marketCap*0.3),
		Liquidity:    s.src.Float(0, 10000),
		Transactions: s.src.Int(0, 1000),
		Holders:      s.src.Int(0, 500),
	}

	stage := s.stage(cat)
	if cat == token.CategoryMigrated {
		fdv := marketCap * s.src.Float(1, 3)
		metrics.FDV = &fdv
	}

	return token.Pair{
		ID:                fmt.Sprintf("pair-%s-%d", cat, index),
		Token:             s.Token(index),
		Metrics:           metrics,
		Price:             s.src.Float(0, 1000),
		PriceChange:       s.src.Float(-50, 100),
		PercentageChanges: s.percentageChanges(),
		TimeAgo:           FormatAge(s.src.Int(0, maxAgeSeconds)),
		Category:          cat,
		SolAmount:         decimal.RequireFromString(random.Choice(s.src, solAmounts)),
		Featured:          s.src.Float(0, 1) > 0.8,
		Stage:             stage,
	}
}

// Batch synthesizes n pairs with indices start..start+n-1.
func (s *Synthesizer) Batch(cat token.Category, start, n int) []token.Pair {
	pairs := make([]token.Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, s.Pair(start+i, cat))
	}
	return pairs
}

// InitialState builds the baseline columns for a session.
func (s *Synthesizer) InitialState(cfg Config) (token.Columns, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cols := token.NewColumns()
	for _, col := range cfg.Columns {
		cols[col.Category] = s.Batch(col.Category, col.Offset, col.Size)
	}
	return cols, nil
}

func (s *Synthesizer) stage(cat token.Category) token.Stage {
	switch cat {
	case token.CategoryFinalStretch:
		return token.FinalStretchStage{
			Progress: s.src.Int(50, 99),
			Ratio:    token.Ratio{Num: s.src.Int(10, 80), Den: s.src.Int(100, 1000)},
		}
	case token.CategoryMigrated:
		return token.MigratedStage{
			Ratio: token.Ratio{Num: s.src.Int(1, 5), Den: s.src.Int(1, 5)},
		}
	}
	return token.NewPairStage{}
}

func (s *Synthesizer) percentageChanges() []token.PercentageChange {
	n := s.src.Int(2, len(changeSlots))
	changes := make([]token.PercentageChange, 0, n)
	for _, slot := range changeSlots[:n] {
		changes = append(changes, token.PercentageChange{
			Value:     s.src.Float(slot.min, slot.max),
			Timeframe: slot.timeframe,
		})
	}
	return changes
}

func (s *Synthesizer) mint() string {
	buf := make([]byte, mintBytes)
	for i := range buf {
		buf[i] = byte(s.src.Int(0, 255))
	}
	return base58.Encode(buf)
}

// FormatAge renders seconds as "Ns", "Nm" or "Nh" using floor division.
func FormatAge(seconds int) string {
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm", seconds/60)
	default:
		return fmt.Sprintf("%dh", seconds/3600)
	}
}
