package view

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/zappabad/pulse/internal/token"
)

// Criterion selects the display order of a column.
type Criterion int

const (
	CriterionNone Criterion = iota
	CriterionRecency
	CriterionMarketCap
	CriterionVolume
	CriterionPriceChange
)

func (c Criterion) String() string {
	switch c {
	case CriterionNone:
		return "none"
	case CriterionRecency:
		return "recency"
	case CriterionMarketCap:
		return "market cap"
	case CriterionVolume:
		return "volume"
	case CriterionPriceChange:
		return "price change"
	}
	return "unknown"
}

// Preset is a column filter shortcut shown in the column header.
type Preset string

const (
	PresetP1 Preset = "P1"
	PresetP2 Preset = "P2"
	PresetP3 Preset = "P3"
)

// Presets returns the presets in header order.
func Presets() []Preset {
	return []Preset{PresetP1, PresetP2, PresetP3}
}

// PresetCriterion maps a preset to its sort criterion.
func PresetCriterion(p Preset) Criterion {
	switch p {
	case PresetP1:
		return CriterionRecency
	case PresetP2:
		return CriterionMarketCap
	case PresetP3:
		return CriterionVolume
	}
	return CriterionNone
}

// SortForDisplay returns pairs reordered by c. The input is never modified.
// Sorting is stable, so equal keys keep their existing order.
func SortForDisplay(pairs []token.Pair, c Criterion) []token.Pair {
	out := slices.Clone(pairs)

	var cmpFn func(a, b token.Pair) int
	switch c {
	case CriterionRecency:
		cmpFn = func(a, b token.Pair) int {
			sa, _ := ParseAge(a.TimeAgo)
			sb, _ := ParseAge(b.TimeAgo)
			return cmp.Compare(sa, sb)
		}
	case CriterionMarketCap:
		cmpFn = func(a, b token.Pair) int {
			return cmp.Compare(b.Metrics.MarketCap, a.Metrics.MarketCap)
		}
	case CriterionVolume:
		cmpFn = func(a, b token.Pair) int {
			return cmp.Compare(b.Metrics.Volume, a.Metrics.Volume)
		}
	case CriterionPriceChange:
		cmpFn = func(a, b token.Pair) int {
			return cmp.Compare(b.PriceChange, a.PriceChange)
		}
	default:
		return out
	}

	slices.SortStableFunc(out, cmpFn)
	return out
}

// ParseAge converts "{n}s", "{n}m" or "{n}h" into seconds. Anything else
// yields 0 with ok=false; that 0 sorts as most recent.
func ParseAge(s string) (seconds int, ok bool) {
	if len(s) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	switch s[len(s)-1] {
	case 's':
		return n, true
	case 'm':
		return n * 60, true
	case 'h':
		return n * 3600, true
	}
	return 0, false
}
