package view

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/pulse/internal/random"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/internal/token/synth"
)

func samplePairs(t *testing.T) []token.Pair {
	t.Helper()
	s := synth.NewSynthesizer(random.New(17), nil)
	ps := s.Batch(token.CategoryNewPairs, 0, 30)
	// Force ties so stability is observable.
	ps[3].Metrics.MarketCap = ps[7].Metrics.MarketCap
	ps[3].TimeAgo, ps[7].TimeAgo = "5m", "5m"
	ps[9].TimeAgo = "bogus"
	return ps
}

func allCriteria() []Criterion {
	return []Criterion{CriterionNone, CriterionRecency, CriterionMarketCap, CriterionVolume, CriterionPriceChange}
}

func TestSortIsPermutation(t *testing.T) {
	ps := samplePairs(t)
	want := ids(ps)
	sort.Strings(want)

	for _, c := range allCriteria() {
		got := ids(SortForDisplay(ps, c))
		sort.Strings(got)
		assert.Equal(t, want, got, "criterion %s", c)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	ps := samplePairs(t)
	before := ids(ps)
	for _, c := range allCriteria() {
		SortForDisplay(ps, c)
		require.Equal(t, before, ids(ps))
	}
}

func TestSortIdempotent(t *testing.T) {
	ps := samplePairs(t)
	for _, c := range allCriteria() {
		once := SortForDisplay(ps, c)
		twice := SortForDisplay(once, c)
		assert.Equal(t, ids(once), ids(twice), "criterion %s", c)
	}
}

func TestSortOrdering(t *testing.T) {
	ps := samplePairs(t)

	byCap := SortForDisplay(ps, CriterionMarketCap)
	for i := 1; i < len(byCap); i++ {
		assert.GreaterOrEqual(t, byCap[i-1].Metrics.MarketCap, byCap[i].Metrics.MarketCap)
	}

	byVol := SortForDisplay(ps, CriterionVolume)
	for i := 1; i < len(byVol); i++ {
		assert.GreaterOrEqual(t, byVol[i-1].Metrics.Volume, byVol[i].Metrics.Volume)
	}

	byChange := SortForDisplay(ps, CriterionPriceChange)
	for i := 1; i < len(byChange); i++ {
		assert.GreaterOrEqual(t, byChange[i-1].PriceChange, byChange[i].PriceChange)
	}

	byAge := SortForDisplay(ps, CriterionRecency)
	for i := 1; i < len(byAge); i++ {
		a, _ := ParseAge(byAge[i-1].TimeAgo)
		b, _ := ParseAge(byAge[i].TimeAgo)
		assert.LessOrEqual(t, a, b)
	}
}

func TestSortStableForTies(t *testing.T) {
	ps := []token.Pair{
		{ID: "a", TimeAgo: "5m"},
		{ID: "b", TimeAgo: "300s"},
		{ID: "c", TimeAgo: "1h"},
		{ID: "d", TimeAgo: "5m"},
	}
	got := SortForDisplay(ps, CriterionRecency)
	assert.Equal(t, []string{"a", "b", "d", "c"}, ids(got))
}

func TestSortNoneKeepsOrder(t *testing.T) {
	ps := samplePairs(t)
	assert.Equal(t, ids(ps), ids(SortForDisplay(ps, CriterionNone)))
}

func TestParseAge(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"45s", 45, true},
		{"3m", 180, true},
		{"2h", 7200, true},
		{"0s", 0, true},
		{"bogus", 0, false},
		{"", 0, false},
		{"h", 0, false},
		{"5d", 0, false},
		{"-5s", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseAge(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseAge(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestMalformedAgeSortsAsMostRecent(t *testing.T) {
	ps := []token.Pair{
		{ID: "old", TimeAgo: "3h"},
		{ID: "bad", TimeAgo: "bogus"},
		{ID: "new", TimeAgo: "10s"},
	}
	assert.Equal(t, []string{"bad", "new", "old"}, ids(SortForDisplay(ps, CriterionRecency)))
}

func TestPresetCriterion(t *testing.T) {
	assert.Equal(t, CriterionRecency, PresetCriterion(PresetP1))
	assert.Equal(t, CriterionMarketCap, PresetCriterion(PresetP2))
	assert.Equal(t, CriterionVolume, PresetCriterion(PresetP3))
	assert.Equal(t, CriterionNone, PresetCriterion("P9"))
	assert.Len(t, Presets(), 3)
}
