package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/pulse/internal/pulse/view"
	"github.com/zappabad/pulse/internal/random"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/internal/token/synth"
)

func testPairs(cat token.Category, n int) []token.Pair {
	sy := synth.NewSynthesizer(random.New(11), nil)
	return sy.Batch(cat, 0, n)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestColumnPanelLoadingAndEmpty(t *testing.T) {
	p := NewColumnPanel(token.CategoryNewPairs)
	p.SetSize(60, 30)

	assert.Contains(t, p.View(), "Loading")

	p.SetPairs(nil)
	assert.Contains(t, p.View(), "No tokens found")
}

func TestColumnPanelRendersCards(t *testing.T) {
	pairs := testPairs(token.CategoryFinalStretch, 3)

	p := NewColumnPanel(token.CategoryFinalStretch)
	p.SetSize(80, 40)
	p.SetPairs(pairs)

	out := p.View()
	assert.Contains(t, out, "Final Stretch")
	for _, pair := range pairs {
		assert.Contains(t, out, pair.Token.Symbol)
		assert.Contains(t, out, pair.SolAmount.String()+" SOL")
	}
}

func TestColumnPanelSelection(t *testing.T) {
	pairs := testPairs(token.CategoryMigrated, 4)

	p := NewColumnPanel(token.CategoryMigrated)
	p.SetSize(60, 40)
	p.SetPairs(pairs)

	// Unfocused panels ignore keys.
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	got, ok := p.SelectedPair()
	require.True(t, ok)
	assert.Equal(t, pairs[0].ID, got.ID)

	p.SetFocus(true)
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(keyRunes("j"))
	got, _ = p.SelectedPair()
	assert.Equal(t, pairs[2].ID, got.ID)

	p.Update(keyRunes("k"))
	got, _ = p.SelectedPair()
	assert.Equal(t, pairs[1].ID, got.ID)

	for i := 0; i < 10; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	got, _ = p.SelectedPair()
	assert.Equal(t, pairs[3].ID, got.ID)
}

func TestColumnPanelSelectionClampsOnShrink(t *testing.T) {
	pairs := testPairs(token.CategoryNewPairs, 5)

	p := NewColumnPanel(token.CategoryNewPairs)
	p.SetSize(60, 40)
	p.SetFocus(true)
	p.SetPairs(pairs)
	for i := 0; i < 4; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	p.SetPairs(pairs[:2])
	got, ok := p.SelectedPair()
	require.True(t, ok)
	assert.Equal(t, pairs[1].ID, got.ID)

	p.SetPairs(nil)
	_, ok = p.SelectedPair()
	assert.False(t, ok)
}

func TestColumnPanelSelectionFollowsPairOnPrepend(t *testing.T) {
	pairs := testPairs(token.CategoryNewPairs, 6)

	p := NewColumnPanel(token.CategoryNewPairs)
	p.SetSize(60, 40)
	p.SetFocus(true)
	p.SetPairs(pairs[2:])
	p.Update(tea.KeyMsg{Type: tea.KeyDown})

	picked, ok := p.SelectedPair()
	require.True(t, ok)
	assert.Equal(t, pairs[3].ID, picked.ID)

	// Two newer pairs arrive on top.
	p.SetPairs(pairs)
	got, ok := p.SelectedPair()
	require.True(t, ok)
	assert.Equal(t, picked.ID, got.ID)

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	got, _ = p.SelectedPair()
	assert.Equal(t, pairs[2].ID, got.ID)
}

func TestColumnPanelPreset(t *testing.T) {
	p := NewColumnPanel(token.CategoryNewPairs)
	assert.Equal(t, view.CriterionNone, p.Criterion())

	p.SetPreset(view.PresetP2)
	assert.Equal(t, view.PresetP2, p.Preset())
	assert.Equal(t, view.CriterionMarketCap, p.Criterion())
}

func TestDetailsPanel(t *testing.T) {
	pair := testPairs(token.CategoryMigrated, 1)[0]

	d := NewDetailsPanel()
	assert.False(t, d.Open())

	d.Show(pair)
	require.True(t, d.Open())
	assert.Equal(t, pair.ID, d.Pair().ID)

	out := d.View()
	assert.Contains(t, out, pair.Token.Name)
	assert.Contains(t, out, "FDV")
	assert.Contains(t, out, "Ratio")

	d.SetSize(140, 40)
	placed := d.View()
	assert.Equal(t, 40, lipgloss.Height(placed))
	assert.Contains(t, placed, pair.Token.Name)

	d.Hide()
	assert.False(t, d.Open())
}
