package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/pulse/internal/pulse/view"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/tui/styles"
)

const cardHeight = 5 // four lines plus a separator

var columnIcons = map[token.Category]string{
	token.CategoryNewPairs:     "⚡",
	token.CategoryFinalStretch: "⏳",
	token.CategoryMigrated:     "✅",
}

var changeIcons = []string{"👤", "🎩", "🎯", "👻", "🔸"}

// ColumnPanel displays the cards of one category.
type ColumnPanel struct {
	category      token.Category
	pairs         []token.Pair
	preset        view.Preset // empty means no sort
	selectedIndex int
	selectedID    string // follows the pair across prepends
	scrollOffset  int
	loading       bool
	spinner       string
	focused       bool
	width         int
	height        int
}

// NewColumnPanel creates a new column panel in the loading state.
func NewColumnPanel(cat token.Category) *ColumnPanel {
	return &ColumnPanel{
		category: cat,
		loading:  true,
	}
}

// Init initializes the panel.
func (p *ColumnPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *ColumnPanel) Update(msg tea.Msg) (*ColumnPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
				p.selectedID = p.pairs[p.selectedIndex].ID
				if p.selectedIndex < p.scrollOffset {
					p.scrollOffset = p.selectedIndex
				}
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.pairs)-1 {
				p.selectedIndex++
				p.selectedID = p.pairs[p.selectedIndex].ID
				if visible := p.visibleCards(); p.selectedIndex >= p.scrollOffset+visible {
					p.scrollOffset = p.selectedIndex - visible + 1
				}
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *ColumnPanel) View() string {
	var content strings.Builder

	content.WriteString(p.renderPresets())
	content.WriteString("\n")

	switch {
	case p.loading:
		content.WriteString(styles.MutedStyle.Render(p.spinner + " Loading pairs..."))
	case len(p.pairs) == 0:
		content.WriteString(styles.MutedStyle.Render("No tokens found"))
	default:
		visible := p.visibleCards()
		start := p.scrollOffset
		end := min(start+visible, len(p.pairs))

		cardWidth := max(p.width-4, 20)
		for i := start; i < end; i++ {
			card := renderCard(p.pairs[i], cardWidth)
			if i == p.selectedIndex && p.focused {
				card = styles.SelectedCardStyle.Width(cardWidth).Render(card)
			}
			content.WriteString(card)
			if i < end-1 {
				content.WriteString("\n")
				content.WriteString(styles.MutedStyle.Render(strings.Repeat("─", cardWidth)))
				content.WriteString("\n")
			}
		}

		if len(p.pairs) > visible {
			content.WriteString("\n")
			content.WriteString(styles.MutedStyle.Render(fmt.Sprintf(" (%d/%d)", p.selectedIndex+1, len(p.pairs))))
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("%s %s  %d", columnIcons[p.category], p.category.Title(), len(p.pairs)), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func (p *ColumnPanel) renderPresets() string {
	parts := make([]string, 0, len(view.Presets()))
	for _, preset := range view.Presets() {
		style := styles.PresetStyle
		if preset == p.preset {
			style = styles.ActivePresetStyle
		}
		parts = append(parts, style.Render(string(preset)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (p *ColumnPanel) visibleCards() int {
	return max((p.height-6)/cardHeight, 1)
}

// renderCard lays out one pair as a four-line card.
func renderCard(pair token.Pair, width int) string {
	tok := pair.Token

	name := tok.Name
	if len([]rune(name)) > 12 {
		name = string([]rune(name)[:12]) + "..."
	}
	featured := ""
	if pair.Featured {
		featured = styles.FeaturedStyle.Render("✓ ")
	}
	left1 := featured + styles.SymbolStyle.Render(tok.Symbol) + " " +
		styles.TickerStyle.Render("#"+tok.Ticker) + " " + styles.MutedStyle.Render(name)
	right1 := styles.LabelStyle.Render("MC ") + styles.MarketCapStyle.Render(styles.FormatPrice(pair.Metrics.MarketCap))

	left2 := styles.AgeStyle.Render(pair.TimeAgo) + " " +
		styles.MutedStyle.Render(tok.ContractAddress) + "  " +
		styles.LabelStyle.Render(fmt.Sprintf("👥 %d  ⇅ %d", pair.Metrics.Holders, pair.Metrics.Transactions))
	if ratio, ok := pair.MigrationRatio(); ok {
		left2 += styles.LabelStyle.Render("  👑 " + ratio.String())
	}
	right2 := styles.LabelStyle.Render("V ") + styles.CardStyle.Render(styles.FormatPrice(pair.Metrics.Volume))

	left3 := renderChanges(pair.PercentageChanges)
	right3 := styles.LabelStyle.Render(fmt.Sprintf("F ≡ %.1f  TX %d", pair.Price, pair.Metrics.Transactions))

	left4 := ""
	if progress, ok := pair.MigrationProgress(); ok {
		left4 = styles.ProgressBar(progress, 10) + styles.LabelStyle.Render(fmt.Sprintf(" %d%%", progress))
	}
	right4 := styles.BuyButtonStyle.Render(fmt.Sprintf("⚡ %s SOL", pair.SolAmount.String()))

	return lipgloss.JoinVertical(lipgloss.Left,
		spread(left1, right1, width),
		spread(left2, right2, width),
		spread(left3, right3, width),
		spread(left4, right4, width),
	)
}

func renderChanges(changes []token.PercentageChange) string {
	parts := make([]string, 0, len(changes))
	for i, c := range changes {
		if i >= len(changeIcons) {
			break
		}
		tag := fmt.Sprintf("%s%.0f%%", changeIcons[i], abs(c.Value))
		if c.Timeframe != "" {
			tag += " " + c.Timeframe
		}
		parts = append(parts, styles.ChangeStyle(c.Value).Render(tag))
	}
	return strings.Join(parts, " ")
}

// spread places left and right on one line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// SetFocus sets the focus state of the panel.
func (p *ColumnPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *ColumnPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetSpinner sets the frame shown while loading.
func (p *ColumnPanel) SetSpinner(frame string) {
	p.spinner = frame
}

// SetPairs replaces the displayed pairs and ends the loading state. The
// selection stays on the same pair when it is still present.
func (p *ColumnPanel) SetPairs(pairs []token.Pair) {
	p.pairs = pairs
	p.loading = false

	if i := p.indexOf(p.selectedID); i >= 0 {
		p.selectedIndex = i
	} else if p.selectedIndex >= len(p.pairs) {
		p.selectedIndex = max(len(p.pairs)-1, 0)
	}
	p.selectedID = ""
	if p.selectedIndex < len(p.pairs) {
		p.selectedID = p.pairs[p.selectedIndex].ID
	}

	if p.scrollOffset > p.selectedIndex {
		p.scrollOffset = p.selectedIndex
	}
	if visible := p.visibleCards(); p.selectedIndex >= p.scrollOffset+visible {
		p.scrollOffset = p.selectedIndex - visible + 1
	}
}

func (p *ColumnPanel) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, pair := range p.pairs {
		if pair.ID == id {
			return i
		}
	}
	return -1
}

// SetPreset selects the display preset; an empty preset disables sorting.
func (p *ColumnPanel) SetPreset(preset view.Preset) {
	p.preset = preset
}

// Preset returns the active preset.
func (p *ColumnPanel) Preset() view.Preset {
	return p.preset
}

// Criterion returns the sort criterion of the active preset.
func (p *ColumnPanel) Criterion() view.Criterion {
	return view.PresetCriterion(p.preset)
}

// Category returns the column's category.
func (p *ColumnPanel) Category() token.Category {
	return p.category
}

// SelectedPair returns the currently selected pair.
func (p *ColumnPanel) SelectedPair() (token.Pair, bool) {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.pairs) {
		return p.pairs[p.selectedIndex], true
	}
	return token.Pair{}, false
}

// BatchMsg is sent when a reconciled batch arrives from the pulse service.
type BatchMsg struct {
	Event view.BatchEvent
}
