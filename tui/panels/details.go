package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/tui/styles"
)

// DetailsPanel is the overlay shown for a single pair.
type DetailsPanel struct {
	pair   token.Pair
	open   bool
	width  int
	height int
}

// NewDetailsPanel creates a closed details overlay.
func NewDetailsPanel() *DetailsPanel {
	return &DetailsPanel{}
}

// Show opens the overlay for pair.
func (p *DetailsPanel) Show(pair token.Pair) {
	p.pair = pair
	p.open = true
}

// Hide closes the overlay.
func (p *DetailsPanel) Hide() {
	p.open = false
}

// Open reports whether the overlay is visible.
func (p *DetailsPanel) Open() bool {
	return p.open
}

// Pair returns the pair on display.
func (p *DetailsPanel) Pair() token.Pair {
	return p.pair
}

// SetSize sets the available area.
func (p *DetailsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// View renders the overlay.
func (p *DetailsPanel) View() string {
	tok := p.pair.Token
	m := p.pair.Metrics

	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.AppTitleStyle.Render(tok.Name),
		styles.MutedStyle.Render(tok.Symbol+" / SOL"),
		styles.MutedStyle.Render(tok.Mint),
	)

	priceLine := styles.CardStyle.Render(fmt.Sprintf("$%.8f ", p.pair.Price)) +
		styles.ChangeStyle(p.pair.PriceChange).Render(fmt.Sprintf("%.2f%%", p.pair.PriceChange))
	price := section("Current Price", priceLine)

	changes := make([]string, 0, len(p.pair.PercentageChanges))
	for _, c := range p.pair.PercentageChanges {
		tf := c.Timeframe
		if tf == "" {
			tf = "vol"
		}
		changes = append(changes, fmt.Sprintf("%-4s %s", tf, styles.ChangeStyle(c.Value).Render(styles.FormatPercentage(c.Value))))
	}
	priceChanges := section("Price Changes", strings.Join(changes, "\n"))

	rows := []string{
		metricRow("Market Cap", styles.FormatPrice(m.MarketCap)),
		metricRow("24h Volume", styles.FormatPrice(m.Volume)),
		metricRow("Liquidity", styles.FormatPrice(m.Liquidity)),
		metricRow("Holders", fmt.Sprintf("%d", m.Holders)),
		metricRow("Transactions", fmt.Sprintf("%d", m.Transactions)),
	}
	if m.FDV != nil {
		rows = append(rows, metricRow("FDV", styles.FormatPrice(*m.FDV)))
	}
	if progress, ok := p.pair.MigrationProgress(); ok {
		rows = append(rows, metricRow("Progress", fmt.Sprintf("%s %d%%", styles.ProgressBar(progress, 10), progress)))
	}
	if ratio, ok := p.pair.MigrationRatio(); ok {
		rows = append(rows, metricRow("Ratio", ratio.String()))
	}
	metrics := section("Token Metrics", strings.Join(rows, "\n"))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, price, priceChanges),
		"  ",
		metrics,
	)

	footer := styles.BuyButtonStyle.Render(fmt.Sprintf("b Buy %s (%s SOL)", tok.Symbol, p.pair.SolAmount.String())) +
		"  " + styles.MutedStyle.Render("esc close")

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
	modal := styles.ModalStyle.Render(content)

	if p.width <= 0 || p.height <= 0 {
		return modal
	}
	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(styles.BackgroundColor))
}

func section(title, body string) string {
	return styles.SectionStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, styles.HeaderStyle.Render(strings.ToUpper(title)), body),
	)
}

func metricRow(label, value string) string {
	return styles.LabelStyle.Width(14).Render(label) + " " + value
}
