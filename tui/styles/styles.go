package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#2563EB") // Blue
	SecondaryColor = lipgloss.Color("#34D399") // Emerald
	AccentColor    = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	UpColor      = lipgloss.Color("#22C55E") // Green
	DownColor    = lipgloss.Color("#EF4444") // Red
	NeutralColor = lipgloss.Color("#9CA3AF") // Gray
	MarketColor  = lipgloss.Color("#60A5FA") // Light blue

	// Background colors
	BackgroundColor      = lipgloss.Color("#0A0A0A")
	PanelBackgroundColor = lipgloss.Color("#0F0F0F")
	CardHoverColor       = lipgloss.Color("#1F2937")
	BorderColor          = lipgloss.Color("#1F2937")
	FocusBorderColor     = lipgloss.Color("#2563EB")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#4B5563")
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	SelectedCardStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(CardHoverColor)

	SymbolStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	TickerStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	AgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MarketCapStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(MarketColor)

	FeaturedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(UpColor)

	BuyButtonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 1)

	PriceUpStyle = lipgloss.NewStyle().
			Foreground(UpColor)

	PriceDownStyle = lipgloss.NewStyle().
			Foreground(DownColor)

	PriceFlatStyle = lipgloss.NewStyle().
			Foreground(NeutralColor)

	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(TextMutedColor)
)

// Preset selector styles
var (
	PresetStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	ActivePresetStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FocusBorderColor).
			Background(PanelBackgroundColor).
			Padding(1, 2)

	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(PanelBackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders the title bar of a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// FormatPrice renders a dollar amount as $1.2M, $3.4K or $12.34.
func FormatPrice(price float64) string {
	switch {
	case price >= 1_000_000:
		return fmt.Sprintf("$%.1fM", price/1_000_000)
	case price >= 1_000:
		return fmt.Sprintf("$%.1fK", price/1_000)
	}
	return fmt.Sprintf("$%.2f", price)
}

// FormatPercentage renders a signed percent with one decimal, e.g. +1.2%.
func FormatPercentage(value float64) string {
	sign := ""
	if value >= 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, value)
}

// ChangeStyle picks the color for a signed move.
func ChangeStyle(value float64) lipgloss.Style {
	switch {
	case value > 0:
		return PriceUpStyle
	case value < 0:
		return PriceDownStyle
	}
	return PriceFlatStyle
}

// ProgressBar renders pct (0-100) as a bar of the given width.
func ProgressBar(pct, width int) string {
	if width <= 0 {
		return ""
	}
	pct = min(max(pct, 0), 100)
	full := pct * width / 100
	return ProgressFullStyle.Render(strings.Repeat("█", full)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-full))
}
