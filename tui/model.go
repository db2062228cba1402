package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zappabad/pulse/internal/pulse/view"
	"github.com/zappabad/pulse/internal/token"
	"github.com/zappabad/pulse/internal/token/synth"
	"github.com/zappabad/pulse/tui/panels"
	"github.com/zappabad/pulse/tui/styles"
)

// Dashboard is the state the TUI renders. *service.PulseService implements it.
type Dashboard interface {
	Start() error
	Ready() bool
	Column(cat token.Category, c view.Criterion) []token.Pair
	Events() <-chan view.BatchEvent
	Buy(ctx context.Context, pairID string) error
}

// Model is the main TUI application model.
type Model struct {
	dash Dashboard

	// Panels
	columns []*panels.ColumnPanel
	details *panels.DetailsPanel
	focused int

	spinner spinner.Model
	help    help.Model
	keys    keyMap

	refresh time.Duration
	now     func() time.Time

	// Window dimensions
	width  int
	height int

	// Status
	statusMsg string
	lastBatch time.Time
	batches   int
	startErr  error
}

// NewModel creates a new TUI model. refresh controls how often the status line is redrawn.
func NewModel(dash Dashboard, refresh time.Duration) *Model {
	if refresh <= 0 {
		refresh = 250 * time.Millisecond
	}

	cols := make([]*panels.ColumnPanel, 0, len(token.Categories()))
	for _, cat := range token.Categories() {
		cols = append(cols, panels.NewColumnPanel(cat))
	}
	cols[0].SetFocus(true)

	h := help.New()
	h.Styles.ShortKey = styles.StatusBarKeyStyle
	h.Styles.ShortDesc = styles.StatusBarDescStyle
	h.Styles.FullKey = styles.StatusBarKeyStyle
	h.Styles.FullDesc = styles.StatusBarDescStyle

	return &Model{
		dash:    dash,
		columns: cols,
		details: panels.NewDetailsPanel(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    h,
		keys:    defaultKeyMap(),
		refresh: refresh,
		now:     time.Now,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.start(),
		m.tickRefresh(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case startedMsg:
		if msg.err != nil {
			m.startErr = msg.err
			m.statusMsg = "❌ " + msg.err.Error()
			break
		}
		m.refreshColumns()
		cmds = append(cmds, m.listenBatches())

	case panels.BatchMsg:
		m.batches++
		m.lastBatch = m.now()
		m.statusMsg = fmt.Sprintf("+%d new pairs", len(msg.Event.Pairs))
		m.refreshColumns()
		cmds = append(cmds, m.listenBatches())

	case buyResultMsg:
		if msg.err != nil {
			m.statusMsg = "❌ Buy failed: " + msg.err.Error()
		} else {
			m.statusMsg = fmt.Sprintf("✓ Buy requested: %s (%s SOL)", msg.symbol, msg.amount)
		}

	case spinner.TickMsg:
		if !m.dash.Ready() && m.startErr == nil {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
			for _, col := range m.columns {
				col.SetSpinner(m.spinner.View())
			}
		}

	case tickMsg:
		cmds = append(cmds, m.tickRefresh())
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case m.details.Open():
		switch {
		case key.Matches(msg, m.keys.Close):
			m.details.Hide()
		case key.Matches(msg, m.keys.Buy):
			return m.buy(m.details.Pair())
		}
		return nil

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focused + 1) % len(m.columns))
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focused + len(m.columns) - 1) % len(m.columns))
	case key.Matches(msg, m.keys.P1):
		m.setPreset(view.PresetP1)
	case key.Matches(msg, m.keys.P2):
		m.setPreset(view.PresetP2)
	case key.Matches(msg, m.keys.P3):
		m.setPreset(view.PresetP3)
	case key.Matches(msg, m.keys.NoSort):
		m.setPreset("")
	case key.Matches(msg, m.keys.Details):
		if pair, ok := m.focusedColumn().SelectedPair(); ok {
			m.details.Show(pair)
		}
	case key.Matches(msg, m.keys.Buy):
		if pair, ok := m.focusedColumn().SelectedPair(); ok {
			return m.buy(pair)
		}
	default:
		col := m.focusedColumn()
		_, cmd := col.Update(msg)
		return cmd
	}
	return nil
}

// View renders the UI.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	title := styles.AppTitleStyle.Render("Pulse")
	statusBar := m.renderStatusBar()
	bodyHeight := m.height - lipgloss.Height(title) - lipgloss.Height(statusBar)

	if m.details.Open() {
		m.details.SetSize(m.width, bodyHeight)
		return lipgloss.JoinVertical(lipgloss.Left, title, m.details.View(), statusBar)
	}

	// Layout:
	// ┌────────────┬───────────────┬────────────┐
	// │ New Pairs  │ Final Stretch │  Migrated  │
	// └────────────┴───────────────┴────────────┘
	colWidth := m.width / len(m.columns)
	views := make([]string, 0, len(m.columns))
	for i, col := range m.columns {
		w := colWidth
		if i == len(m.columns)-1 {
			w = m.width - colWidth*(len(m.columns)-1)
		}
		col.SetSize(w, bodyHeight)
		views = append(views, col.View())
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	return lipgloss.JoinVertical(lipgloss.Left, title, row, statusBar)
}

func (m *Model) renderStatusBar() string {
	var status string
	switch {
	case m.startErr != nil:
		status = m.statusMsg
	case !m.dash.Ready():
		status = m.spinner.View() + " loading"
	default:
		status = fmt.Sprintf("%d batches", m.batches)
		if !m.lastBatch.IsZero() {
			age := int(m.now().Sub(m.lastBatch) / time.Second)
			status += ", last " + synth.FormatAge(age) + " ago"
		}
		if m.statusMsg != "" {
			status += " │ " + m.statusMsg
		}
	}

	return styles.StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.help.View(m.keys), status),
	)
}

func (m *Model) focusedColumn() *panels.ColumnPanel {
	return m.columns[m.focused]
}

func (m *Model) setFocus(i int) {
	m.columns[m.focused].SetFocus(false)
	m.focused = i
	m.columns[m.focused].SetFocus(true)
}

func (m *Model) setPreset(p view.Preset) {
	col := m.focusedColumn()
	col.SetPreset(p)
	if m.dash.Ready() {
		col.SetPairs(m.dash.Column(col.Category(), col.Criterion()))
	}
}

func (m *Model) refreshColumns() {
	if !m.dash.Ready() {
		return
	}
	for _, col := range m.columns {
		col.SetPairs(m.dash.Column(col.Category(), col.Criterion()))
	}
}

func (m *Model) start() tea.Cmd {
	return func() tea.Msg {
		return startedMsg{err: m.dash.Start()}
	}
}

func (m *Model) buy(pair token.Pair) tea.Cmd {
	return func() tea.Msg {
		err := m.dash.Buy(context.Background(), pair.ID)
		return buyResultMsg{symbol: pair.Token.Symbol, amount: pair.SolAmount.String(), err: err}
	}
}

func (m *Model) listenBatches() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.dash.Events()
		if !ok {
			return nil
		}
		return panels.BatchMsg{Event: ev}
	}
}

// tickMsg is sent periodically to refresh the status line.
type tickMsg struct{}

func (m *Model) tickRefresh() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// startedMsg is sent once the dashboard has loaded its initial state.
type startedMsg struct {
	err error
}

// buyResultMsg is sent after a buy request is processed.
type buyResultMsg struct {
	symbol string
	amount string
	err    error
}
