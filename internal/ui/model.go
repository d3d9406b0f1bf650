// Package ui is the interactive board: a grid of clickable cards. A mouse
// click or enter on a card runs the selector's click contract; the active
// card is highlighted and recent diagnostics appear below the grid.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quayside/cardboard/internal/card"
	"github.com/quayside/cardboard/internal/diag"
	"github.com/quayside/cardboard/internal/launch"
	"github.com/quayside/cardboard/internal/selector"
)

// Card cell geometry. Every card occupies a fixed cellWidth x cellHeight
// block so mouse hit-testing can invert the layout arithmetic.
const (
	cardInnerWidth  = 24
	cardInnerHeight = 3
	cellWidth       = cardInnerWidth + 2  // border
	cellHeight      = cardInnerHeight + 2 // border
	headerHeight    = 2                   // title line + blank line
	statusLines     = 2
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Width(cardInnerWidth).Height(cardInnerHeight).Padding(0, 1)
	cursorStyle = cardStyle.BorderForeground(lipgloss.Color("39"))
	activeStyle = cardStyle.BorderForeground(lipgloss.Color("212"))
	catStyle    = lipgloss.NewStyle().Bold(true)
	urlStyle    = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("178"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the board TUI.
type Model struct {
	title  string
	cards  []*card.Card
	sel    *selector.Selector
	sink   *diag.MemorySink
	cursor int
	width  int
	height int
	keys   keyMap
	help   help.Model
}

// New binds a selector to the board's cards and builds the TUI model.
func New(title string, cards []*card.Card, opener launch.Opener) Model {
	sink := diag.NewMemorySink()
	sel := selector.New(opener, sink)
	sel.Bind(cards)

	return Model{
		title: title,
		cards: cards,
		sel:   sel,
		sink:  sink,
		width: 80,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-m.columns())
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(m.columns())
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Select):
			if len(m.cards) > 0 {
				m.sel.Click(m.cards[m.cursor])
			}
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := m.cardAt(msg.X, msg.Y); i >= 0 {
				m.cursor = i
				m.sel.Click(m.cards[i])
			}
		}
		return m, nil
	}

	return m, nil
}

// columns returns how many card cells fit per row at the current width.
func (m Model) columns() int {
	cols := m.width / cellWidth
	if cols < 1 {
		cols = 1
	}
	return cols
}

func (m *Model) moveCursor(delta int) {
	if len(m.cards) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.cards) {
		return
	}
	m.cursor = next
}

// cardAt maps a screen position to a card index, or -1 for a miss.
func (m Model) cardAt(x, y int) int {
	if y < headerHeight || len(m.cards) == 0 {
		return -1
	}
	cols := m.columns()
	col := x / cellWidth
	if col >= cols {
		return -1
	}
	row := (y - headerHeight) / cellHeight
	i := row*cols + col
	if i >= len(m.cards) {
		return -1
	}
	return i
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	if len(m.cards) == 0 {
		b.WriteString(emptyStyle.Render("No cards on this board."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderGrid() string {
	cols := m.columns()

	var rows []string
	for start := 0; start < len(m.cards); start += cols {
		end := start + cols
		if end > len(m.cards) {
			end = len(m.cards)
		}

		boxes := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			boxes = append(boxes, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, boxes...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderCard(i int) string {
	c := m.cards[i]

	dest := urlStyle.Render("no url")
	if c.URL != "" {
		dest = urlStyle.Render(truncate(c.URL, cardInnerWidth-2))
	}

	content := catStyle.Render(truncate(c.Category, cardInnerWidth-2)) + "\n" +
		truncate(c.Subcategory, cardInnerWidth-2) + "\n" +
		dest

	style := cardStyle
	switch {
	case c.Active:
		style = activeStyle
	case i == m.cursor:
		style = cursorStyle
	}

	return style.Render(content)
}

// renderStatus shows the most recent diagnostic lines below the grid.
func (m Model) renderStatus() string {
	var b strings.Builder
	for _, r := range m.sink.Tail(statusLines) {
		if r.Level == diag.LevelWarn {
			b.WriteString(warnStyle.Render(r.Message))
		} else {
			b.WriteString(r.Message)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 1 {
		return s[:width]
	}
	return s[:width-1] + "…"
}
