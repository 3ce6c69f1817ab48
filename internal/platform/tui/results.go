package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// ResultSource reads the results ledger. *storage.Store satisfies it.
type ResultSource interface {
	RecentResults(limit int) ([]storage.GameResult, error)
	Tally() (storage.Tally, error)
}

// ResultsKeyMap defines the key bindings for the results screen.
type ResultsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ResultsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ResultsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultResultsKeyMap returns default key bindings.
func DefaultResultsKeyMap() ResultsKeyMap {
	return ResultsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ResultsModel is the Bubble Tea model for browsing recorded games.
// The final board of the selected game is replayed beside the table.
type ResultsModel struct {
	results  []storage.GameResult
	tally    storage.Tally
	table    table.Model
	help     help.Model
	keys     ResultsKeyMap
	theme    Theme
	screen   *core.Screen
	height   int
	quitting bool
}

// NewResultsModel loads up to limit results from src.
func NewResultsModel(src ResultSource, limit int, theme Theme, height int) (ResultsModel, error) {
	results, err := src.RecentResults(limit)
	if err != nil {
		return ResultsModel{}, err
	}
	tally, err := src.Tally()
	if err != nil {
		return ResultsModel{}, err
	}

	m := ResultsModel{
		results: results,
		tally:   tally,
		help:    help.New(),
		keys:    DefaultResultsKeyMap(),
		theme:   theme,
		screen:  core.NewScreen(boardWidth, boardHeight),
		height:  height,
	}
	m.table = m.createTable()
	return m, nil
}

// createTable creates the results table sized to the terminal height.
func (m ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Result", Width: 9},
		{Title: "Moves", Width: 6},
		{Title: "Source", Width: 16},
		{Title: "Date", Width: 14},
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			ResultLabel(r),
			fmt.Sprintf("%d", len(r.Moves)),
			r.Source,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	height := m.height - 8 // Leave room for title, tally and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ResultLabel describes the outcome of r, e.g. "X wins" or "Draw".
func ResultLabel(r storage.GameResult) string {
	if r.Draw() {
		return "Draw"
	}
	return r.Winner + " wins"
}

// TallyLine summarizes a tally on one line.
func TallyLine(t storage.Tally) string {
	return fmt.Sprintf("Games: %d   X wins: %d   O wins: %d   Draws: %d", t.Total(), t.XWins, t.OWins, t.Draws)
}

// Replay rebuilds a game from recorded moves. Cells outside the board or
// rejected by the rules stop the replay at the last legal move.
func Replay(moves []int) *game.State {
	s := game.New()
	for _, c := range moves {
		if !game.InRange(c) || !s.ApplyMove(c) {
			break
		}
	}
	return s
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Selected returns the highlighted result, if any.
func (m ResultsModel) Selected() (storage.GameResult, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.results) {
		return storage.GameResult{}, false
	}
	return m.results[i], true
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("RESULTS"))
	b.WriteString("\n")
	b.WriteString(TallyLine(m.tally))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(m.theme.Dim.Render("No games recorded yet. Run 'tictactoe play' to finish one."))
		b.WriteString("\n")
	} else {
		preview := ""
		if r, ok := m.Selected(); ok {
			m.screen.Clear()
			DrawBoard(m.screen, Replay(r.Moves).Current().Board, 0, 0, false)
			preview = RenderScreen(m.screen, m.theme)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.table.View(), "   ", preview))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// RunResults starts the Bubble Tea program for the results screen.
func RunResults(src ResultSource, limit int, theme Theme, height int) error {
	model, err := NewResultsModel(src, limit, theme, height)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
