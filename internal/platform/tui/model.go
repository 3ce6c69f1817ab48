// Package tui provides the Bubble Tea integration: the interactive game session,
// the results browser, and the Wish SSH server that hosts sessions remotely.
package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// Recorder persists finished games. *storage.Store satisfies it.
type Recorder interface {
	SaveResult(r storage.GameResult) (int64, error)
}

// Focus selects which panel receives directional keys.
type Focus int

const (
	FocusBoard Focus = iota
	FocusMoves
)

// Model is the Bubble Tea model for one game session. It owns the session's
// game state and is the only code that mutates it.
type Model struct {
	game      *game.State
	screen    *core.Screen
	recorder  Recorder
	logger    *log.Logger
	config    core.RuntimeConfig
	theme     Theme
	keys      GameKeyMap
	keyMapper *KeyMapper
	help      help.Model

	cursorCol  int
	cursorRow  int
	focus      Focus
	listCursor int   // Display position in the move list
	recorded   []int // Moves of the last recorded game, nil if none
	quitting   bool
}

// NewModel creates a session model. recorder may be nil to skip recording.
func NewModel(recorder Recorder, logger *log.Logger, theme Theme, cfg core.RuntimeConfig) Model {
	keys := DefaultGameKeyMap()
	m := Model{
		game:      game.New(),
		screen:    core.NewScreen(boardWidth, boardHeight),
		recorder:  recorder,
		logger:    logger,
		config:    cfg,
		theme:     theme,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      help.New(),
		cursorCol: 1,
		cursorRow: 1,
	}
	if cfg.ReverseMoves {
		m.game.ToggleReverseDisplay()
	}
	return m
}

// Game returns the session's game state.
func (m Model) Game() *game.State {
	return m.game
}

// Focus returns the panel receiving directional keys.
func (m Model) Focus() Focus {
	return m.focus
}

// Cursor returns the board cursor column and row.
func (m Model) Cursor() (col, row int) {
	return m.cursorCol, m.cursorRow
}

// Init starts the session. Nothing runs in the background.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "source", m.config.Source)
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if cell, ok := m.keyMapper.CellForKey(msg); ok {
		m.cursorCol, m.cursorRow = game.Coords(cell)
		m.applyMove(cell)
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session quit", "source", m.config.Source, "moves", m.game.Len()-1)
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionSwitchFocus:
		if m.focus == FocusBoard {
			m.focus = FocusMoves
			m.listCursor = m.displayPosition(m.game.Step())
		} else {
			m.focus = FocusBoard
		}

	case core.ActionToggleReverse:
		step := m.game.Moves()[m.listCursor].Step
		m.game.ToggleReverseDisplay()
		m.listCursor = m.displayPosition(step)
		m.logger.Debug("move order toggled", "reversed", m.game.Reversed())

	case core.ActionNewGame:
		reversed := m.game.Reversed()
		m.game = game.New()
		if reversed {
			m.game.ToggleReverseDisplay()
		}
		m.recorded = nil
		m.listCursor = 0
		m.logger.Info("game started", "source", m.config.Source)

	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.move(action)

	case core.ActionConfirm:
		if m.focus == FocusMoves {
			step := m.game.Moves()[m.listCursor].Step
			m.game.JumpTo(step)
			m.logger.Debug("jumped", "step", step)
		} else {
			m.applyMove(game.Index(m.cursorCol, m.cursorRow))
		}
	}

	return m, nil
}

// move shifts the board cursor or the move list selection.
func (m *Model) move(action core.Action) {
	dx, dy := action.Delta()
	if m.focus == FocusMoves {
		m.listCursor = core.Clamp(m.listCursor+dy, 0, m.game.Len()-1)
		return
	}
	m.cursorCol = core.Clamp(m.cursorCol+dx, 0, game.Side-1)
	m.cursorRow = core.Clamp(m.cursorRow+dy, 0, game.Side-1)
}

// applyMove plays cell and records the game when it finishes a line of play
// that differs from the last one recorded.
func (m *Model) applyMove(cell int) {
	if !m.game.ApplyMove(cell) {
		m.logger.Debug("move ignored", "cell", cell, "status", m.game.Status())
		return
	}
	m.logger.Debug("move applied", "cell", cell, "step", m.game.Step())
	m.listCursor = m.displayPosition(m.game.Step())

	if !m.game.Finished() {
		return
	}
	// An accepted move is always the newest snapshot, so the viewed line is the finished game.
	moves := m.game.MoveList()
	if slices.Equal(moves, m.recorded) {
		return
	}
	m.recorded = moves
	m.record(moves)
}

// record saves a finished line of play. Failures are logged and the session continues.
func (m *Model) record(moves []int) {
	result := storage.GameResult{
		Moves:  moves,
		Source: m.config.Source,
	}
	if res, won := m.game.Outcome(); won {
		result.Winner = res.Mark.String()
	}
	m.logger.Info("game finished", "status", m.game.Status(), "moves", len(result.Moves), "source", result.Source)

	if m.recorder == nil {
		return
	}
	if _, err := m.recorder.SaveResult(result); err != nil {
		m.logger.Warn("could not record result", "error", err)
	}
}

// displayPosition returns where step appears in the move list.
func (m Model) displayPosition(step int) int {
	if m.game.Reversed() {
		return m.game.Len() - 1 - step
	}
	return step
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	board := m.game.Current().Board
	if m.focus == FocusBoard && m.game.Phase() == game.PhaseInProgress {
		DrawHints(m.screen, board)
	}
	DrawBoard(m.screen, board, m.cursorCol, m.cursorRow, m.focus == FocusBoard)
	grid := RenderScreen(m.screen, m.theme)

	selected := -1
	if m.focus == FocusMoves {
		selected = m.listCursor
	}

	var info strings.Builder
	info.WriteString(m.theme.Status.Render(m.game.Status()))
	info.WriteString("\n\n")
	info.WriteString(strings.Join(MoveLines(m.game.Moves(), selected, m.theme), "\n"))
	info.WriteString("\n\n")
	info.WriteString(m.theme.Dim.Render(ReverseToggle(m.game.Reversed())))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render("  T I C - T A C - T O E"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, "  ", grid, "    ", info.String()))
	b.WriteString("\n\n  ")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Run starts the Bubble Tea program for a local session.
func Run(recorder Recorder, logger *log.Logger, theme Theme, cfg core.RuntimeConfig) error {
	model := NewModel(recorder, logger, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
