package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/game"
	"github.com/vovakirdan/tui-tictactoe/internal/logging"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

type fakeRecorder struct {
	results []storage.GameResult
	err     error
}

func (f *fakeRecorder) SaveResult(r storage.GameResult) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.results = append(f.results, r)
	return int64(len(f.results)), nil
}

func newTestModel(rec Recorder) Model {
	return NewModel(rec, logging.Discard(), testTheme(), core.DefaultConfig())
}

func send(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func digits(cells string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(cells))
	for _, r := range cells {
		msgs = append(msgs, runeKey(string(r)))
	}
	return msgs
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
)

func TestModelPlacesAtCursor(t *testing.T) {
	m := newTestModel(nil)

	m = send(t, m, keyEnter)

	assert.Equal(t, game.X, m.Game().Current().Board[4].Mark)
	assert.Equal(t, "Next Player: O", m.Game().Status())

	m = send(t, m, keyUp, keyLeft, keyLeft, keyLeft, keyEnter)
	col, row := m.Cursor()
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)
	assert.Equal(t, game.O, m.Game().Current().Board[0].Mark)
}

func TestModelDigitKeysUseReadingOrder(t *testing.T) {
	m := newTestModel(nil)

	m = send(t, m, runeKey("2"))

	assert.Equal(t, 3, m.Game().Current().Selected)
	col, row := m.Cursor()
	assert.Equal(t, 1, col)
	assert.Equal(t, 0, row)
}

func TestModelRecordsWinOnce(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(rec)

	// Cells 0, 1, 4, 2, 8 in reading-order digits.
	m = send(t, m, digits("14579")...)
	require.Equal(t, "Winner: X", m.Game().Status())

	m = send(t, m, digits("369")...)

	require.Len(t, rec.results, 1)
	assert.Equal(t, "X", rec.results[0].Winner)
	assert.Equal(t, []int{0, 1, 4, 2, 8}, rec.results[0].Moves)
	assert.Equal(t, "local", rec.results[0].Source)
}

func TestModelRecordsDraw(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(rec)

	// Cells 0, 1, 2, 4, 3, 5, 7, 6, 8.
	m = send(t, m, digits("147528639")...)

	require.Equal(t, "Draw!", m.Game().Status())
	require.Len(t, rec.results, 1)
	assert.True(t, rec.results[0].Draw())
	assert.Len(t, rec.results[0].Moves, 9)
}

func TestModelRecordsDifferentFinishAfterJump(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(rec)

	// Cells 0, 1, 3, 2, 4, 7, 6: X wins on the left column.
	m = send(t, m, digits("1427563")...)
	require.Len(t, rec.results, 1)

	// Back to before X's last move, then X wins on the diagonal instead.
	m.Game().JumpTo(6)
	m = send(t, m, runeKey("9"))

	require.Equal(t, "Winner: X", m.Game().Status())
	require.Len(t, rec.results, 2)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 7, 6}, rec.results[0].Moves)
	assert.Equal(t, []int{0, 1, 3, 2, 4, 7, 8}, rec.results[1].Moves)
	assert.Equal(t, "X", rec.results[1].Winner)
}

func TestModelRecorderFailureKeepsPlaying(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(rec)

	m = send(t, m, digits("14579")...)

	assert.Equal(t, "Winner: X", m.Game().Status())
	assert.Empty(t, rec.results)
}

func TestModelJumpFromMoveList(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, digits("123")...)

	m = send(t, m, keyTab)
	require.Equal(t, FocusMoves, m.Focus())

	// Selection starts on the viewed step (3); move up to game start.
	m = send(t, m, keyUp, keyUp, keyUp, keyUp, keyEnter)

	assert.Equal(t, 0, m.Game().Step())
	assert.Equal(t, 4, m.Game().Len())
	assert.Equal(t, "Next Player: X", m.Game().Status())

	m = send(t, m, keyTab, keyEnter)
	assert.Equal(t, FocusBoard, m.Focus())
	assert.Equal(t, 2, m.Game().Len(), "a move after jumping discards the future")
}

func TestModelReverseKeepsSelectedStep(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, digits("12")...)
	m = send(t, m, keyTab, keyUp)

	m = send(t, m, runeKey("r"))
	require.True(t, m.Game().Reversed())

	m = send(t, m, keyEnter)
	assert.Equal(t, 1, m.Game().Step())
	assert.Equal(t, 3, m.Game().Len())

	m = send(t, m, runeKey("r"))
	assert.False(t, m.Game().Reversed())
	assert.Equal(t, 1, m.Game().Step())
}

func TestModelReverseFromConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ReverseMoves = true
	m := NewModel(nil, logging.Discard(), testTheme(), cfg)

	assert.True(t, m.Game().Reversed())

	m = send(t, m, runeKey("n"))
	assert.True(t, m.Game().Reversed(), "new game keeps the display order")
}

func TestModelNewGameResetsRecording(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(rec)

	m = send(t, m, digits("14579")...)
	m = send(t, m, runeKey("n"))
	assert.Equal(t, 1, m.Game().Len())

	m = send(t, m, digits("14579")...)
	assert.Len(t, rec.results, 2)
}

func TestModelMoveListSelectionClamped(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, runeKey("1"), keyTab)

	m = send(t, m, keyDown, keyDown, keyDown, keyEnter)

	assert.Equal(t, 1, m.Game().Step())
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(nil)

	next, cmd := m.Update(runeKey("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.View())
}

func TestModelView(t *testing.T) {
	m := newTestModel(nil)
	m = send(t, m, runeKey("5"))

	view := m.View()

	assert.Contains(t, view, "Next Player: O")
	assert.Contains(t, view, "Go to game start")
	assert.Contains(t, view, "Go to move #1: X to (2, 2)")
	assert.Contains(t, view, "[ ] reverse move order")
}
