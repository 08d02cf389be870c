package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// scriptedGame ends after a fixed number of ticks.
type scriptedGame struct {
	ticks   int
	endAt   int
	resets  int
	lastIn  core.InputFrame
	wonGame bool
}

func (g *scriptedGame) ID() string    { return "breakout" }
func (g *scriptedGame) Title() string { return "Breakout" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
	g.resets++
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = in.Clone()
	if g.ticks < g.endAt {
		g.ticks++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.SetColored(0, 0, '●', core.ColorRed)
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.ticks * 5, GameOver: g.ticks >= g.endAt, Won: g.wonGame && g.ticks >= g.endAt}
}

func (g *scriptedGame) Summary() core.RunSummary {
	return core.RunSummary{GameID: g.ID(), Score: g.ticks * 5, Won: g.wonGame, BlocksCleared: g.ticks, Ticks: g.ticks}
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestKeyMapperGameActions(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a", runeKey("a"), core.ActionLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionLaunch, false},
		{"p", runeKey("p"), core.ActionPause, false},
		{"r", runeKey("r"), core.ActionRestart, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestKeyMapperMenuActions(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(runeKey("j")); got != MenuActionDown {
		t.Errorf("j = %v, want MenuActionDown", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}); got != MenuActionUp {
		t.Errorf("up = %v, want MenuActionUp", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want MenuActionSelect", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want MenuActionScoreboard", got)
	}
}

func TestRenderScreenKeepsRunes(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '●', core.ColorPink)
	s.SetColored(4, 1, '=', core.Color(200))

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("got %d newlines, want 1", got)
	}
	for _, want := range []string{"ab", "●", "="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAt: 3}

	var m tea.Model = NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.Init()

	for i := 0; i < 10; i++ {
		m, _ = m.Update(TickMsg{})
	}

	runs, err := store.TopRuns("breakout", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if runs[0].Score != 15 || runs[0].Outcome != "loss" || runs[0].Ticks != 3 {
		t.Errorf("unexpected run: %+v", runs[0])
	}

	// Restart, finish again: a second run is stored.
	m, _ = m.Update(runeKey("r"))
	for i := 0; i < 10; i++ {
		m, _ = m.Update(TickMsg{})
	}
	runs, _ = store.TopRuns("breakout", 10)
	if len(runs) != 2 {
		t.Errorf("got %d runs after restart, want 2", len(runs))
	}
	if game.resets < 2 {
		t.Errorf("expected a reset on restart, got %d resets", game.resets)
	}
}

func TestModelForwardsInput(t *testing.T) {
	game := &scriptedGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	m.Init()

	m, _ = m.Update(runeKey("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, _ = m.Update(TickMsg{})

	if !game.lastIn.Has(core.ActionLeft) || !game.lastIn.Has(core.ActionLaunch) {
		t.Errorf("game did not receive Left+Launch: %v", game.lastIn.Actions)
	}

	// Input is cleared between ticks.
	m.Update(TickMsg{})
	if game.lastIn.Has(core.ActionLeft) {
		t.Error("input leaked into the next tick")
	}
}

func TestModelBackToMenu(t *testing.T) {
	game := &scriptedGame{endAt: 100}

	standalone := NewModel(game, nil, core.DefaultConfig())
	next, cmd := standalone.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).WantsMenu() {
		t.Error("esc should request the menu")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program on esc")
	}

	embedded := NewModel(game, nil, core.DefaultConfig())
	embedded.embedded = true
	next, cmd = embedded.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).WantsMenu() || cmd != nil {
		t.Error("embedded model should flag the menu without quitting")
	}
}

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.RunRecord{
		{Score: 105, Outcome: "win", BlocksCleared: 57, BallsLost: 1, Ticks: 3600},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"#1", "105", "win", "57", "1", "60s"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], w)
		}
	}
}

func TestDifficultyModelSelection(t *testing.T) {
	var m tea.Model = NewDifficultyModel(80, 24)
	if _, ok := m.(DifficultyModel).Selected(); ok {
		t.Fatal("nothing selected yet")
	}

	m, _ = m.Update(runeKey("j"))
	m, _ = m.Update(runeKey("j"))
	m, _ = m.Update(runeKey("j"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	preset, ok := m.(DifficultyModel).Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Selected() = (%q, %v), want (hard, true)", preset, ok)
	}

	var back tea.Model = NewDifficultyModel(80, 24)
	back, _ = back.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := back.(DifficultyModel).Selected(); ok {
		t.Error("backing out should not select")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText overflow = %q", got)
	}
}
