package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/registry"
	"github.com/vovakirdan/elemental-rush/internal/storage"
)

// fakeGame ends the round after endAfter steps with a score equal to the
// number of L presses.
type fakeGame struct {
	endAfter int
	steps    int
	resets   int
	state    core.GameState
	replays  []string
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	g.steps++
	if in.Has(core.ActionButtonL) {
		g.state.Score++
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	if g.steps >= g.endAfter {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) State() core.GameState   { return g.state }
func (g *fakeGame) EndCause() string        { return "timeout" }
func (g *fakeGame) PlayedTicks() int        { return g.steps }
func (g *fakeGame) Seed() int64             { return 5 }

func (g *fakeGame) SaveReplay(path string) error {
	g.replays = append(g.replays, path)
	return os.WriteFile(path, []byte("replay"), 0o600)
}

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{endAfter: 1000} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func TestGameModelSavesRoundOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &fakeGame{endAfter: 3}
	m := NewGameModel(game, testConfig(), Options{Store: store, Session: "tester"})
	m.Init()

	m = update(t, m, runeKey("h"))
	for range 10 {
		m = update(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 || scores[0].Score != 1 {
		t.Errorf("scores = %+v", scores)
	}
	rounds, _ := store.RecentRounds("fake", 10)
	if len(rounds) != 1 {
		t.Fatalf("rounds = %+v", rounds)
	}
	if rounds[0].Session != "tester" || rounds[0].Cause != "timeout" || rounds[0].Ticks != 3 || rounds[0].Seed != 5 {
		t.Errorf("round = %+v", rounds[0])
	}
}

func TestGameModelRestart(t *testing.T) {
	game := &fakeGame{endAfter: 1}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{})
	if m.State().GameOver {
		t.Error("Start on game over should restart")
	}
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
}

func TestGameModelStartDuringPlayIsForwarded(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	update(t, m, TickMsg{})
	if game.resets != 1 {
		t.Errorf("Start must not restart a running round")
	}
}

func TestGameModelBack(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToTitle() {
		t.Fatal("back must be ignored while playing")
	}

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg{})
	if !m.State().Paused {
		t.Fatal("expected pause")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToTitle() {
		t.Error("back should work while paused")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&fakeGame{endAfter: 100}, testConfig(), Options{})
	next, cmd := m.Update(runeKey("q"))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelReplayAndScreenshot(t *testing.T) {
	dir := t.TempDir()
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{DataDir: dir})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if len(game.replays) != 1 || !strings.HasPrefix(game.replays[0], filepath.Join(dir, "replays")) {
		t.Errorf("replays = %v", game.replays)
	}
	if !strings.Contains(m.View(), "Replay saved") {
		t.Error("status line missing")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	shots, _ := filepath.Glob(filepath.Join(dir, "screenshots", "fake_*.txt"))
	if len(shots) != 1 {
		t.Fatalf("screenshots = %v", shots)
	}
	data, _ := os.ReadFile(shots[0])
	if !strings.HasPrefix(string(data), "FAKE") {
		t.Errorf("screenshot content = %q", string(data)[:10])
	}
}

func TestGameModelSavingDisabledWithoutDataDir(t *testing.T) {
	game := &fakeGame{endAfter: 100}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlE})
	if len(game.replays) != 0 {
		t.Errorf("replays = %v", game.replays)
	}
	if !strings.Contains(m.View(), "Saving disabled") {
		t.Error("expected saving disabled status")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.Contains(m.View(), "Saving disabled") {
		t.Error("expected saving disabled status for screenshots")
	}
}

func TestTitleModelChoices(t *testing.T) {
	cfg := testConfig()

	m := NewTitleModel("fake", nil, cfg)
	if m.Choice() != ChoiceNone {
		t.Fatal("fresh title has a choice")
	}
	if !strings.Contains(m.View(), "F A K E") {
		t.Error("title not rendered")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(TitleModel).Choice() != ChoicePlay {
		t.Error("enter on first item should play")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(TitleModel).Choice() != ChoiceScores {
		t.Error("second item should open scores")
	}

	next, _ = m.Update(runeKey("q"))
	if next.(TitleModel).Choice() != ChoiceQuit {
		t.Error("q should quit")
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel("fake", testConfig(), Options{})

	step := func(msg tea.Msg) {
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(TickMsg{})
	if s.current != screenTitle {
		t.Fatal("stray tick left the title screen")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.current != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard not rendered")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenTitle {
		t.Fatal("esc should return to the title")
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.current != screenGame {
		t.Fatal("enter should start the game")
	}
	if !strings.Contains(s.View(), "FAKE") {
		t.Error("game not rendered")
	}

	step(runeKey("p"))
	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.current != screenTitle {
		t.Fatal("esc on a paused game should return to the title")
	}

	next, cmd := s.Update(runeKey("q"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q on the title should quit")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(10, 2)
	screen.DrawTextColor(0, 0, "abc", core.ColorRed)
	screen.DrawText(0, 1, "xyz")

	out := RenderScreen(screen)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "xyz") {
		t.Errorf("RenderScreen lost text: %q", out)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
