package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/registry"
	"github.com/vovakirdan/elemental-rush/internal/storage"
)

// Replayer is implemented by games that can save their input history.
type Replayer interface {
	SaveReplay(path string) error
}

// RoundReporter is implemented by games that can describe a finished round.
type RoundReporter interface {
	EndCause() string
	PlayedTicks() int
	Seed() int64
}

// Options configures the side effects of a game session.
type Options struct {
	Store   *storage.Store
	Logger  *log.Logger
	Session string // "local" or the SSH session ID
	DataDir string // Screenshots and replays are written below it; "" disables them
}

// GameModel is the Bubble Tea model for running a game.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	opts        Options
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	quitting    bool
	backToTitle bool
	quitOnBack  bool   // No title screen to return to
	roundSaved  bool   // Whether the current game over has been persisted
	status      string // Last screenshot/replay message, shown on game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Session == "" {
		opts.Session = "local"
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The round keeps running; the renderer adapts to the new size.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.status = m.saveScreenshot()
		return m, nil
	case "ctrl+e":
		m.status = m.saveReplay()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToTitle = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToTitle {
		return m, nil
	}

	// Restart with Start on the game over screen
	if m.inputFrame.Has(core.ActionStart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.status = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the score and the round record. Failures are logged
// and otherwise ignored.
func (m *GameModel) saveRound() {
	if m.opts.Store == nil {
		return
	}

	if m.gameState.Score > 0 {
		if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logWarn("could not save score", err)
		}
	}

	rec := storage.RoundRecord{
		GameID:  m.game.ID(),
		Session: m.opts.Session,
		Score:   m.gameState.Score,
	}
	if rr, ok := m.game.(RoundReporter); ok {
		rec.Cause = rr.EndCause()
		rec.Ticks = rr.PlayedTicks()
		rec.Seed = rr.Seed()
	}
	if _, err := m.opts.Store.SaveRound(rec); err != nil {
		m.logWarn("could not save round", err)
	}
}

func (m *GameModel) logWarn(msg string, err error) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, "game", m.game.ID(), "session", m.opts.Session, "error", err)
	}
}

// outputPath returns dataDir/sub/<game>_<timestamp>.<ext>, or "" when the
// session has no data directory.
func (m *GameModel) outputPath(sub, ext string) string {
	if m.opts.DataDir == "" {
		return ""
	}
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(m.opts.DataDir, sub, fmt.Sprintf("%s_%s.%s", m.game.ID(), timestamp, ext))
}

// saveScreenshot saves the current screen to a text file.
func (m *GameModel) saveScreenshot() string {
	m.game.Render(m.screen)

	path := m.outputPath("screenshots", "txt")
	if path == "" {
		return "Saving disabled"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		m.logWarn("could not save screenshot", err)
		return "Screenshot failed"
	}
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logWarn("could not save screenshot", err)
		return "Screenshot failed"
	}
	return "Screenshot saved: " + path
}

// saveReplay saves the current round's inputs if the game records them.
func (m *GameModel) saveReplay() string {
	r, ok := m.game.(Replayer)
	if !ok {
		return "Replays not supported"
	}
	path := m.outputPath("replays", "yaml")
	if path == "" {
		return "Saving disabled"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		m.logWarn("could not save replay", err)
		return "Replay failed"
	}
	if err := r.SaveReplay(path); err != nil {
		m.logWarn("could not save replay", err)
		return "Replay failed"
	}
	return "Replay saved: " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.status != "" {
		m.screen.DrawTextColor(0, m.screen.Height()-1, m.status, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToTitle returns true if user requested to go back to the title screen.
func (m GameModel) BackToTitle() bool {
	return m.backToTitle
}

// Run starts the Bubble Tea program with a single game and no title screen.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewGameModel(game, cfg, opts)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
