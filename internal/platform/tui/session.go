package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/registry"
)

type sessionScreen int

const (
	screenTitle sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: title -> game -> title, with
// the scoreboard reachable from the title screen. It is the top-level model
// for both local play and SSH sessions.
type SessionModel struct {
	gameID   string
	opts     Options
	config   core.RuntimeConfig
	current  sessionScreen
	title    TitleModel
	game     *GameModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts on the title screen.
func NewSessionModel(gameID string, cfg core.RuntimeConfig, opts Options) SessionModel {
	return SessionModel{
		gameID: gameID,
		opts:   opts,
		config: cfg,
		title:  NewTitleModel(gameID, opts.Store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.title.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateTitle(msg)
	}
}

func (m SessionModel) updateTitle(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a game that just ended
		return m, nil
	}

	newTitle, cmd := m.title.Update(msg)
	if t, ok := newTitle.(TitleModel); ok {
		m.title = t
	}

	switch m.title.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit

	case ChoiceScores:
		m.scores = NewScoreboardModel(m.gameID, m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scores.Init()

	case ChoicePlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			// Only registered games reach the title screen
			if m.opts.Logger != nil {
				m.opts.Logger.Error("cannot create game", "game", m.gameID, "error", err)
			}
			m.quitting = true
			return m, tea.Quit
		}
		// A zero seed gives every round a fresh time-based one
		gm := NewGameModel(game, m.config, m.opts)
		m.game = &gm
		m.current = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToTitle() {
		m.game = nil
		m.backToTitle()
		return m, m.title.Init()
	}

	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scores = sm
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.backToTitle()
		return m, m.title.Init()
	}

	return m, cmd
}

func (m *SessionModel) backToTitle() {
	m.title = NewTitleModel(m.gameID, m.opts.Store, m.config)
	m.current = screenTitle
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.title.View()
	}
}

// RunSession runs the title screen flow as a local program.
func RunSession(gameID string, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
