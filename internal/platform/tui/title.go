package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/elemental-rush/internal/core"
	"github.com/vovakirdan/elemental-rush/internal/registry"
	"github.com/vovakirdan/elemental-rush/internal/storage"
)

// TitleChoice is what the player picked on the title screen.
type TitleChoice int

const (
	ChoiceNone TitleChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

var titleItems = []struct {
	label  string
	choice TitleChoice
}{
	{"Start", ChoicePlay},
	{"High Scores", ChoiceScores},
	{"Quit", ChoiceQuit},
}

// titleKeyMap defines the key bindings for the title screen.
type titleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

func (k titleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scores, k.Quit}
}

func (k titleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultTitleKeyMap() titleKeyMap {
	return titleKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TitleModel is the Bubble Tea model for the title screen. It never quits
// the program itself; the owner reads Choice after each update.
type TitleModel struct {
	title     string
	cursor    int
	width     int
	height    int
	highScore int
	keys      titleKeyMap
	gameKeys  KeyMap
	help      help.Model
	choice    TitleChoice
}

// NewTitleModel creates the title screen for a registered game.
func NewTitleModel(gameID string, store *storage.Store, cfg core.RuntimeConfig) TitleModel {
	title := gameID
	for _, info := range registry.List() {
		if info.ID == gameID {
			title = info.Title
		}
	}

	high := 0
	if store != nil {
		// A failed lookup just shows no best score.
		high, _ = store.HighScore(gameID)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return TitleModel{
		title:     title,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		highScore: high,
		keys:      defaultTitleKeyMap(),
		gameKeys:  DefaultKeyMap(),
		help:      h,
	}
}

// Init initializes the title model.
func (m TitleModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the title screen.
func (m TitleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.choice = ChoiceQuit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(titleItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			m.choice = titleItems[m.cursor].choice
		case key.Matches(msg, m.keys.Scores):
			m.choice = ChoiceScores
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the title screen.
func (m TitleModel) View() string {
	var b strings.Builder

	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render(spaced(strings.ToUpper(m.title))), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(elementBanner(), m.width))
	b.WriteString("\n\n")

	if m.highScore > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best: %d", m.highScore)), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range titleItems {
		line := "  " + item.label + "  "
		if i == m.cursor {
			line = titleStyle.Render("> " + item.label + " <")
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("In game: "+m.help.ShortHelpView(m.gameKeys.ShortHelp())), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected entry, or ChoiceNone while the player is still choosing.
func (m TitleModel) Choice() TitleChoice {
	return m.choice
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

// elementBanner shows the three hazards in their colors.
func elementBanner() string {
	names := []string{"≈ WATER ≈", "▲ VOLCANO ▲", "░ SWAMP ░"}
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = elementStyles[i].Render(n)
	}
	return strings.Join(parts, "   ")
}
