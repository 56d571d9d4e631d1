package rush

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/elemental-rush/internal/core"
)

// Strip layout. Each queue slot is a column of cellW characters; the three
// element rows are stacked inside a box.
const (
	cellW     = 8
	playerW   = 7
	stripRows = scenarioCount
	stripW    = playerW + QueueLen*cellW + 2
	stripH    = stripRows + 2
	minW      = 60 // room for the legend line
	minH      = stripH + 6
)

type scenarioStyle struct {
	glyph  rune
	color  core.Color
	bright core.Color
}

var scenarioStyles = map[ScenarioKind]scenarioStyle{
	Water:   {glyph: '≈', color: core.ColorBlue, bright: core.ColorBrightCyan},
	Volcano: {glyph: '▲', color: core.ColorRed, bright: core.ColorOrange},
	Swamp:   {glyph: '░', color: core.ColorGreen, bright: core.ColorBrightGreen},
}

// playerGlyphs is the pose lookup for the player sprite.
var playerGlyphs = map[PlayerState]struct {
	text  string
	color core.Color
}{
	PlayerIdle:   {" o ", core.ColorBrightWhite},
	PlayerAttack: {" o/", core.ColorBrightYellow},
	PlayerShield: {"[o]", core.ColorBrightCyan},
	PlayerJump:   {"\\o/", core.ColorBrightMagenta},
	PlayerDead:   {" x ", core.ColorBrightRed},
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.round == nil {
		return
	}
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Window too small (%dx%d)", minW, minH), core.ColorYellow)
		return
	}

	r := g.round
	box := core.CenteredRect(dst.Width(), dst.Height(), stripW, stripH)

	g.renderHUD(dst, box.X, box.Y-2)
	g.renderStrip(dst, box)
	g.renderPlayer(dst, box)
	if g.cfg.Display.ShowLegend {
		renderLegend(dst, box.Bottom()+1, r.Bindings())
	}

	switch {
	case r.IsGameOver():
		renderOverlay(dst, box, []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", r.Score()),
			deathMessage(r.Cause()),
			"Press Enter to restart",
		}, core.ColorBrightRed)
	case r.Paused():
		renderOverlay(dst, box, []string{"PAUSED", "Press P to resume"}, core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	r := g.round
	dst.DrawTextColor(x, y, "ELEMENTAL RUSH", core.ColorBrightWhite)

	timeColor := core.ColorBrightWhite
	if r.SecondsRemaining() <= 3 {
		timeColor = core.ColorBrightRed
	}
	right := fmt.Sprintf("Score %3d  Time %2d", r.Score(), r.SecondsRemaining())
	dst.DrawTextColor(x+stripW-len(right), y, right, timeColor)
}

// renderStrip draws the queue: slot 0 next to the player, later slots further
// right. The row of the current scenario is tinted in its element color.
func (g *Game) renderStrip(dst *core.Screen, box core.Rect) {
	r := g.round
	current := r.Current()

	frameColor := core.ColorGray
	if r.IsAlive() {
		frameColor = scenarioStyles[current].color
	}
	dst.DrawBox(box, frameColor)

	for row, kind := range Scenarios {
		y := box.Y + 1 + row
		if kind == current && r.IsAlive() {
			dst.DrawHLine(box.X+1, y, stripW-2, '·', scenarioStyles[kind].color)
		}
	}

	for i, kind := range r.Slots() {
		st := scenarioStyles[kind]
		x := box.X + 1 + playerW + i*cellW
		y := box.Y + 1 + int(kind)
		color := st.color
		if i == 0 {
			color = st.bright
			dst.SetCell(x, y, '[', core.ColorBrightWhite)
			dst.SetCell(x+cellW-2, y, ']', core.ColorBrightWhite)
		}
		dst.DrawHLine(x+1, y, cellW-3, st.glyph, color)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, box core.Rect) {
	r := g.round
	pose := playerGlyphs[r.Player()]
	y := box.Y + 1 + int(r.Current())
	if !r.IsAlive() {
		y = box.Y + stripRows
	}
	dst.DrawTextColor(box.X+2, y, pose.text, pose.color)
}

// renderLegend lists the buttons, merging buttons that share an answer.
func renderLegend(dst *core.Screen, y int, bindings []Binding) {
	type entry struct {
		buttons []string
		b       Binding
	}
	var entries []entry
	for _, b := range bindings {
		merged := false
		for i := range entries {
			if entries[i].b.Required == b.Required && entries[i].b.Action == b.Action {
				entries[i].buttons = append(entries[i].buttons, b.Trigger.String())
				merged = true
				break
			}
		}
		if !merged {
			entries = append(entries, entry{buttons: []string{b.Trigger.String()}, b: b})
		}
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("[%s] %s %s", strings.Join(e.buttons, "/"), e.b.Action, e.b.Required)
	}
	dst.DrawTextCentered(y, strings.Join(parts, "  "), core.ColorGray)
	dst.DrawTextCentered(y+1, "P pause  Q quit", core.ColorGray)
}

func renderOverlay(dst *core.Screen, box core.Rect, lines []string, c core.Color) {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	panel := core.CenteredRect(dst.Width(), dst.Height(), w+4, len(lines)+2)
	panel.Y = box.Y + (box.H-panel.H)/2
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, c)
	for i, l := range lines {
		dst.DrawTextCentered(panel.Y+1+i, l, c)
	}
}

func deathMessage(c DeathCause) string {
	switch c {
	case CauseTimeout:
		return "Out of time"
	case CauseWrongAction:
		return "Wrong move"
	default:
		return ""
	}
}
