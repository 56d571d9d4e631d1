package core

import (
	"fmt"
	"sort"
	"strings"
)

// Action represents a semantic button press, abstracted from physical keys.
// The platform maps keys to actions; games only ever see actions.
type Action int

const (
	ActionNone    Action = iota
	ActionButtonL        // Left shoulder button
	ActionButtonR        // Right shoulder button
	ActionButtonA        // A face button
	ActionButtonB        // B face button
	ActionStart          // Start - begin a round, restart after game over
	ActionPause          // P - pause/unpause
	ActionBack           // Esc, B - go back to title
	ActionQuit           // Q, Ctrl+C - exit game/session
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionButtonL: "L",
	ActionButtonR: "R",
	ActionButtonA: "A",
	ActionButtonB: "B",
	ActionStart:   "Start",
	ActionPause:   "Pause",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ParseAction converts a name produced by String back into an Action.
// Matching is case-insensitive.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if strings.EqualFold(n, name) {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}

// InputFrame is the set of actions pressed during one simulation tick.
// Only press edges are recorded; held keys do not repeat into later frames.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions set.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// List returns the triggered actions in ascending order.
func (f InputFrame) List() []Action {
	out := make([]Action, 0, len(f.Actions))
	for a, on := range f.Actions {
		if on {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
