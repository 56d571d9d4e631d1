package rush

import "github.com/vovakirdan/elemental-rush/internal/core"

// ActionKind is what the player character does when a binding fires.
type ActionKind uint8

const (
	Attack ActionKind = iota
	Shield
	Jump
)

// String returns the display name of the action.
func (a ActionKind) String() string {
	switch a {
	case Attack:
		return "Attack"
	case Shield:
		return "Shield"
	case Jump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// Binding maps a button to the scenario it answers and the action it performs.
type Binding struct {
	Trigger  core.Action
	Required ScenarioKind
	Action   ActionKind
}

// DefaultBindings is the fixed binding table. Order matters: resolution is
// first match in this order. A and B intentionally share Swamp/Shield.
var DefaultBindings = []Binding{
	{Trigger: core.ActionButtonL, Required: Water, Action: Attack},
	{Trigger: core.ActionButtonR, Required: Volcano, Action: Jump},
	{Trigger: core.ActionButtonB, Required: Swamp, Action: Shield},
	{Trigger: core.ActionButtonA, Required: Swamp, Action: Shield},
}

// VerdictKind classifies the outcome of resolving a tick's input.
type VerdictKind uint8

const (
	VerdictNone      VerdictKind = iota // no bound button pressed
	VerdictCorrect                      // first pressed binding matched the scenario
	VerdictIncorrect                    // first pressed binding did not match
)

// Verdict is the resolver's judgment for one tick. The zero value means no judgment.
type Verdict struct {
	Kind    VerdictKind
	Binding Binding
}

// Action returns the performed action. Only meaningful for VerdictCorrect.
func (v Verdict) Action() ActionKind {
	return v.Binding.Action
}

// Resolver judges button edges against the current scenario.
type Resolver struct {
	bindings []Binding
}

// NewResolver creates a resolver over the given ordered binding list.
func NewResolver(bindings []Binding) *Resolver {
	return &Resolver{bindings: append([]Binding(nil), bindings...)}
}

// Bindings returns the resolver's binding table in resolution order.
func (r *Resolver) Bindings() []Binding {
	return append([]Binding(nil), r.bindings...)
}

// Resolve walks the bindings in order and judges the first one whose trigger
// was pressed this tick. Any other pressed buttons are ignored for this tick.
func (r *Resolver) Resolve(in core.InputFrame, current ScenarioKind) Verdict {
	for _, b := range r.bindings {
		if !in.Has(b.Trigger) {
			continue
		}
		if b.Required == current {
			return Verdict{Kind: VerdictCorrect, Binding: b}
		}
		return Verdict{Kind: VerdictIncorrect, Binding: b}
	}
	return Verdict{}
}

// BindingFor returns the first binding that answers the given scenario.
func (r *Resolver) BindingFor(s ScenarioKind) (Binding, bool) {
	for _, b := range r.bindings {
		if b.Required == s {
			return b, true
		}
	}
	return Binding{}, false
}
