package rush

import "math/rand"

// ScenarioKind is one of the hazards the player must react to.
type ScenarioKind uint8

const (
	Water ScenarioKind = iota
	Volcano
	Swamp
)

// scenarioCount is the size of the alphabet drawn by RandomSource.
const scenarioCount = 3

// Scenarios lists every kind in draw order: index i of a uniform draw maps to Scenarios[i].
var Scenarios = [scenarioCount]ScenarioKind{Water, Volcano, Swamp}

// String returns the display name of the scenario.
func (s ScenarioKind) String() string {
	switch s {
	case Water:
		return "Water"
	case Volcano:
		return "Volcano"
	case Swamp:
		return "Swamp"
	default:
		return "Unknown"
	}
}

// RandomSource yields uniform indices in [0, 3), independent across calls.
type RandomSource interface {
	Uniform3() int
}

type mathRandSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a RandomSource backed by math/rand with the given seed.
func NewRandomSource(seed int64) RandomSource {
	return &mathRandSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *mathRandSource) Uniform3() int {
	return s.rng.Intn(scenarioCount)
}

// QueueLen is the number of scenarios visible in the pipeline.
const QueueLen = 4

// Queue is the rolling pipeline of upcoming scenarios.
// Slot 0 is the one the player must resolve now; slot QueueLen-1 is the farthest.
type Queue struct {
	slots [QueueLen]ScenarioKind
	rng   RandomSource
}

// NewQueue creates a queue drawing from rng. All slots start as Water until
// Randomize is called.
func NewQueue(rng RandomSource) *Queue {
	return &Queue{rng: rng}
}

func (q *Queue) draw() ScenarioKind {
	return Scenarios[q.rng.Uniform3()%scenarioCount]
}

// Randomize replaces every slot with an independent draw, nearest slot first.
// Only call it at round start: it invalidates the slot being resolved.
func (q *Queue) Randomize() {
	for i := range q.slots {
		q.slots[i] = q.draw()
	}
}

// Advance consumes the current slot. The remaining slots move one step
// closer and a single fresh draw enters at the far end.
func (q *Queue) Advance() {
	copy(q.slots[:], q.slots[1:])
	q.slots[QueueLen-1] = q.draw()
}

// Current returns the scenario the player must act against right now.
func (q *Queue) Current() ScenarioKind {
	return q.slots[0]
}

// Slots returns a copy of the pipeline, nearest first.
func (q *Queue) Slots() [QueueLen]ScenarioKind {
	return q.slots
}
