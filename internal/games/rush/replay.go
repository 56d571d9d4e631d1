package rush

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/elemental-rush/internal/config"
	"github.com/vovakirdan/elemental-rush/internal/core"
)

// RecordingVersion is bumped whenever the file layout changes.
const RecordingVersion = 1

// Frame is one tick that had at least one action pressed.
type Frame struct {
	Tick    uint64   `yaml:"tick"`
	Actions []string `yaml:"actions,flow"`
}

// Recording is everything needed to re-run a round: seed, settings and the
// ticks on which buttons were pressed.
type Recording struct {
	Version  int               `yaml:"version"`
	Game     string            `yaml:"game"`
	Seed     int64             `yaml:"seed"`
	TickRate int               `yaml:"tick_rate"`
	Config   config.RushConfig `yaml:"config"`
	Ticks    uint64            `yaml:"ticks"`
	Score    int               `yaml:"score"`
	Frames   []Frame           `yaml:"frames"`
}

// Recorder collects the input of a running round.
type Recorder struct {
	rec Recording
}

// NewRecorder starts an empty recording for a round built from runtime and cfg.
func NewRecorder(runtime core.RuntimeConfig, cfg config.RushConfig) *Recorder {
	return &Recorder{rec: Recording{
		Version:  RecordingVersion,
		Game:     ID,
		Seed:     runtime.Seed,
		TickRate: runtime.TickRate,
		Config:   cfg,
	}}
}

// Record stores the frame if anything was pressed on this tick.
func (r *Recorder) Record(tick uint64, in core.InputFrame) {
	if in.Empty() {
		return
	}
	actions := in.List()
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	r.rec.Frames = append(r.rec.Frames, Frame{Tick: tick, Actions: names})
}

// Recording returns a copy of the recording, stamped with the tick count
// and score reached so far.
func (r *Recorder) Recording(ticks uint64, score int) Recording {
	out := r.rec
	out.Ticks = ticks
	out.Score = score
	out.Frames = append([]Frame(nil), r.rec.Frames...)
	return out
}

// SaveRecording writes rec as YAML, creating parent directories.
func SaveRecording(path string, rec Recording) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("replay: marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: create directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// LoadRecording reads a recording written by SaveRecording.
func LoadRecording(path string) (Recording, error) {
	var rec Recording
	data, err := os.ReadFile(path)
	if err != nil {
		return rec, fmt.Errorf("replay: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return rec, fmt.Errorf("replay: parse %s: %w", path, err)
	}
	if rec.Version != RecordingVersion {
		return rec, fmt.Errorf("replay: unsupported version %d", rec.Version)
	}
	if rec.Game != ID {
		return rec, fmt.Errorf("replay: recording is for game %q", rec.Game)
	}
	return rec, nil
}

// Play re-runs a recording on a frame clock and returns the final snapshot.
// Recordings made on the wall clock replay with frame timing, so their
// countdown may differ from the live run.
func Play(rec Recording) (Snapshot, error) {
	frames, err := decodeFrames(rec)
	if err != nil {
		return Snapshot{}, err
	}

	cfg := rec.Config
	cfg.Clock.Kind = config.ClockFrame
	if err := cfg.Validate(); err != nil {
		return Snapshot{}, fmt.Errorf("replay: %w", err)
	}

	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{
		ScreenW:  core.DefaultConfig().ScreenW,
		ScreenH:  core.DefaultConfig().ScreenH,
		TickRate: rec.TickRate,
		Seed:     rec.Seed,
	})

	next := 0
	for tick := uint64(1); tick <= rec.Ticks; tick++ {
		in := core.NewInputFrame()
		if next < len(frames) && frames[next].tick == tick {
			in = frames[next].in
			next++
		}
		g.Step(in)
	}
	return g.Snapshot(), nil
}

type decodedFrame struct {
	tick uint64
	in   core.InputFrame
}

func decodeFrames(rec Recording) ([]decodedFrame, error) {
	out := make([]decodedFrame, 0, len(rec.Frames))
	var prev uint64
	for i, f := range rec.Frames {
		if f.Tick == 0 || f.Tick <= prev || f.Tick > rec.Ticks {
			return nil, fmt.Errorf("replay: frame %d has out of order tick %d", i, f.Tick)
		}
		prev = f.Tick
		in := core.NewInputFrame()
		for _, name := range f.Actions {
			a, err := core.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("replay: frame %d: %w", i, err)
			}
			in.Set(a)
		}
		out = append(out, decodedFrame{tick: f.Tick, in: in})
	}
	return out, nil
}
