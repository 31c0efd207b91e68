package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// Timeline is the full ordered record of one battle: the initialized state
// and every tick result. It is plain serializable data with no behavior or
// cyclic references, so a relay can transmit it once and any number of
// remote observers can replay the exact units/hits/winner sequence without
// re-running randomness.
type Timeline struct {
	BattleID     string              `json:"battleId"`
	InitialState battle.BattleState  `json:"initialState"`
	Ticks        []battle.TickResult `json:"ticks"`
}

// New creates an empty timeline for the given initialized battle.
func New(battleID string, initial battle.BattleState) *Timeline {
	return &Timeline{
		BattleID:     battleID,
		InitialState: initial.Clone(),
	}
}

// Append records one tick result.
func (t *Timeline) Append(result battle.TickResult) {
	t.Ticks = append(t.Ticks, result)
}

// Winner returns the recorded winner, or TeamNone for an unfinished
// timeline.
func (t *Timeline) Winner() core.Team {
	if len(t.Ticks) == 0 {
		return core.TeamNone
	}
	return t.Ticks[len(t.Ticks)-1].Winner
}

// Encode writes the timeline as JSON.
func (t *Timeline) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// Decode reads a timeline from JSON.
func Decode(r io.Reader) (*Timeline, error) {
	var t Timeline
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding timeline: %w", err)
	}
	return &t, nil
}

// Save writes the timeline to a file.
func Save(t *Timeline, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating timeline file: %w", err)
	}
	defer f.Close()
	return t.Encode(f)
}

// Load reads a timeline from a file.
func Load(path string) (*Timeline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening timeline file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Verify re-resolves every tick from the recorded initial state and checks
// that the engine reproduces the timeline exactly. A divergence means the
// timeline was corrupted in transit or was produced by a different engine
// build.
func Verify(t *Timeline) error {
	engine := battle.NewEngine()
	state := t.InitialState.Clone()

	for i, recorded := range t.Ticks {
		result, err := engine.AdvanceTick(state.Units, state.CurrentTeam, state.TurnNumber)
		if err != nil {
			return fmt.Errorf("replaying tick %d: %w", i, err)
		}
		if !reflect.DeepEqual(result, recorded) {
			return fmt.Errorf("tick %d diverges from recorded result", i)
		}
		state = result.State()
	}
	return nil
}
