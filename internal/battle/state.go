package battle

import (
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// BattleState is the complete inter-tick state of a battle: every unit
// (corpses included), whose turn is next, and the turn counter.
type BattleState struct {
	Units       []core.BattleUnit `json:"units"`
	CurrentTeam core.Team         `json:"currentTeam"`
	TurnNumber  int               `json:"turnNumber"`
}

// Clone deep-copies the state.
func (s BattleState) Clone() BattleState {
	return BattleState{
		Units:       core.CloneUnits(s.Units),
		CurrentTeam: s.CurrentTeam,
		TurnNumber:  s.TurnNumber,
	}
}

// HitEvent is a log record of one applied attack. It is consumed by the
// rendering collaborator for per-unit animation timing and carries no
// mutable state. IDs are derived from turn, attacker, target and an
// in-tick sequence number, so replaying a timeline reproduces them
// verbatim; consumers must tolerate seeing the same ID twice.
type HitEvent struct {
	ID               string          `json:"id"`
	AttackerID       string          `json:"attackerId"`
	AttackerTeam     core.Team       `json:"attackerTeam"`
	AttackerPosition core.Position   `json:"attackerPosition"`
	TargetID         string          `json:"targetId,omitempty"`
	TargetPosition   core.Position   `json:"targetPosition"`
	AttackType       core.AttackKind `json:"attackType"`
	DidKill          bool            `json:"didKill"`
}

// TickResult is the full output of one resolved tick: a fresh unit
// snapshot, the cell keys touched by attacks and moves, the detailed hit
// log, the winner (if any), and the next team/turn. It is plain data with
// no behavior or cycles so a timeline of results can be serialized once
// and replayed identically by remote observers.
type TickResult struct {
	Units       []core.BattleUnit `json:"units"`
	Hits        []string          `json:"hits"`
	HitEvents   []HitEvent        `json:"hitEvents"`
	Moves       []string          `json:"moves"`
	Winner      core.Team         `json:"winner,omitempty"`
	CurrentTeam core.Team         `json:"currentTeam"`
	TurnNumber  int               `json:"turnNumber"`
}

// State projects the tick result back into a BattleState for the next
// AdvanceTick call.
func (r TickResult) State() BattleState {
	return BattleState{
		Units:       r.Units,
		CurrentTeam: r.CurrentTeam,
		TurnNumber:  r.TurnNumber,
	}
}
