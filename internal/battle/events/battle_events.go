package events

import (
	"time"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// Event type constants
const (
	TypeBattleStarted = "battle.started"
	TypeBattleEnded   = "battle.ended"
	TypeTickResolved  = "tick.resolved"
	TypeUnitKilled    = "unit.killed"
)

// BattleStartedEvent is published when a battle is initialized and the
// starting team has been drawn.
type BattleStartedEvent struct {
	BaseEvent
	StartingTeam core.Team
	PlayerUnits  int
	EnemyUnits   int
}

// NewBattleStartedEvent creates a new BattleStartedEvent
func NewBattleStartedEvent(battleID string, startingTeam core.Team, playerUnits, enemyUnits int) *BattleStartedEvent {
	return &BattleStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeBattleStarted,
			Time:      time.Now(),
			Battle:    battleID,
		},
		StartingTeam: startingTeam,
		PlayerUnits:  playerUnits,
		EnemyUnits:   enemyUnits,
	}
}

// BattleEndedEvent is published when a winner is found or the host loop
// gives up.
type BattleEndedEvent struct {
	BaseEvent
	Winner    core.Team
	FinalTurn int
	Duration  time.Duration
}

// NewBattleEndedEvent creates a new BattleEndedEvent
func NewBattleEndedEvent(battleID string, winner core.Team, finalTurn int, duration time.Duration) *BattleEndedEvent {
	return &BattleEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeBattleEnded,
			Time:      time.Now(),
			Battle:    battleID,
		},
		Winner:    winner,
		FinalTurn: finalTurn,
		Duration:  duration,
	}
}

// TickResolvedEvent is published after each resolved tick.
type TickResolvedEvent struct {
	BaseEvent
	TurnNumber int
	ActingTeam core.Team
	Attacks    int
	Moves      int
}

// NewTickResolvedEvent creates a new TickResolvedEvent
func NewTickResolvedEvent(battleID string, turn int, actingTeam core.Team, attacks, moves int) *TickResolvedEvent {
	return &TickResolvedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTickResolved,
			Time:      time.Now(),
			Battle:    battleID,
		},
		TurnNumber: turn,
		ActingTeam: actingTeam,
		Attacks:    attacks,
		Moves:      moves,
	}
}

// UnitKilledEvent is published for every lethal hit.
type UnitKilledEvent struct {
	BaseEvent
	TurnNumber int
	UnitID     string
	UnitTeam   core.Team
	KillerID   string
	Position   core.Position
}

// NewUnitKilledEvent creates a new UnitKilledEvent
func NewUnitKilledEvent(battleID string, turn int, unitID string, unitTeam core.Team, killerID string, position core.Position) *UnitKilledEvent {
	return &UnitKilledEvent{
		BaseEvent: BaseEvent{
			EventType: TypeUnitKilled,
			Time:      time.Now(),
			Battle:    battleID,
		},
		TurnNumber: turn,
		UnitID:     unitID,
		UnitTeam:   unitTeam,
		KillerID:   killerID,
		Position:   position,
	}
}
