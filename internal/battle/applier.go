package battle

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// ActionApplier consumes the intent list produced by the ActionCollector
// and mutates the working snapshot. Attacks apply first, in collection
// order, then moves with collision arbitration. The phase ordering is part
// of the observable contract.
type ActionApplier struct {
	logger   zerolog.Logger
	resolver core.AttackResolver
}

// NewActionApplier creates an action applier using the given attack
// resolution collaborator.
func NewActionApplier(logger zerolog.Logger, resolver core.AttackResolver) *ActionApplier {
	return &ActionApplier{
		logger:   logger.With().Str("component", "ActionApplier").Logger(),
		resolver: resolver,
	}
}

// Apply resolves all actions against the working snapshot in place and
// returns the attack cell keys, the hit log, and the move cell keys.
func (a *ActionApplier) Apply(units []core.BattleUnit, actions []core.Action, turn int) ([]string, []HitEvent, []string) {
	hits, hitEvents := a.applyAttacks(units, actions, turn)
	moves := a.applyMoves(units, actions)
	return hits, hitEvents, moves
}

// applyAttacks resolves attack intents in collection order. Targets are
// re-resolved by instance ID against the current working snapshot: a
// target already killed by an earlier action this tick is silently
// skipped. That is stale-target tolerance, not an error.
func (a *ActionApplier) applyAttacks(units []core.BattleUnit, actions []core.Action, turn int) ([]string, []HitEvent) {
	hits := []string{}
	hitEvents := []HitEvent{}
	seq := 0

	for _, action := range actions {
		if action.Type != core.ActionAttack {
			continue
		}

		attacker := core.UnitByInstanceID(units, action.ActorID)
		target := core.UnitByInstanceID(units, action.TargetID)
		if attacker == nil || !attacker.Alive() {
			continue
		}
		if target == nil || !target.Alive() {
			a.logger.Debug().
				Str("attacker_id", action.ActorID).
				Str("target_id", action.TargetID).
				Msg("Skipping attack on stale target")
			continue
		}

		target.CurrentShield, target.CurrentHP = a.resolver.Resolve(
			attacker.Damage, target.Defense, target.CurrentShield, target.CurrentHP)
		didKill := !target.Alive()

		hits = append(hits, target.Position.Key())
		hitEvents = append(hitEvents, HitEvent{
			ID:               fmt.Sprintf("%d-%s-%s-%d", turn, attacker.InstanceID, target.InstanceID, seq),
			AttackerID:       attacker.InstanceID,
			AttackerTeam:     attacker.Team,
			AttackerPosition: attacker.Position,
			TargetID:         target.InstanceID,
			TargetPosition:   target.Position,
			AttackType:       action.AttackKind,
			DidKill:          didKill,
		})
		seq++

		a.logger.Debug().
			Str("attacker_id", attacker.InstanceID).
			Str("target_id", target.InstanceID).
			Str("attack_kind", string(action.AttackKind)).
			Int("target_hp", target.CurrentHP).
			Bool("did_kill", didKill).
			Msg("Attack applied")
	}
	return hits, hitEvents
}

type moveResolution int

const (
	movePending moveResolution = iota
	moveGranted
	moveDenied
)

// applyMoves arbitrates and applies move intents after all attacks. A move
// commits only if exactly one actor targets its destination and the
// destination is empty or being vacated by a unit whose own move commits.
// Contested or blocked destinations leave every contender in place. All
// committed moves land simultaneously; both the vacated and the occupied
// cell keys are recorded.
func (a *ActionApplier) applyMoves(units []core.BattleUnit, actions []core.Action) []string {
	var moveActions []core.Action
	destCount := make(map[string]int)
	moveByActor := make(map[string]int)

	for _, action := range actions {
		if action.Type != core.ActionMove {
			continue
		}
		moveByActor[action.ActorID] = len(moveActions)
		moveActions = append(moveActions, action)
		destCount[action.To.Key()]++
	}

	resolution := make([]moveResolution, len(moveActions))
	inProgress := make([]bool, len(moveActions))

	var resolve func(i int) bool
	resolve = func(i int) bool {
		switch resolution[i] {
		case moveGranted:
			return true
		case moveDenied:
			return false
		}
		if inProgress[i] {
			// Cycle of mutual vacations; nobody in it moves.
			resolution[i] = moveDenied
			return false
		}
		inProgress[i] = true
		defer func() { inProgress[i] = false }()

		action := moveActions[i]
		if destCount[action.To.Key()] > 1 {
			resolution[i] = moveDenied
			return false
		}

		occupant := core.AliveUnitAt(units, action.To)
		if occupant == nil {
			resolution[i] = moveGranted
			return true
		}
		j, vacating := moveByActor[occupant.InstanceID]
		if vacating && resolve(j) {
			resolution[i] = moveGranted
			return true
		}
		resolution[i] = moveDenied
		return false
	}

	moves := []string{}
	for i := range moveActions {
		if !resolve(i) {
			a.logger.Debug().
				Str("actor_id", moveActions[i].ActorID).
				Str("destination", moveActions[i].To.String()).
				Msg("Move lost collision arbitration")
		}
	}
	for i, action := range moveActions {
		if resolution[i] != moveGranted {
			continue
		}
		mover := core.UnitByInstanceID(units, action.ActorID)
		if mover == nil || !mover.Alive() {
			continue
		}
		moves = append(moves, mover.Position.Key(), action.To.Key())
		mover.Position = action.To
	}
	return moves
}
