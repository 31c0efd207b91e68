package battle

import (
	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// ActionCollector decides what every unit of the active team intends to do
// this tick. It reads a frozen snapshot and never mutates anything; the
// resulting intent list is handed to the ActionApplier. Units are visited
// in army registration order (slice order), which is part of the
// observable contract: it determines which stale targets get skipped and
// which movers lose collision ties downstream.
type ActionCollector struct {
	logger zerolog.Logger
}

// NewActionCollector creates a new action collector.
func NewActionCollector(logger zerolog.Logger) *ActionCollector {
	return &ActionCollector{
		logger: logger.With().Str("component", "ActionCollector").Logger(),
	}
}

// Collect produces the intent list for the given team against the snapshot.
func (c *ActionCollector) Collect(team core.Team, units []core.BattleUnit) []core.Action {
	var actions []core.Action

	for i := range units {
		u := &units[i]
		if u.Team != team || !u.Alive() {
			continue
		}
		if action, ok := c.decide(u, units); ok {
			actions = append(actions, action)
			continue
		}
		c.logger.Debug().
			Str("instance_id", u.InstanceID).
			Str("position", u.Position.String()).
			Msg("Unit has no legal move or attack this tick")
	}
	return actions
}

// decide runs the per-unit decision ladder.
func (c *ActionCollector) decide(u *core.BattleUnit, units []core.BattleUnit) (core.Action, bool) {
	// Ranged-forward override: a band target completely preempts the
	// normal move/attack logic, even when the forward cell is free.
	if target := c.forwardBandTarget(u, units); target != nil {
		return core.Action{
			ActorID:    u.InstanceID,
			Type:       core.ActionAttack,
			TargetID:   target.InstanceID,
			AttackKind: core.AttackRanged,
		}, true
	}

	forward := core.NewPosition(u.Position.Row+core.Direction(u.Team), u.Position.Col)
	if core.InBounds(forward) {
		occupant := core.AliveUnitAt(units, forward)
		switch {
		case occupant == nil:
			return core.Action{ActorID: u.InstanceID, Type: core.ActionMove, To: forward}, true
		case occupant.Team != u.Team:
			return core.Action{
				ActorID:    u.InstanceID,
				Type:       core.ActionAttack,
				TargetID:   occupant.InstanceID,
				AttackKind: core.AttackMelee,
			}, true
		default:
			// Ally ahead: trust it to vacate if its own chain leads to
			// open ground, otherwise fall through to targeting.
			visited := map[string]struct{}{u.InstanceID: {}}
			if c.willMoveForward(occupant, units, visited) {
				return core.Action{ActorID: u.InstanceID, Type: core.ActionMove, To: forward}, true
			}
		}
	}

	return c.fallbackAttack(u, units)
}

// forwardBandTarget returns the nearest alive enemy inside the unit's
// forward scan band, or nil. Only ranged-class units scan; the band covers
// the rows strictly ahead up to the unit's range, restricted to the unit's
// own column plus or minus one.
func (c *ActionCollector) forwardBandTarget(u *core.BattleUnit, units []core.BattleUnit) *core.BattleUnit {
	if u.Class != core.ClassRanged {
		return nil
	}

	dir := core.Direction(u.Team)
	var nearest *core.BattleUnit
	nearestDist := 0

	for depth := 1; depth <= u.Range; depth++ {
		row := u.Position.Row + dir*depth
		for col := u.Position.Col - 1; col <= u.Position.Col+1; col++ {
			p := core.NewPosition(row, col)
			if !core.InBounds(p) {
				continue
			}
			occupant := core.AliveUnitAt(units, p)
			if occupant == nil || occupant.Team == u.Team {
				continue
			}
			dist := u.Position.ManhattanTo(occupant.Position)
			if nearest == nil || dist < nearestDist {
				nearest = occupant
				nearestDist = dist
			}
		}
	}
	return nearest
}

// willMoveForward reports whether an ally will vacate its cell this tick:
// it is not about to fire its ranged override, and the cell ahead of it is
// either empty or held by yet another ally that will itself move forward.
// An enemy ahead or the board edge pins it in place. The visited set bounds
// the walk so cyclic ally arrangements terminate.
func (c *ActionCollector) willMoveForward(u *core.BattleUnit, units []core.BattleUnit, visited map[string]struct{}) bool {
	if _, seen := visited[u.InstanceID]; seen {
		return false
	}
	visited[u.InstanceID] = struct{}{}

	if c.forwardBandTarget(u, units) != nil {
		return false
	}

	forward := core.NewPosition(u.Position.Row+core.Direction(u.Team), u.Position.Col)
	if !core.InBounds(forward) {
		return false
	}
	occupant := core.AliveUnitAt(units, forward)
	if occupant == nil {
		return true
	}
	if occupant.Team != u.Team {
		return false
	}
	return c.willMoveForward(occupant, units, visited)
}

// fallbackAttack targets the nearest living enemy by Manhattan distance.
// Melee units (range 1) may only strike a target in their own column;
// lateral adjacency never qualifies.
func (c *ActionCollector) fallbackAttack(u *core.BattleUnit, units []core.BattleUnit) (core.Action, bool) {
	var nearest *core.BattleUnit
	nearestDist := 0

	for i := range units {
		other := &units[i]
		if !other.Alive() || other.Team == u.Team {
			continue
		}
		dist := u.Position.ManhattanTo(other.Position)
		if nearest == nil || dist < nearestDist {
			nearest = other
			nearestDist = dist
		}
	}

	if nearest == nil || nearestDist > u.Range {
		return core.Action{}, false
	}
	if u.Range == 1 && nearest.Position.Col != u.Position.Col {
		return core.Action{}, false
	}

	kind := core.AttackMelee
	if nearestDist > 1 {
		kind = core.AttackRanged
	}
	return core.Action{
		ActorID:    u.InstanceID,
		Type:       core.ActionAttack,
		TargetID:   nearest.InstanceID,
		AttackKind: kind,
	}, true
}
