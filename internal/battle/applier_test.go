package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/testutil"
)

func newTestApplier() *ActionApplier {
	return NewActionApplier(testutil.NopLogger(), core.NewStandardAttackResolver())
}

func attackAction(actor, target string, kind core.AttackKind) core.Action {
	return core.Action{ActorID: actor, Type: core.ActionAttack, TargetID: target, AttackKind: kind}
}

func moveAction(actor string, row, col int) core.Action {
	return core.Action{ActorID: actor, Type: core.ActionMove, To: core.NewPosition(row, col)}
}

func TestApply_AttackMutatesTargetAndLogsHit(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("p1", core.TeamPlayer, 6, 4),
		testutil.Knight("e1", core.TeamEnemy, 5, 4),
	}
	actions := []core.Action{attackAction("p1", "e1", core.AttackMelee)}

	hits, hitEvents, moves := newTestApplier().Apply(units, actions, 1)

	assert.Equal(t, []string{"5-4"}, hits)
	assert.Empty(t, moves)

	require.Len(t, hitEvents, 1)
	event := hitEvents[0]
	assert.Equal(t, "1-p1-e1-0", event.ID)
	assert.Equal(t, "p1", event.AttackerID)
	assert.Equal(t, core.TeamPlayer, event.AttackerTeam)
	assert.Equal(t, core.AttackMelee, event.AttackType)
	assert.False(t, event.DidKill)

	target := core.UnitByInstanceID(units, "e1")
	assert.Equal(t, 174, target.CurrentHP, "32 damage minus 16 defense")
}

func TestApply_StaleTargetSkipped(t *testing.T) {
	weak := testutil.Knight("e1", core.TeamEnemy, 5, 4)
	weak.CurrentHP = 10
	units := []core.BattleUnit{
		testutil.Knight("p1", core.TeamPlayer, 6, 4),
		testutil.Knight("p2", core.TeamPlayer, 4, 4),
		weak,
	}
	// Both attackers picked the same target against the same snapshot;
	// the first kill makes the second attack a silent no-op.
	actions := []core.Action{
		attackAction("p1", "e1", core.AttackMelee),
		attackAction("p2", "e1", core.AttackMelee),
	}

	hits, hitEvents, _ := newTestApplier().Apply(units, actions, 3)

	require.Len(t, hitEvents, 1)
	assert.True(t, hitEvents[0].DidKill)
	assert.Equal(t, []string{"5-4"}, hits)
	assert.Equal(t, 0, core.UnitByInstanceID(units, "e1").CurrentHP)
}

func TestApply_MoveIntoEmptyCell(t *testing.T) {
	units := []core.BattleUnit{testutil.Knight("p1", core.TeamPlayer, 6, 4)}
	actions := []core.Action{moveAction("p1", 5, 4)}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Equal(t, []string{"6-4", "5-4"}, moves)
	assert.Equal(t, core.NewPosition(5, 4), units[0].Position)
}

func TestApply_ContestedDestinationNobodyMoves(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("a", core.TeamPlayer, 6, 3),
		testutil.Knight("b", core.TeamPlayer, 4, 3),
	}
	actions := []core.Action{
		moveAction("a", 5, 3),
		moveAction("b", 5, 3),
	}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Empty(t, moves)
	assert.Equal(t, core.NewPosition(6, 3), units[0].Position)
	assert.Equal(t, core.NewPosition(4, 3), units[1].Position)
	assert.NotContains(t, moves, "5-3")
}

func TestApply_MoveBlockedByStationaryUnit(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("a", core.TeamPlayer, 6, 3),
		testutil.Knight("b", core.TeamPlayer, 5, 3),
	}
	actions := []core.Action{moveAction("a", 5, 3)}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Empty(t, moves)
	assert.Equal(t, core.NewPosition(6, 3), units[0].Position)
}

func TestApply_ChainMovesCommitTogether(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("rear", core.TeamPlayer, 6, 2),
		testutil.Knight("front", core.TeamPlayer, 5, 2),
	}
	// rear steps into front's cell while front vacates it.
	actions := []core.Action{
		moveAction("rear", 5, 2),
		moveAction("front", 4, 2),
	}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Equal(t, []string{"6-2", "5-2", "5-2", "4-2"}, moves)
	assert.Equal(t, core.NewPosition(5, 2), units[0].Position)
	assert.Equal(t, core.NewPosition(4, 2), units[1].Position)
}

func TestApply_ChainCollapsesWhenHeadLosesArbitration(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("rear", core.TeamPlayer, 6, 2),
		testutil.Knight("front", core.TeamPlayer, 5, 2),
		testutil.Knight("rival", core.TeamPlayer, 3, 2),
	}
	// front and rival contest (4,2); neither moves, so rear's
	// destination is never vacated and it stays put too.
	actions := []core.Action{
		moveAction("rear", 5, 2),
		moveAction("front", 4, 2),
		moveAction("rival", 4, 2),
	}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Empty(t, moves)
	for i, want := range []core.Position{
		core.NewPosition(6, 2), core.NewPosition(5, 2), core.NewPosition(3, 2),
	} {
		assert.Equal(t, want, units[i].Position)
	}
}

func TestApply_SwapCycleDenied(t *testing.T) {
	units := []core.BattleUnit{
		testutil.Knight("a", core.TeamPlayer, 6, 2),
		testutil.Knight("b", core.TeamPlayer, 5, 2),
	}
	actions := []core.Action{
		moveAction("a", 5, 2),
		moveAction("b", 6, 2),
	}

	_, _, moves := newTestApplier().Apply(units, actions, 1)

	assert.Empty(t, moves, "mutual vacation cycles resolve to nobody moving")
	assert.Equal(t, core.NewPosition(6, 2), units[0].Position)
	assert.Equal(t, core.NewPosition(5, 2), units[1].Position)
}

func TestApply_AttacksResolveBeforeMoves(t *testing.T) {
	weak := testutil.Knight("e1", core.TeamEnemy, 5, 4)
	weak.CurrentHP = 1
	units := []core.BattleUnit{
		testutil.Knight("p1", core.TeamPlayer, 6, 4),
		testutil.Archer("p2", core.TeamPlayer, 7, 4),
		weak,
	}
	// The archer kills the knight's blocker, but the knight's move was
	// arbitrated against the cell's pre-move occupancy: the corpse does
	// not block, so the move commits this same tick.
	actions := []core.Action{
		attackAction("p2", "e1", core.AttackRanged),
		moveAction("p1", 5, 4),
	}

	_, hitEvents, moves := newTestApplier().Apply(units, actions, 1)

	require.Len(t, hitEvents, 1)
	assert.True(t, hitEvents[0].DidKill)
	assert.Equal(t, []string{"6-4", "5-4"}, moves, "corpses do not block movement")
}
