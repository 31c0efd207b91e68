package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUnit(id string, team Team, row, col int) BattleUnit {
	return BattleUnit{
		UnitTemplate: UnitTemplate{ID: "knight", Class: ClassMelee, HP: 100, Damage: 10, Defense: 5, Range: 1},
		InstanceID:   id,
		Team:         team,
		Position:     NewPosition(row, col),
		CurrentHP:    100,
	}
}

func TestValidateRoster_OK(t *testing.T) {
	units := []BattleUnit{
		testUnit("a", TeamPlayer, 6, 3),
		testUnit("b", TeamEnemy, 1, 3),
	}
	require.NoError(t, ValidateRoster(units))
}

func TestValidateRoster_EmptyRoster(t *testing.T) {
	assert.ErrorIs(t, ValidateRoster(nil), ErrEmptyRoster)
}

func TestValidateRoster_DuplicateInstanceID(t *testing.T) {
	units := []BattleUnit{
		testUnit("a", TeamPlayer, 6, 3),
		testUnit("a", TeamEnemy, 1, 3),
	}
	assert.ErrorIs(t, ValidateRoster(units), ErrDuplicateInstanceID)
}

func TestValidateRoster_MissingInstanceID(t *testing.T) {
	units := []BattleUnit{testUnit("", TeamPlayer, 6, 3)}
	assert.ErrorIs(t, ValidateRoster(units), ErrMissingInstanceID)
}

func TestValidateRoster_OutOfBounds(t *testing.T) {
	units := []BattleUnit{testUnit("a", TeamPlayer, BoardRows, 3)}
	assert.ErrorIs(t, ValidateRoster(units), ErrOutOfBounds)

	units = []BattleUnit{testUnit("a", TeamPlayer, 0, -1)}
	assert.ErrorIs(t, ValidateRoster(units), ErrOutOfBounds)
}

func TestValidateRoster_InvalidTeam(t *testing.T) {
	units := []BattleUnit{testUnit("a", Team("spectator"), 6, 3)}
	assert.ErrorIs(t, ValidateRoster(units), ErrInvalidTeam)
}

func TestValidateRoster_SharedCell(t *testing.T) {
	units := []BattleUnit{
		testUnit("a", TeamPlayer, 6, 3),
		testUnit("b", TeamPlayer, 6, 3),
	}
	assert.ErrorIs(t, ValidateRoster(units), ErrCellOccupied)
}

func TestValidateRoster_CorpseMayShareCell(t *testing.T) {
	corpse := testUnit("dead", TeamEnemy, 6, 3)
	corpse.CurrentHP = 0
	units := []BattleUnit{
		testUnit("a", TeamPlayer, 6, 3),
		corpse,
	}
	assert.NoError(t, ValidateRoster(units), "dead units do not block cells")
}

func TestAliveUnitAt(t *testing.T) {
	corpse := testUnit("dead", TeamEnemy, 2, 2)
	corpse.CurrentHP = 0
	units := []BattleUnit{
		testUnit("a", TeamPlayer, 6, 3),
		corpse,
	}

	found := AliveUnitAt(units, NewPosition(6, 3))
	require.NotNil(t, found)
	assert.Equal(t, "a", found.InstanceID)

	assert.Nil(t, AliveUnitAt(units, NewPosition(2, 2)), "corpses are invisible to occupancy checks")
	assert.Nil(t, AliveUnitAt(units, NewPosition(0, 0)))
}

func TestUnitByInstanceID(t *testing.T) {
	corpse := testUnit("dead", TeamEnemy, 2, 2)
	corpse.CurrentHP = 0
	units := []BattleUnit{testUnit("a", TeamPlayer, 6, 3), corpse}

	require.NotNil(t, UnitByInstanceID(units, "dead"), "dead units remain addressable")
	assert.Nil(t, UnitByInstanceID(units, "missing"))
}
