package testutil

import (
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// Knight builds an alive melee unit with the stock knight statline.
func Knight(instanceID string, team core.Team, row, col int) core.BattleUnit {
	return core.BattleUnit{
		UnitTemplate: core.UnitTemplate{
			ID: "knight", Name: "Knight", Class: core.ClassMelee,
			HP: 190, Damage: 32, Defense: 16, Speed: 2, Range: 1,
		},
		InstanceID: instanceID,
		Team:       team,
		Position:   core.NewPosition(row, col),
		CurrentHP:  190,
	}
}

// Archer builds an alive ranged unit with the stock archer statline.
func Archer(instanceID string, team core.Team, row, col int) core.BattleUnit {
	return core.BattleUnit{
		UnitTemplate: core.UnitTemplate{
			ID: "archer", Name: "Archer", Class: core.ClassRanged,
			HP: 100, Damage: 24, Defense: 6, Speed: 2, Range: 3,
		},
		InstanceID: instanceID,
		Team:       team,
		Position:   core.NewPosition(row, col),
		CurrentHP:  100,
	}
}

// Pikeman builds an alive shielded melee unit.
func Pikeman(instanceID string, team core.Team, row, col int) core.BattleUnit {
	return core.BattleUnit{
		UnitTemplate: core.UnitTemplate{
			ID: "pikeman", Name: "Pikeman", Class: core.ClassMelee,
			HP: 150, Damage: 26, Defense: 12, Shield: 30, Speed: 2, Range: 1,
		},
		InstanceID:    instanceID,
		Team:          team,
		Position:      core.NewPosition(row, col),
		CurrentHP:     150,
		CurrentShield: 30,
	}
}
