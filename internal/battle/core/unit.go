package core

// UnitClass distinguishes the two targeting behaviors units can have.
// Ranged units get a forward-band scan that preempts normal movement;
// melee units only ever strike the cell directly ahead.
type UnitClass string

const (
	ClassMelee  UnitClass = "melee"
	ClassRanged UnitClass = "ranged"
)

// UnitTemplate is the immutable catalog definition of a unit type.
// Speed is carried for collaborators (animation pacing); the resolution
// logic itself never reads it.
type UnitTemplate struct {
	ID      string    `json:"id" yaml:"id"`
	Name    string    `json:"name" yaml:"name"`
	Class   UnitClass `json:"class" yaml:"class"`
	HP      int       `json:"hp" yaml:"hp"`
	Damage  int       `json:"damage" yaml:"damage"`
	Defense int       `json:"defense" yaml:"defense"`
	Shield  int       `json:"shield,omitempty" yaml:"shield,omitempty"`
	Speed   int       `json:"speed,omitempty" yaml:"speed,omitempty"`
	Range   int       `json:"range" yaml:"range"`
}

// BattleUnit is one combatant instance inside a battle: template stats plus
// live state. InstanceID is unique within a battle and stable for the
// unit's lifetime. Dead units are never removed from the collection; they
// are excluded by alive-filtering so renderers can still play death
// animations at the corpse's last position.
type BattleUnit struct {
	UnitTemplate
	InstanceID    string   `json:"instanceId"`
	Team          Team     `json:"team"`
	Position      Position `json:"position"`
	CurrentHP     int      `json:"currentHp"`
	CurrentShield int      `json:"currentShield"`
}

// Alive reports whether the unit still participates in the battle.
func (u *BattleUnit) Alive() bool {
	return u.CurrentHP > 0
}

// CloneUnits deep-copies a unit slice. Tick input is cloned before any
// mutation so callers' slices are never touched.
func CloneUnits(units []BattleUnit) []BattleUnit {
	out := make([]BattleUnit, len(units))
	copy(out, units)
	return out
}

// AliveUnitAt returns the alive unit occupying the given cell, or nil.
// Corpses never block a cell.
func AliveUnitAt(units []BattleUnit, p Position) *BattleUnit {
	for i := range units {
		if units[i].Alive() && units[i].Position.Equal(p) {
			return &units[i]
		}
	}
	return nil
}

// UnitByInstanceID returns the unit with the given instance ID, dead or
// alive, or nil if no such unit exists.
func UnitByInstanceID(units []BattleUnit, instanceID string) *BattleUnit {
	for i := range units {
		if units[i].InstanceID == instanceID {
			return &units[i]
		}
	}
	return nil
}
