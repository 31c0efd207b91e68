package core

import "github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/common"

// AttackResolver is the damage/defense/shield formula collaborator. The
// engine hands it the attacker's damage and the defender's current stats
// and applies whatever it returns; lethality is decided afterwards by
// checking CurrentHP <= 0. Implementations must be pure so replays stay
// deterministic.
type AttackResolver interface {
	Resolve(damage, defense, shield, hp int) (newShield, newHP int)
}

// StandardAttackResolver is the stock formula: damage is reduced by the
// defender's defense to a floor of 1, the shield absorbs what it can, and
// the remainder comes off health. Health is clamped at 0.
type StandardAttackResolver struct{}

// NewStandardAttackResolver creates the default attack resolver.
func NewStandardAttackResolver() StandardAttackResolver {
	return StandardAttackResolver{}
}

// Resolve implements AttackResolver.
func (StandardAttackResolver) Resolve(damage, defense, shield, hp int) (int, int) {
	effective := common.Max(damage-defense, 1)
	absorbed := common.Min(effective, shield)
	shield -= absorbed
	hp = common.Max(hp-(effective-absorbed), 0)
	return shield, hp
}
