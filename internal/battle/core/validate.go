package core

// ValidateRoster fails fast on input that would otherwise produce undefined
// behavior during resolution: duplicate instance IDs, positions outside the
// board, or two alive units sharing a cell. A rejected roster leaves the
// caller's state untouched.
func ValidateRoster(units []BattleUnit) error {
	if len(units) == 0 {
		return ErrEmptyRoster
	}

	seen := make(map[string]struct{}, len(units))
	occupied := make(map[string]struct{}, len(units))

	for i := range units {
		u := &units[i]
		if u.InstanceID == "" {
			return WrapUnitError(u.InstanceID, u.Position, ErrMissingInstanceID)
		}
		if _, dup := seen[u.InstanceID]; dup {
			return WrapUnitError(u.InstanceID, u.Position, ErrDuplicateInstanceID)
		}
		seen[u.InstanceID] = struct{}{}

		if !u.Team.Valid() {
			return WrapUnitError(u.InstanceID, u.Position, ErrInvalidTeam)
		}
		if !InBounds(u.Position) {
			return WrapUnitError(u.InstanceID, u.Position, ErrOutOfBounds)
		}
		if !u.Alive() {
			continue
		}
		key := u.Position.Key()
		if _, taken := occupied[key]; taken {
			return WrapUnitError(u.InstanceID, u.Position, ErrCellOccupied)
		}
		occupied[key] = struct{}{}
	}
	return nil
}
