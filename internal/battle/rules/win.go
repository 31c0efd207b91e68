package rules

import (
	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
)

// WinChecker detects a side reaching the opposing home row. The scan runs
// after both apply phases every tick, so only alive units count: a unit
// that reached the goal row but was killed earlier in the same tick does
// not win. The player side is checked first.
type WinChecker struct {
	logger zerolog.Logger
}

// NewWinChecker creates a new win condition checker.
func NewWinChecker(logger zerolog.Logger) *WinChecker {
	return &WinChecker{
		logger: logger.With().Str("component", "WinChecker").Logger(),
	}
}

// CheckWinner scans all alive units and returns the winning team, if any.
func (wc *WinChecker) CheckWinner(units []core.BattleUnit) (core.Team, bool) {
	for _, team := range []core.Team{core.TeamPlayer, core.TeamEnemy} {
		goal := core.GoalRow(team)
		for i := range units {
			u := &units[i]
			if u.Team != team || !u.Alive() {
				continue
			}
			if u.Position.Row == goal {
				wc.logger.Info().
					Str("winner", string(team)).
					Str("instance_id", u.InstanceID).
					Str("position", u.Position.String()).
					Msg("Home row reached, battle decided")
				return team, true
			}
		}
	}
	return core.TeamNone, false
}
