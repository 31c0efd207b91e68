package battle

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/events"
)

// ErrMaxTicksReached is returned when a battle fails to produce a winner
// within the runner's tick budget.
var ErrMaxTicksReached = errors.New("battle did not finish within max ticks")

// Runner is the host loop the tick orchestrator deliberately does not
// contain: it drives an initialized battle to completion, tracks the
// battle phase, and publishes observer events. Each tick's output is a
// complete, independently valid state, so the runner can stop at any
// point with no corruption risk.
type Runner struct {
	engine   *Engine
	bus      events.Publisher
	logger   zerolog.Logger
	battleID string
	maxTicks int
	phase    Phase
}

// NewRunner creates a host loop for one battle.
func NewRunner(battleID string, engine *Engine, bus events.Publisher, maxTicks int, logger zerolog.Logger) *Runner {
	return &Runner{
		engine:   engine,
		bus:      bus,
		logger:   logger.With().Str("component", "BattleRunner").Str("battle_id", battleID).Logger(),
		battleID: battleID,
		maxTicks: maxTicks,
		phase:    PhaseNotStarted,
	}
}

// Phase returns the current battle phase.
func (r *Runner) Phase() Phase {
	return r.phase
}

// Run resolves ticks from the given initialized state until a winner is
// found and returns the ordered tick results. If the tick budget runs out
// first, the partial timeline is returned together with
// ErrMaxTicksReached.
func (r *Runner) Run(state BattleState) ([]TickResult, error) {
	r.transition(PhaseRunning)
	start := time.Now()

	playerUnits, enemyUnits := 0, 0
	for i := range state.Units {
		if state.Units[i].Team == core.TeamPlayer {
			playerUnits++
		} else {
			enemyUnits++
		}
	}
	r.publish(events.NewBattleStartedEvent(r.battleID, state.CurrentTeam, playerUnits, enemyUnits))

	var ticks []TickResult
	for r.phase.CanAdvance() {
		if len(ticks) >= r.maxTicks {
			r.transition(PhaseFinished)
			r.publish(events.NewBattleEndedEvent(r.battleID, core.TeamNone, state.TurnNumber, time.Since(start)))
			return ticks, ErrMaxTicksReached
		}

		result, err := r.engine.AdvanceTick(state.Units, state.CurrentTeam, state.TurnNumber)
		if err != nil {
			r.logger.Error().Err(err).Int("turn", state.TurnNumber).Msg("Tick rejected, aborting battle")
			r.transition(PhaseFinished)
			return ticks, err
		}

		r.publish(events.NewTickResolvedEvent(
			r.battleID, state.TurnNumber, state.CurrentTeam, len(result.HitEvents), len(result.Moves)/2))
		for _, hit := range result.HitEvents {
			if !hit.DidKill {
				continue
			}
			r.publish(events.NewUnitKilledEvent(
				r.battleID, state.TurnNumber, hit.TargetID, hit.AttackerTeam.Opponent(), hit.AttackerID, hit.TargetPosition))
		}

		ticks = append(ticks, result)
		state = result.State()

		if result.Winner != core.TeamNone {
			r.transition(PhaseFinished)
			r.publish(events.NewBattleEndedEvent(r.battleID, result.Winner, result.TurnNumber-1, time.Since(start)))
			r.logger.Info().
				Str("winner", string(result.Winner)).
				Int("ticks", len(ticks)).
				Msg("Battle finished")
		}
	}
	return ticks, nil
}

func (r *Runner) transition(target Phase) {
	if !r.phase.CanTransitionTo(target) {
		r.logger.Warn().
			Str("from", r.phase.String()).
			Str("to", target.String()).
			Msg("Ignoring invalid phase transition")
		return
	}
	r.logger.Debug().
		Str("from", r.phase.String()).
		Str("to", target.String()).
		Msg("Battle phase transition")
	r.phase = target
}

func (r *Runner) publish(event events.Event) {
	if r.bus != nil {
		r.bus.Publish(event)
	}
}
