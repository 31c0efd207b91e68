package battle

import (
	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/rules"
)

// Engine is the tick orchestrator: it clones the input snapshot, collects
// intents for the active team, applies them, evaluates the win condition,
// and returns a wholly new result with the turn handed to the other side.
// It is synchronous and holds no battle state of its own; for fixed input
// two invocations produce identical output, so ticks can be precomputed,
// streamed and replayed without synchronization.
type Engine struct {
	logger     zerolog.Logger
	collector  *ActionCollector
	applier    *ActionApplier
	winChecker *rules.WinChecker
}

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	logger   zerolog.Logger
	resolver core.AttackResolver
}

// WithLogger sets the engine logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *engineOptions) { o.logger = logger }
}

// WithAttackResolver swaps in a different attack resolution collaborator.
func WithAttackResolver(resolver core.AttackResolver) Option {
	return func(o *engineOptions) { o.resolver = resolver }
}

// NewEngine creates a tick orchestrator.
func NewEngine(opts ...Option) *Engine {
	o := engineOptions{
		logger:   zerolog.Nop(),
		resolver: core.NewStandardAttackResolver(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With().Str("component", "BattleEngine").Logger()
	return &Engine{
		logger:     logger,
		collector:  NewActionCollector(o.logger),
		applier:    NewActionApplier(o.logger, o.resolver),
		winChecker: rules.NewWinChecker(o.logger),
	}
}

// AdvanceTick resolves one tick for the given team. The input slice is
// cloned up front and never mutated. Invalid input (duplicate instance
// IDs, out-of-bounds positions, shared cells) rejects the tick with the
// caller's state untouched.
func (e *Engine) AdvanceTick(units []core.BattleUnit, currentTeam core.Team, turnNumber int) (TickResult, error) {
	if !currentTeam.Valid() {
		return TickResult{}, core.WrapTickError(turnNumber, core.ErrInvalidTeam)
	}
	if err := core.ValidateRoster(units); err != nil {
		return TickResult{}, core.WrapTickError(turnNumber, err)
	}

	working := core.CloneUnits(units)

	tickLogger := e.logger.With().
		Int("turn", turnNumber).
		Str("team", string(currentTeam)).
		Logger()
	tickLogger.Debug().Int("unit_count", len(working)).Msg("Resolving tick")

	actions := e.collector.Collect(currentTeam, working)
	hits, hitEvents, moves := e.applier.Apply(working, actions, turnNumber)

	winner, _ := e.winChecker.CheckWinner(working)

	tickLogger.Debug().
		Int("actions", len(actions)).
		Int("hits", len(hitEvents)).
		Int("moves", len(moves)/2).
		Str("winner", string(winner)).
		Msg("Tick resolved")

	return TickResult{
		Units:       working,
		Hits:        hits,
		HitEvents:   hitEvents,
		Moves:       moves,
		Winner:      winner,
		CurrentTeam: currentTeam.Opponent(),
		TurnNumber:  turnNumber + 1,
	}, nil
}

// AdvanceBattleTick resolves one tick with a default engine: the stock
// attack resolver and no logging. Hosts that want structured logs or a
// custom formula build an Engine instead.
func AdvanceBattleTick(units []core.BattleUnit, currentTeam core.Team, turnNumber int) (TickResult, error) {
	return NewEngine().AdvanceTick(units, currentTeam, turnNumber)
}
