package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/events"
)

// LoggerSubscriber logs battle events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("battle_id", event.BattleID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.InfoLevel:
		logEvent = eventLogger.Info()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.BattleStartedEvent:
		logEvent.
			Str("starting_team", string(e.StartingTeam)).
			Int("player_units", e.PlayerUnits).
			Int("enemy_units", e.EnemyUnits)

	case *events.BattleEndedEvent:
		logEvent.
			Str("winner", string(e.Winner)).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.TickResolvedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Str("acting_team", string(e.ActingTeam)).
			Int("attacks", e.Attacks).
			Int("moves", e.Moves)

	case *events.UnitKilledEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Str("unit_id", e.UnitID).
			Str("unit_team", string(e.UnitTeam)).
			Str("killer_id", e.KillerID).
			Str("position", e.Position.String())
	}

	// In dev mode, also log the full event as JSON
	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Battle event")
}
