package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/events"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/events/subscribers"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/config"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/replay"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/roster"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Get()

	setupLogging(cfg)

	units := loadArmies(cfg)

	seed := cfg.Demo.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Msg("Initializing battle")

	state, err := battle.InitializeBattle(units,
		battle.WithRNG(rand.New(rand.NewSource(seed))))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize battle")
	}

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("battle-log", log.Logger, zerolog.InfoLevel))

	battleID := uuid.NewString()
	engine := battle.NewEngine(battle.WithLogger(log.Logger))
	runner := battle.NewRunner(battleID, engine, bus, cfg.Battle.MaxTicks, log.Logger)

	timeline := replay.New(battleID, state)
	ticks, runErr := runner.Run(state)
	for _, tick := range ticks {
		timeline.Append(tick)
		if cfg.Demo.PrintBoard {
			fmt.Printf("Turn %d (%s acted):\n%s\n", tick.TurnNumber-1, tick.CurrentTeam.Opponent(), boardString(tick.Units))
			if cfg.Demo.TickDelayMs > 0 {
				time.Sleep(time.Duration(cfg.Demo.TickDelayMs) * time.Millisecond)
			}
		}
	}
	if runErr != nil {
		log.Warn().Err(runErr).Msg("Battle ended without a winner")
	}

	if winner := timeline.Winner(); winner != core.TeamNone {
		fmt.Printf("Battle over after %d ticks: %s wins\n", len(ticks), winner)
	} else {
		fmt.Printf("Battle undecided after %d ticks\n", len(ticks))
	}

	if cfg.Battle.ReplayPath != "" {
		if err := replay.Save(timeline, cfg.Battle.ReplayPath); err != nil {
			log.Error().Err(err).Str("path", cfg.Battle.ReplayPath).Msg("Failed to save timeline")
		} else {
			log.Info().Str("path", cfg.Battle.ReplayPath).Msg("Timeline saved")
		}
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func loadArmies(cfg *config.Config) []core.BattleUnit {
	if cfg.Battle.CatalogPath == "" {
		return roster.DefaultArmies()
	}
	catalog, err := roster.LoadCatalog(cfg.Battle.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Battle.CatalogPath).Msg("Failed to load catalog")
	}
	units, err := catalog.Armies()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build armies from catalog")
	}
	return units
}

// boardString renders the unit snapshot as a compact ASCII grid. Player
// units are uppercase, enemy units lowercase, corpses are '+'.
func boardString(units []core.BattleUnit) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for col := 0; col < core.BoardCols; col++ {
		sb.WriteString(fmt.Sprintf("%2d", col))
	}
	sb.WriteString("\n")

	for row := 0; row < core.BoardRows; row++ {
		sb.WriteString(fmt.Sprintf("%2d ", row))
		for col := 0; col < core.BoardCols; col++ {
			sb.WriteString(" " + cellSymbol(units, core.NewPosition(row, col)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func cellSymbol(units []core.BattleUnit, p core.Position) string {
	corpse := false
	for i := range units {
		u := &units[i]
		if !u.Position.Equal(p) {
			continue
		}
		if !u.Alive() {
			corpse = true
			continue
		}
		symbol := "?"
		if len(u.ID) > 0 {
			symbol = string(u.ID[0])
		}
		if u.Team == core.TeamPlayer {
			return strings.ToUpper(symbol)
		}
		return strings.ToLower(symbol)
	}
	if corpse {
		return "+"
	}
	return "·"
}
