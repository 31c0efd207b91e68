package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/battle/core"
	"github.com/yogevhadad83/Tactica-Academy-of-War-sub000/internal/replay"
)

func main() {
	file := flag.String("file", "", "path to a recorded timeline JSON file")
	verify := flag.Bool("verify", true, "re-resolve every tick and compare against the recording")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: replay -file <timeline.json> [-verify=false]")
		os.Exit(2)
	}

	timeline, err := replay.Load(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to load timeline")
	}

	fmt.Printf("Battle %s: %d ticks recorded\n", timeline.BattleID, len(timeline.Ticks))
	if winner := timeline.Winner(); winner != core.TeamNone {
		fmt.Printf("Recorded winner: %s\n", winner)
	} else {
		fmt.Println("Recorded battle is undecided")
	}

	if *verify {
		if err := replay.Verify(timeline); err != nil {
			log.Fatal().Err(err).Msg("Replay diverged from recording")
		}
		fmt.Println("Replay verified: engine reproduces the recorded timeline exactly")
	}
}
