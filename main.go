package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"othello/experiments"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/player"
	"othello/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const humanName = "human"

func main() {
	mode := flag.String("mode", "play", "play a game on the terminal, or run an experiment")
	black := flag.String("black", humanName, "controller for black: human or a strategy name")
	white := flag.String("white", searcher.MinMaxName, "controller for white: human or a strategy name")
	depth := flag.Int("depth", meta.MAX_DEPTH, "minimax search depth")
	goroutines := flag.Int("goroutines", meta.GO_ROUTINES, "goroutines for root-parallel minimax")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for the random strategy")
	board := flag.String("board", "", "start from a 64-character board of b, w and e cells, row by row")
	turn := flag.String("turn", "black", "side to move on -board")
	config := flag.String("config", "experiment.yaml", "experiment config file")
	level := flag.String("log-level", "info", "log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	switch *mode {
	case "play":
		options := []searcher.Option{searcher.WithDepth(*depth), searcher.WithGoroutines(*goroutines)}
		blackController := createController(*black, *seed, options)
		whiteController := createController(*white, *seed+1, options)

		position := game.NewPosition()
		if *board != "" {
			position, err = game.DecodePosition(*board, *turn)
			if err != nil {
				log.Fatal().Err(err).Msg("invalid start position")
			}
		}

		session := gamemaster.NewSessionFrom(position, blackController, whiteController)
		var controller player.Controller = player.NewConsole(session, os.Stdin, os.Stdout)
		if err := controller.Run(); err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
	case "experiment":
		dir, err := experiments.RunFromFile(*config)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(dir)
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func createController(name string, seed uint64, options []searcher.Option) gamemaster.Controller {
	if name == humanName {
		return gamemaster.Human()
	}
	strategy, err := searcher.New(name, seed, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid controller")
	}
	return gamemaster.Computed(strategy)
}
