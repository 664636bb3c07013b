package main

import (
	"flag"
	"fmt"
	"os"

	"monster/engine"
	"monster/experiments"
	"monster/game"
	"monster/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode     string
	size     int
	games    int
	seed     uint64
	searcher string
	out      string
	debug    bool
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "play", "play against the monster or run an experiment (play|experiment)")
	flag.IntVar(&cfg.size, "size", meta.BOARD_SIZE, "board size")
	flag.IntVar(&cfg.games, "games", meta.GAMES, "number of games in experiment mode")
	flag.Uint64Var(&cfg.seed, "seed", 0, "seed of the first random player in experiment mode")
	flag.StringVar(&cfg.searcher, "searcher", "alphabeta", "monster searcher (alphabeta|minimax); minimax only finishes on boards up to 3x3")
	flag.StringVar(&cfg.out, "out", "results", "output folder for experiment records")
	flag.BoolVar(&cfg.debug, "debug", false, "enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	switch cfg.mode {
	case "play":
		if !cfg.debug {
			// Keep the board readable
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
		err = play(cfg)
	case "experiment":
		err = experiments.Run(experiments.Config{
			Games:     cfg.games,
			Seed:      cfg.seed,
			BoardSize: cfg.size,
			Searcher:  cfg.searcher,
			OutDir:    cfg.out,
		})
	default:
		err = fmt.Errorf("unknown mode %q", cfg.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func play(cfg config) error {
	options := []game.Option{}
	if cfg.size != meta.BOARD_SIZE {
		options = experiments.LayoutFor(cfg.size)
	}
	state, err := game.NewGridState(options...)
	if err != nil {
		return err
	}
	if cfg.searcher == "minimax" && cfg.size > experiments.MAX_MINIMAX_SIZE {
		return fmt.Errorf("minimax does not finish on boards larger than %d", experiments.MAX_MINIMAX_SIZE)
	}
	monster, err := experiments.NewSearcher(cfg.searcher)
	if err != nil {
		return err
	}

	fmt.Println("Find the gold, bring it back to the exit and do not get caught by the monster.")
	fmt.Println("Moves: w (up), s (down), a (left), d (right). Add b to build a wall instead, e.g. wb.")

	e := engine.LocalEngine(state, engine.NewHumanAgent(os.Stdin, os.Stdout), monster, os.Stdout)
	_, err = e.Run()
	return err
}
