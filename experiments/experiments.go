package experiments

import (
	"fmt"

	"monster/engine"
	"monster/experiments/metrics"
	"monster/game"
	"monster/meta"
	"monster/searcher"

	"github.com/rs/zerolog/log"
)

// Config describes a batch of random-player games against one monster searcher.
type Config struct {
	Games     int
	Seed      uint64
	BoardSize int
	Searcher  string // "alphabeta" or "minimax"
	OutDir    string
}

// MAX_MINIMAX_SIZE is the largest board the unpruned search can play out.
const MAX_MINIMAX_SIZE = 3

// NewSearcher builds the named monster searcher.
func NewSearcher(name string) (searcher.Searcher, error) {
	switch name {
	case "alphabeta", "":
		return searcher.NewAlphaBeta(searcher.WithMetrics()), nil
	case "minimax":
		return searcher.NewMinimax(searcher.WithMetrics()), nil
	default:
		return nil, fmt.Errorf("unknown searcher %q", name)
	}
}

// Run plays cfg.Games games and stores the game and move records as CSV.
func Run(cfg Config) error {
	monster, err := NewSearcher(cfg.Searcher)
	if err != nil {
		return err
	}
	if cfg.Games <= 0 {
		return fmt.Errorf("need at least one game, got %d", cfg.Games)
	}
	size := cfg.BoardSize
	if size <= 0 {
		size = meta.BOARD_SIZE
	}
	if cfg.Searcher == "minimax" && size > MAX_MINIMAX_SIZE {
		return fmt.Errorf("minimax does not finish on boards larger than %d, got %d", MAX_MINIMAX_SIZE, size)
	}

	agent := metrics.AgentConfig{ID: 1, Searcher: cfg.Searcher, BoardSize: size, Seed: cfg.Seed}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[game.Agent]int{}

	log.Info().Msgf("starting experiment with %d games, agent=%+v...", cfg.Games, agent)

	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		result, err := runGame(cfg, monster, cfg.Seed+uint64(i))
		if err != nil {
			return fmt.Errorf("game %d failed: %w", i+1, err)
		}
		wins[result.Winner]++

		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent:      agent.ID,
			GameMetric: result.Game,
		})
		for _, mm := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d with winner: %s", i+1, result.Winner)
	}

	log.Info().
		Int("player_wins", wins[game.Player]).
		Int("monster_wins", wins[game.Monster]).
		Msg("completed experiment")

	writer, err := metrics.NewWriter(cfg.OutDir)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{agent}); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame plays one game, on the default board unless another size is configured.
func runGame(cfg Config, monster searcher.Searcher, seed uint64) (engine.Result, error) {
	options := []game.Option{}
	if cfg.BoardSize > 0 && cfg.BoardSize != meta.BOARD_SIZE {
		options = append(options, LayoutFor(cfg.BoardSize)...)
	}
	state, err := game.NewGridState(options...)
	if err != nil {
		return engine.Result{}, err
	}

	e := engine.LocalEngine(state, engine.NewRandomAgent(seed), monster, nil)
	return e.Run()
}

// LayoutFor places the agents in opposite corners of an n×n board, with the
// exit under the player and the gold in the middle.
func LayoutFor(n int) []game.Option {
	corner := game.Position{Row: n - 1, Col: 0}
	return []game.Option{
		game.WithBoardSize(n),
		game.WithMonster(game.Position{Row: 0, Col: 0}),
		game.WithPlayer(corner),
		game.WithExit(corner),
		game.WithGold(game.Position{Row: n / 2, Col: n / 2}),
	}
}
