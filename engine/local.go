package engine

import (
	"fmt"
	"io"

	"monster/experiments/metrics"
	"monster/game"
	"monster/searcher"
	"monster/utils"

	"github.com/rs/zerolog/log"
)

// Local runs a game in-process: the player agent moves, the monster replies
// with the searcher's choice, and the board is rendered to out after every
// ply.
type Local struct {
	State   *game.GridState
	Player  PlayerAgent
	Monster searcher.Searcher
	out     io.Writer
	metrics metrics.Collector
}

func LocalEngine(state *game.GridState, player PlayerAgent, monster searcher.Searcher, out io.Writer) *Local {
	if state == nil {
		panic("need a game state")
	}
	if player == nil || monster == nil {
		panic("need a player agent and a monster searcher")
	}
	if out == nil {
		out = io.Discard
	}

	return &Local{
		State:   state,
		Player:  player,
		Monster: monster,
		out:     out,
		metrics: metrics.NewCollector(),
	}
}

// Run executes the game loop until one side wins.
func (e *Local) Run() (Result, error) {
	gs := e.State
	e.metrics.Start()

	log.Info().
		Int("size", gs.Size()).
		Stringer("player", gs.Player()).
		Stringer("monster", gs.Monster()).
		Msg("game is starting")

	if err := game.Render(e.out, gs); err != nil {
		return Result{}, fmt.Errorf("failed to render board: %w", err)
	}

	winner, err := e.loop()
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Winner:      winner,
		PlayerMoves: gs.MoveCount(),
		Game:        e.metrics.Complete(winner.String(), gs.MoveCount()),
		Moves:       e.metrics.Moves(),
	}

	fmt.Fprintln(e.out, "GAME OVER")
	if winner == game.Player {
		fmt.Fprintln(e.out, "You Won!")
	} else {
		fmt.Fprintln(e.out, "You Lost!")
	}
	log.Info().Msgf("game over after %d player moves, winner: %s", result.PlayerMoves, winner)

	return result, nil
}

func (e *Local) loop() (game.Agent, error) {
	gs := e.State
	for {
		// Player's move
		legal := game.LegalActions(gs, game.Player)
		if len(legal) == 0 {
			log.Info().Msg("player is boxed in")
			return game.Monster, nil
		}

		fmt.Fprintf(e.out, "Player's Move # %d\n", gs.MoveCount()+1)
		action, err := e.Player.ChooseAction(gs, legal)
		if err != nil {
			return game.Monster, fmt.Errorf("player failed to choose a move: %w", err)
		}
		if !utils.Contains(legal, action) {
			return game.Monster, fmt.Errorf("player chose illegal move %q", action)
		}
		game.Apply(gs, action, game.Player)

		if game.CollectGold(gs) {
			log.Info().Msgf("player picked up the gold at %s", gs.Gold())
		}
		if err := game.Render(e.out, gs); err != nil {
			return game.Monster, fmt.Errorf("failed to render board: %w", err)
		}

		if game.PlayerHasWon(gs) {
			return game.Player, nil
		}
		if game.NoMoreActions(gs, game.Player) {
			return game.Monster, nil
		}

		// Monster's move
		reply, stats := e.Monster.FindNextMove(gs)
		e.metrics.AddMove(metrics.MoveMetric{
			Step:     gs.MoveCount(),
			Action:   reply.String(),
			Nodes:    stats.Nodes,
			Depth:    stats.DepthReached,
			Pruned:   stats.Pruned,
			Value:    stats.Value,
			Duration: stats.Duration,
		})
		log.Debug().
			Str("action", reply.String()).
			Int("nodes", stats.Nodes).
			Int("depth", stats.DepthReached).
			Int("pruned", stats.Pruned).
			Msg("monster moved")

		if reply != game.NoAction {
			game.Apply(gs, reply, game.Monster)
		}

		fmt.Fprintf(e.out, "Depth reached: %d\n", stats.DepthReached)
		fmt.Fprintf(e.out, "Number pruned due to a/b: %d\n", stats.Pruned)
		if err := game.Render(e.out, gs); err != nil {
			return game.Monster, fmt.Errorf("failed to render board: %w", err)
		}

		if game.MonsterHasWon(gs) {
			return game.Monster, nil
		}
	}
}
