package searcher

import (
	"monster/game"
	"monster/utils"

	"github.com/rs/zerolog/log"
)

// AlphaBeta searches the full game tree from the monster's decision point to
// terminal states, pruning with alpha/beta bounds. Because utilities are
// either game.PlayerWin or game.MonsterWin, a node also stops as soon as it
// has reached the best value its side can get.
type AlphaBeta struct {
	options
}

func NewAlphaBeta(opts ...Option) *AlphaBeta {
	return &AlphaBeta{options: newOptions(opts)}
}

// FindNextMove returns the monster's best action, or game.NoAction when gs is
// already terminal.
func (ab *AlphaBeta) FindNextMove(gs *game.GridState) (game.Action, Stats) {
	action, stats := run(gs, ab.options, func(s *session) (int, game.Action) {
		return s.maxValue(NegInf, PosInf)
	})
	log.Debug().
		Str("action", action.String()).
		Int("value", stats.Value).
		Int("nodes", stats.Nodes).
		Int("depth", stats.DepthReached).
		Int("pruned", stats.Pruned).
		Msg("alpha-beta search complete")
	return action, stats
}

// maxValue evaluates a monster decision.
func (s *session) maxValue(alpha, beta int) (int, game.Action) {
	s.enter()
	if s.terminal() {
		return game.Utility(s.gs), game.NoAction
	}

	v, best := NegInf, game.NoAction
	actions := game.LegalActions(s.gs, game.Monster)
	for i, action := range actions {
		childValue := s.child(action, game.Monster, func() int {
			value, _ := s.minValue(alpha, beta)
			return value
		})
		if childValue > v {
			v, best = childValue, action
		}
		if v >= beta || v == game.MonsterWin {
			s.stats.Pruned += len(actions) - i - 1
			return v, best
		}
		alpha = utils.Max(alpha, v)
	}
	return v, best
}

// minValue evaluates a player decision.
func (s *session) minValue(alpha, beta int) (int, game.Action) {
	s.enter()
	if s.terminal() {
		return game.Utility(s.gs), game.NoAction
	}

	v, best := PosInf, game.NoAction
	actions := game.LegalActions(s.gs, game.Player)
	for i, action := range actions {
		childValue := s.child(action, game.Player, func() int {
			value, _ := s.maxValue(alpha, beta)
			return value
		})
		if childValue < v {
			v, best = childValue, action
		}
		if v <= alpha || v == game.PlayerWin {
			s.stats.Pruned += len(actions) - i - 1
			return v, best
		}
		beta = utils.Min(beta, v)
	}
	return v, best
}
