package searcher

import (
	"monster/game"

	"github.com/rs/zerolog/log"
)

// Minimax visits every node of the game tree without pruning. It picks the
// same actions as AlphaBeta and serves as its reference.
type Minimax struct {
	options
}

func NewMinimax(opts ...Option) *Minimax {
	return &Minimax{options: newOptions(opts)}
}

func (m *Minimax) FindNextMove(gs *game.GridState) (game.Action, Stats) {
	action, stats := run(gs, m.options, func(s *session) (int, game.Action) {
		return s.minimax(game.Monster)
	})
	log.Debug().
		Str("action", action.String()).
		Int("value", stats.Value).
		Int("nodes", stats.Nodes).
		Msg("minimax search complete")
	return action, stats
}

// minimax returns the exact value of the state with agent to act. Ties go to
// the first action in generation order.
func (s *session) minimax(agent game.Agent) (int, game.Action) {
	s.enter()
	if s.terminal() {
		return game.Utility(s.gs), game.NoAction
	}

	maximizing := agent == game.Monster
	next := game.Player
	v := NegInf
	if !maximizing {
		next = game.Monster
		v = PosInf
	}

	best := game.NoAction
	for _, action := range game.LegalActions(s.gs, agent) {
		childValue := s.child(action, agent, func() int {
			value, _ := s.minimax(next)
			return value
		})
		if (maximizing && childValue > v) || (!maximizing && childValue < v) {
			v, best = childValue, action
		}
	}
	return v, best
}
