package searcher

import (
	"fmt"
	"math"
	"monster/game"
)

// Window bounds. Utilities only take the values game.PlayerWin and
// game.MonsterWin, so any int outside that range works.
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

// Searcher picks the monster's reply for a state. The state must be left
// exactly as it was passed in.
type Searcher interface {
	FindNextMove(gs *game.GridState) (game.Action, Stats)
}

type Option func(o *options)

type options struct {
	metrics bool
}

// WithMetrics records the wall-clock duration of each search.
func WithMetrics() Option {
	return func(o *options) {
		o.metrics = true
	}
}

func newOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// session holds the mutable bookkeeping of one top-level search call.
type session struct {
	gs              *game.GridState
	stats           Stats
	reachedTerminal bool
}

func newSession(gs *game.GridState) *session {
	return &session{gs: gs}
}

// enter counts a node. Depth stops growing once any terminal has been seen
// during this call.
func (s *session) enter() {
	s.stats.Nodes++
	if !s.reachedTerminal {
		s.stats.DepthReached++
	}
}

func (s *session) terminal() bool {
	if game.IsTerminal(s.gs) {
		s.reachedTerminal = true
		return true
	}
	return false
}

// child evaluates the subtree below action, undoing the action on every
// return path out of eval.
func (s *session) child(action game.Action, agent game.Agent, eval func() int) int {
	undo := game.Play(s.gs, action, agent)
	defer undo()
	return eval()
}

// run executes search against gs and checks that gs comes back untouched.
func run(gs *game.GridState, o options, search func(s *session) (int, game.Action)) (game.Action, Stats) {
	before := gs.Hash()
	metrics := newCollector(o.metrics)

	s := newSession(gs)
	metrics.Start()
	value, action := search(s)
	s.stats.Value = value
	s.stats.Duration = metrics.Complete()

	if after := gs.Hash(); after != before {
		panic(fmt.Sprintf("search left the state modified: hash %d became %d", before, after))
	}
	return action, s.stats
}
