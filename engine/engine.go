package engine

import (
	"monster/experiments/metrics"
	"monster/game"
)

type Engine interface {
	// Run plays a game till one side wins
	Run() (Result, error)
}

type Result struct {
	Winner      game.Agent
	PlayerMoves int
	Game        metrics.GameMetric
	Moves       []metrics.MoveMetric
}
