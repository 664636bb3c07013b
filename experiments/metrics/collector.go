package metrics

import (
	"time"
)

// MoveMetric records one monster search.
type MoveMetric struct {
	Step     int    // Player move count when the search ran
	Action   string // Chosen monster action code
	Nodes    int
	Depth    int
	Pruned   int
	Value    int
	Duration time.Duration
}

// GameMetric summarises one game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int // Player moves
}

// AgentConfig describes the monster searcher and board used in a game.
type AgentConfig struct {
	ID        int
	Searcher  string
	BoardSize int
	Seed      uint64
}

type Collector interface {
	Start()
	AddMove(move MoveMetric)
	Moves() []MoveMetric
	Complete(winner string, totalMoves int) GameMetric
}

type collector struct {
	startTime time.Time
	moves     []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.moves = nil
}

func (c *collector) AddMove(move MoveMetric) {
	c.moves = append(c.moves, move)
}

func (c *collector) Moves() []MoveMetric {
	return c.moves
}

func (c *collector) Complete(winner string, totalMoves int) GameMetric {
	end := time.Now()
	return GameMetric{
		Winner:     winner,
		StartTime:  c.startTime,
		EndTime:    end,
		Duration:   end.Sub(c.startTime),
		TotalMoves: totalMoves,
	}
}
