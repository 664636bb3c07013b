package game

import "fmt"

// Agent identifies which side is acting.
type Agent int

const (
	Player Agent = iota
	Monster
)

func (a Agent) String() string {
	switch a {
	case Player:
		return "player"
	case Monster:
		return "monster"
	default:
		return fmt.Sprintf("Agent(%d)", int(a))
	}
}

// Position is a (row, column) cell on the board. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

// Delta is a one-step translation on the board.
type Delta struct {
	Row int
	Col int
}

func (p Position) Add(d Delta) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func (d Delta) Inverse() Delta {
	return Delta{Row: -d.Row, Col: -d.Col}
}

type StateHash uint64
