package game

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the board as text: W for the monster, G for uncollected gold,
// P for the player and # for walls.
func Render(w io.Writer, gs *GridState) error {
	var b strings.Builder

	b.WriteString(" ")
	for j := 0; j < gs.size; j++ {
		fmt.Fprintf(&b, " %d", j+1)
	}
	b.WriteString("\n")

	separator := " " + strings.Repeat("--", gs.size) + "-\n"
	for i := 0; i < gs.size; i++ {
		b.WriteString(separator)
		fmt.Fprintf(&b, "%d", i+1)
		for j := 0; j < gs.size; j++ {
			b.WriteString("|")
			b.WriteString(gs.mark(Position{Row: i, Col: j}))
		}
		b.WriteString("|\n")
	}
	b.WriteString(separator)

	_, err := io.WriteString(w, b.String())
	return err
}

func (gs *GridState) mark(p Position) string {
	switch {
	case p == gs.monster:
		return "W"
	case p == gs.gold && !gs.hasGold:
		return "G"
	case p == gs.player:
		return "P"
	case gs.IsWall(p):
		return "#"
	default:
		return " "
	}
}
