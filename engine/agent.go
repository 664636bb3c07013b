package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"monster/game"
	"monster/utils"

	"golang.org/x/exp/rand"
)

// PlayerAgent picks the player's action from the legal ones.
type PlayerAgent interface {
	ChooseAction(gs *game.GridState, legal []game.Action) (game.Action, error)
}

// HumanAgent reads action codes line by line and re-prompts until one of the
// legal codes is entered.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

func (h *HumanAgent) ChooseAction(gs *game.GridState, legal []game.Action) (game.Action, error) {
	codes := make([]string, len(legal))
	for i, a := range legal {
		codes[i] = fmt.Sprintf("%q", a.String())
	}
	prompt := fmt.Sprintf("Choose your move [%s]: ", strings.Join(codes, ", "))

	for {
		fmt.Fprint(h.out, prompt)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.NoAction, fmt.Errorf("failed to read move: %w", err)
			}
			return game.NoAction, io.ErrUnexpectedEOF
		}

		action, err := game.ParseAction(strings.TrimSpace(h.in.Text()))
		if err == nil && utils.Contains(legal, action) {
			return action, nil
		}
		fmt.Fprintln(h.out, "Not a valid move")
	}
}

// RandomAgent plays uniformly random legal actions.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (r *RandomAgent) ChooseAction(gs *game.GridState, legal []game.Action) (game.Action, error) {
	if len(legal) == 0 {
		return game.NoAction, fmt.Errorf("no legal actions to choose from")
	}
	return legal[r.rng.Intn(len(legal))], nil
}
