package game

import (
	"fmt"

	"monster/utils"
)

// Apply plays action for agent on gs in place. The action must be one of
// LegalActions(gs, agent); anything else is a programming error and panics.
func Apply(gs *GridState, action Action, agent Agent) {
	if !utils.Contains(LegalActions(gs, agent), action) {
		panic(fmt.Sprintf("illegal %s action %q at %s", agent, action, gs.Agent(agent)))
	}

	switch {
	case action.IsMove():
		gs.moveBy(agent, action.Delta())
	case action.IsBuild():
		gs.SetWall(gs.player.Add(action.Delta()))
	}

	if agent == Player {
		gs.IncrementMoveCount()
	}
}

// Undo reverses the most recent Apply of the same action by the same agent.
// Calls must unwind in the reverse order of the applies.
func Undo(gs *GridState, action Action, agent Agent) {
	if agent == Player && gs.moveCount == 0 {
		panic(fmt.Sprintf("cannot undo player action %q: move count is already zero", action))
	}

	switch {
	case action.IsMove():
		back := action.Delta().Inverse()
		origin := gs.Agent(agent).Add(back)
		if !gs.InBounds(origin) {
			panic(fmt.Sprintf("cannot undo %s action %q at %s: origin is off the board", agent, action, gs.Agent(agent)))
		}
		// The monster may leave a cell the player walled under it.
		if agent == Player && gs.IsWall(origin) {
			panic(fmt.Sprintf("cannot undo player action %q at %s: origin %s is walled", action, gs.player, origin))
		}
		gs.moveBy(agent, back)
	case action.IsBuild():
		if agent != Player {
			panic(fmt.Sprintf("cannot undo build %q for %s", action, agent))
		}
		wall := gs.player.Add(action.Delta())
		if !gs.IsWall(wall) {
			panic(fmt.Sprintf("cannot undo build %q: no wall at %s", action, wall))
		}
		gs.ClearWall(wall)
	case action == Stay:
		if agent != Monster {
			panic("cannot undo stay for player")
		}
	default:
		panic(fmt.Sprintf("cannot undo action %q", action))
	}

	if agent == Player {
		gs.DecrementMoveCount()
	}
}

// Play applies action and returns the function that undoes it, so callers
// can pair the two with defer.
func Play(gs *GridState, action Action, agent Agent) (undo func()) {
	Apply(gs, action, agent)
	return func() {
		Undo(gs, action, agent)
	}
}

func (gs *GridState) moveBy(agent Agent, d Delta) {
	switch agent {
	case Player:
		gs.MovePlayerBy(d)
	case Monster:
		gs.MoveMonsterBy(d)
	default:
		panic(fmt.Sprintf("unexpected agent %d", agent))
	}
}
