package game

import "fmt"

// LegalActions returns the legal actions for agent, in generation order
// up, down, left, right. A direction is open when the neighbouring cell is on
// the board and not walled; for the player each open direction yields the
// move followed by its paired build. The monster can always Stay.
func LegalActions(gs *GridState, agent Agent) []Action {
	from := gs.Agent(agent)

	var actions []Action
	for _, dir := range directions {
		if !gs.open(from.Add(dir.delta)) {
			continue
		}
		switch agent {
		case Player:
			actions = append(actions, dir.move, dir.build)
		case Monster:
			actions = append(actions, dir.move)
		default:
			panic(fmt.Sprintf("unexpected agent %d", agent))
		}
	}

	if agent == Monster {
		actions = append(actions, Stay)
	}
	return actions
}

// NoMoreActions determines whether agent has nothing legal to play.
func NoMoreActions(gs *GridState, agent Agent) bool {
	return len(LegalActions(gs, agent)) == 0
}

func (gs *GridState) open(p Position) bool {
	return gs.InBounds(p) && !gs.IsWall(p)
}
