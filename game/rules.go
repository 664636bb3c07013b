package game

// Utility values from the monster's point of view.
const (
	PlayerWin  = -1
	MonsterWin = 1
)

// PlayerHasWon is true once the player carries the gold onto the exit.
func PlayerHasWon(gs *GridState) bool {
	return gs.hasGold && gs.player == gs.exit
}

// MonsterHasWon is true when the player has used the whole move budget or
// the two agents share a cell.
func MonsterHasWon(gs *GridState) bool {
	return gs.moveCount == gs.maxMoves || gs.monster == gs.player
}

// IsTerminal checks for a finished game irrespective of whose turn it is:
// either agent out of actions, or either agent having won.
func IsTerminal(gs *GridState) bool {
	return NoMoreActions(gs, Player) || PlayerHasWon(gs) ||
		NoMoreActions(gs, Monster) || MonsterHasWon(gs)
}

// Utility scores a terminal state. Everything but a player win counts for
// the monster.
func Utility(gs *GridState) int {
	if PlayerHasWon(gs) {
		return PlayerWin
	}
	return MonsterWin
}

// CollectGold picks up the gold when the player stands on it and reports
// whether it was picked up by this call.
func CollectGold(gs *GridState) bool {
	if gs.hasGold || gs.player != gs.gold {
		return false
	}
	gs.SetGoldCollected(true)
	return true
}
