// meta/meta.go
package meta

// BOARD_SIZE defines the default side length of the square board.
const BOARD_SIZE = 4

// Default starting cells on the default board, as (row, column).
var (
	MONSTER_START = [2]int{0, 0}
	PLAYER_START  = [2]int{3, 0}
	GOLD_CELL     = [2]int{1, 2}
	EXIT_CELL     = [2]int{3, 0}
)

// MAX_DEPTH is the depth an evaluation cutoff would apply at. The alpha-beta
// search does not consult it and always searches to terminal states.
const MAX_DEPTH = 20

// GAMES defines the number of games per experiment run.
const GAMES = 20
