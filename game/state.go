package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"monster/meta"
)

// GridState represents the dynamic state of a game: walls, both agents, the
// gold flag and the player's move count. Board size, gold and exit cells are
// fixed at construction.
//
// The mutation primitives do no legality checking; Apply and Undo do.
type GridState struct {
	size      int
	walls     []bool // Row-major wall occupancy
	player    Position
	monster   Position
	hasGold   bool
	moveCount int
	gold      Position
	exit      Position
	maxMoves  int
}

type Option func(gs *GridState)

func WithBoardSize(size int) Option {
	return func(gs *GridState) {
		gs.size = size
	}
}

func WithPlayer(p Position) Option {
	return func(gs *GridState) {
		gs.player = p
	}
}

func WithMonster(p Position) Option {
	return func(gs *GridState) {
		gs.monster = p
	}
}

func WithGold(p Position) Option {
	return func(gs *GridState) {
		gs.gold = p
	}
}

func WithExit(p Position) Option {
	return func(gs *GridState) {
		gs.exit = p
	}
}

// NewGridState initializes a wall-free board. Without options it is the
// default 4x4 layout from the meta package.
func NewGridState(options ...Option) (*GridState, error) {
	gs := &GridState{ // Default values
		size:    meta.BOARD_SIZE,
		player:  fromPair(meta.PLAYER_START),
		monster: fromPair(meta.MONSTER_START),
		gold:    fromPair(meta.GOLD_CELL),
		exit:    fromPair(meta.EXIT_CELL),
	}
	for _, option := range options {
		option(gs)
	}

	if gs.size < 2 {
		return nil, fmt.Errorf("board size must be at least 2, got %d", gs.size)
	}
	named := []struct {
		name string
		pos  Position
	}{
		{"player", gs.player},
		{"monster", gs.monster},
		{"gold", gs.gold},
		{"exit", gs.exit},
	}
	for _, n := range named {
		if !gs.InBounds(n.pos) {
			return nil, fmt.Errorf("%s position %s is outside the %dx%d board", n.name, n.pos, gs.size, gs.size)
		}
	}
	if gs.player == gs.monster {
		return nil, fmt.Errorf("player and monster cannot start on the same cell %s", gs.player)
	}

	gs.walls = make([]bool, gs.size*gs.size)
	gs.maxMoves = 2*gs.size + 1
	return gs, nil
}

func fromPair(rc [2]int) Position {
	return Position{Row: rc[0], Col: rc[1]}
}

// Copy returns a deep copy of the state.
func (gs *GridState) Copy() *GridState {
	wallsCopy := make([]bool, len(gs.walls))
	copy(wallsCopy, gs.walls)

	c := *gs
	c.walls = wallsCopy
	return &c
}

func (gs *GridState) Size() int { return gs.size }
func (gs *GridState) Player() Position { return gs.player }
func (gs *GridState) Monster() Position { return gs.monster }
func (gs *GridState) HasGold() bool { return gs.hasGold }
func (gs *GridState) MoveCount() int { return gs.moveCount }
func (gs *GridState) MaxMoves() int { return gs.maxMoves }
func (gs *GridState) Gold() Position { return gs.gold }
func (gs *GridState) Exit() Position { return gs.exit }

// Agent returns the position of the given agent.
func (gs *GridState) Agent(a Agent) Position {
	switch a {
	case Player:
		return gs.player
	case Monster:
		return gs.monster
	default:
		panic(fmt.Sprintf("unexpected agent %d", a))
	}
}

// InBounds checks that p lies on the board.
func (gs *GridState) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < gs.size && p.Col >= 0 && p.Col < gs.size
}

// IsWall reports whether p holds a wall. Out-of-bounds cells are not walls.
func (gs *GridState) IsWall(p Position) bool {
	if !gs.InBounds(p) {
		return false
	}
	return gs.walls[gs.index(p)]
}

// Walls lists the walled cells in row-major order.
func (gs *GridState) Walls() []Position {
	var walls []Position
	for i, w := range gs.walls {
		if w {
			walls = append(walls, Position{Row: i / gs.size, Col: i % gs.size})
		}
	}
	return walls
}

func (gs *GridState) index(p Position) int {
	return p.Row*gs.size + p.Col
}

func (gs *GridState) SetWall(p Position) {
	gs.walls[gs.index(p)] = true
}

func (gs *GridState) ClearWall(p Position) {
	gs.walls[gs.index(p)] = false
}

func (gs *GridState) MovePlayerBy(d Delta) {
	gs.player = gs.player.Add(d)
}

func (gs *GridState) MoveMonsterBy(d Delta) {
	gs.monster = gs.monster.Add(d)
}

func (gs *GridState) SetGoldCollected(collected bool) {
	gs.hasGold = collected
}

func (gs *GridState) IncrementMoveCount() {
	gs.moveCount++
}

func (gs *GridState) DecrementMoveCount() {
	gs.moveCount--
}

func (gs *GridState) Hash() StateHash {
	hasher := fnv.New64a()

	// Hash agents
	binary.Write(hasher, binary.LittleEndian, int64(gs.player.Row))
	binary.Write(hasher, binary.LittleEndian, int64(gs.player.Col))
	binary.Write(hasher, binary.LittleEndian, int64(gs.monster.Row))
	binary.Write(hasher, binary.LittleEndian, int64(gs.monster.Col))

	// Hash progress
	binary.Write(hasher, binary.LittleEndian, gs.hasGold)
	binary.Write(hasher, binary.LittleEndian, int64(gs.moveCount))

	// Hash walls
	binary.Write(hasher, binary.LittleEndian, gs.walls)

	return StateHash(hasher.Sum64())
}
