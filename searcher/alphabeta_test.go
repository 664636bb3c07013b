package searcher

import (
	"monster/game"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests the monster's search on boards small enough to enumerate:
- terminal root: no action, utility value
- first resolving path: depth counter freezes at the first terminal
- state restoration: the shared state is untouched after a search
- fidelity: alpha-beta agrees with plain minimax on value and action
- stats: reset per call, no pruning in minimax
*/

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func newState(t *testing.T, size int, player, monster, gold, exit game.Position) *game.GridState {
	t.Helper()
	gs, err := game.NewGridState(
		game.WithBoardSize(size),
		game.WithPlayer(player),
		game.WithMonster(monster),
		game.WithGold(gold),
		game.WithExit(exit),
	)
	require.NoError(t, err)
	return gs
}

// twoByTwo has the monster top-left and the player bottom-right on its exit.
func twoByTwo(t *testing.T) *game.GridState {
	return newState(t, 2, pos(1, 1), pos(0, 0), pos(0, 1), pos(1, 1))
}

func TestAlphaBetaFindNextMove(t *testing.T) {
	t.Run("terminal root", func(t *testing.T) {
		gs := twoByTwo(t)
		gs.SetGoldCollected(true)

		action, stats := NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, game.NoAction, action, "Terminal root should have no action")
		require.Equal(t, game.PlayerWin, stats.Value)
		require.Equal(t, 1, stats.Nodes)
		require.Equal(t, 1, stats.DepthReached)
		require.Zero(t, stats.Pruned)
	})

	t.Run("player cannot win without the gold", func(t *testing.T) {
		gs := twoByTwo(t)

		action, stats := NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, game.MoveDown, action, "First monster action already wins")
		require.Equal(t, game.MonsterWin, stats.Value)
		require.Equal(t, 11, stats.DepthReached,
			"Depth should count nodes down the first path until the move budget runs out")
		require.Equal(t, 56, stats.Nodes)
		require.Equal(t, 32, stats.Pruned, "Each cutoff skips the siblings after the deciding action")
	})

	t.Run("monster steps onto an adjacent player", func(t *testing.T) {
		gs := newState(t, 3, pos(1, 1), pos(0, 1), pos(2, 2), pos(2, 0))
		gs.SetGoldCollected(true)

		action, stats := NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, game.MonsterWin, stats.Value)
		require.Equal(t, game.MoveDown, action, "Monster action order starts with up, which is off the board")
		require.Equal(t, 2, stats.Nodes, "Root plus the capturing child")
		require.Equal(t, 2, stats.DepthReached)
		require.Equal(t, 3, stats.Pruned, "Left, right and stay are skipped after the capture")
	})

	t.Run("default board", func(t *testing.T) {
		gs, err := game.NewGridState()
		require.NoError(t, err)

		action, stats := NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, game.MoveDown, action)
		require.Equal(t, "s", action.String())
		require.Equal(t, game.MonsterWin, stats.Value)
		require.Equal(t, 6, stats.DepthReached)
		require.Equal(t, 977263, stats.Nodes)
		require.Equal(t, 343583, stats.Pruned)
	})

	t.Run("default board after the player steps up", func(t *testing.T) {
		gs, err := game.NewGridState()
		require.NoError(t, err)
		game.Apply(gs, game.MoveUp, game.Player)

		action, stats := NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, game.MoveDown, action)
		require.Equal(t, 3, stats.DepthReached)
		require.Equal(t, 350734, stats.Nodes)
		require.Equal(t, 145629, stats.Pruned)
	})

	t.Run("state is restored", func(t *testing.T) {
		gs := newState(t, 3, pos(2, 0), pos(0, 2), pos(1, 1), pos(2, 0))
		gs.SetWall(pos(0, 0))
		gs.IncrementMoveCount()
		gs.IncrementMoveCount()
		before := gs.Copy()

		NewAlphaBeta().FindNextMove(gs)

		require.Equal(t, before, gs, "Search should leave the state as it found it")
	})

	t.Run("stats are reset for each call", func(t *testing.T) {
		gs := twoByTwo(t)
		ab := NewAlphaBeta()

		action1, stats1 := ab.FindNextMove(gs)
		action2, stats2 := ab.FindNextMove(gs)

		require.Equal(t, action1, action2)
		require.Equal(t, stats1, stats2, "Repeated searches should report identical stats")
	})

	t.Run("metrics", func(t *testing.T) {
		gs := twoByTwo(t)

		_, stats := NewAlphaBeta().FindNextMove(gs)
		require.Zero(t, stats.Duration, "Duration is only collected with metrics")

		_, stats = NewAlphaBeta(WithMetrics()).FindNextMove(gs)
		require.GreaterOrEqual(t, int64(stats.Duration), int64(0))
	})
}

func TestSearchFidelity(t *testing.T) {
	compare := func(t *testing.T, gs *game.GridState) {
		t.Helper()
		abAction, abStats := NewAlphaBeta().FindNextMove(gs)
		mmAction, mmStats := NewMinimax().FindNextMove(gs)

		require.Equal(t, mmStats.Value, abStats.Value, "Pruning should not change the value")
		require.Equal(t, mmAction, abAction, "Pruning should not change the chosen action")
		require.LessOrEqual(t, abStats.Nodes, mmStats.Nodes, "Pruning should not visit more nodes")
		require.Zero(t, mmStats.Pruned, "Minimax never prunes")
		require.GreaterOrEqual(t, abStats.Pruned, 0)
	}

	t.Run("every 2x2 placement", func(t *testing.T) {
		var cells []game.Position
		for r := 0; r < 2; r++ {
			for c := 0; c < 2; c++ {
				cells = append(cells, pos(r, c))
			}
		}

		for _, player := range cells {
			for _, monster := range cells {
				if player == monster {
					continue
				}
				for _, hasGold := range []bool{false, true} {
					gs := newState(t, 2, player, monster, pos(0, 1), pos(1, 0))
					gs.SetGoldCollected(hasGold)
					compare(t, gs)
				}
			}
		}
	})

	t.Run("3x3 endgames", func(t *testing.T) {
		placements := []struct {
			player  game.Position
			monster game.Position
		}{
			{pos(2, 0), pos(0, 2)},
			{pos(1, 1), pos(0, 0)},
			{pos(0, 2), pos(2, 2)},
			{pos(2, 1), pos(0, 1)},
		}

		for _, p := range placements {
			for _, hasGold := range []bool{false, true} {
				gs := newState(t, 3, p.player, p.monster, pos(1, 1), pos(2, 2))
				gs.SetGoldCollected(hasGold)
				// Leave three player moves in the budget
				for gs.MoveCount() < gs.MaxMoves()-3 {
					gs.IncrementMoveCount()
				}
				compare(t, gs)
			}
		}
	})

	t.Run("2x2 with a wall", func(t *testing.T) {
		gs := newState(t, 2, pos(1, 1), pos(0, 0), pos(0, 1), pos(1, 1))
		gs.SetWall(pos(1, 0))
		compare(t, gs)
	})
}
