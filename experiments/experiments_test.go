package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"monster/game"
	"monster/meta"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("writes one row per game", func(t *testing.T) {
		root := t.TempDir()

		err := Run(Config{Games: 2, Seed: 3, BoardSize: 2, Searcher: "alphabeta", OutDir: root})
		require.NoError(t, err)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 1, "Expected a single timestamped folder")

		dir := filepath.Join(root, entries[0].Name())
		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(dir, name))
		}
	})

	t.Run("records the default board size", func(t *testing.T) {
		root := t.TempDir()

		err := Run(Config{Games: 1, Seed: 1, Searcher: "alphabeta", OutDir: root})
		require.NoError(t, err)

		entries, err := os.ReadDir(root)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		f, err := os.Open(filepath.Join(root, entries[0].Name(), "agent_configs.csv"))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Equal(t, []string{"1", "alphabeta", strconv.Itoa(meta.BOARD_SIZE), "1"}, rows[1],
			"Unset board size should be stored as the default")
	})

	t.Run("minimax is limited to small boards", func(t *testing.T) {
		err := Run(Config{Games: 1, Searcher: "minimax", OutDir: t.TempDir()})
		require.Error(t, err, "Default board is too large for minimax")

		err = Run(Config{Games: 1, BoardSize: MAX_MINIMAX_SIZE + 1, Searcher: "minimax", OutDir: t.TempDir()})
		require.Error(t, err)
	})

	t.Run("minimax on a small board", func(t *testing.T) {
		err := Run(Config{Games: 1, BoardSize: 2, Searcher: "minimax", OutDir: t.TempDir()})
		require.NoError(t, err)
	})

	t.Run("unknown searcher", func(t *testing.T) {
		err := Run(Config{Games: 1, Searcher: "mcts", OutDir: t.TempDir()})
		require.Error(t, err)
	})

	t.Run("no games", func(t *testing.T) {
		err := Run(Config{Games: 0, Searcher: "minimax", OutDir: t.TempDir()})
		require.Error(t, err)
	})
}

func TestLayoutFor(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5} {
		gs, err := game.NewGridState(LayoutFor(n)...)
		require.NoError(t, err, "Layout should be valid for size %d", n)
		require.Equal(t, n, gs.Size())
		require.Equal(t, gs.Exit(), gs.Player(), "Player starts on the exit")
		require.False(t, game.IsTerminal(gs), "Layout should not start finished")
	}
}
