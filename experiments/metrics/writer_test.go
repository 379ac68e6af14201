package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	t.Run("agents", func(t *testing.T) {
		require.NoError(t, w.WriteAgents([]string{"expectimax:depth=2", "greedy"}))

		rows := readCSV(t, filepath.Join(w.Dir(), "agents.csv"))
		require.Equal(t, [][]string{{"id", "spec"}, {"0", "expectimax:depth=2"}, {"1", "greedy"}}, rows)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		records := []GameRecord{{
			ID:    3,
			Light: 1,
			Dark:  0,
			GameMetric: GameMetric{
				Winner:     1,
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 80,
				Passes:     12,
				Captures:   [2]int{4, 2},
			},
		}}

		require.NoError(t, w.WriteGameRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"3", "1", "0", "0", "1", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "80", "12", "4", "2"}, rows[1])
	})

	t.Run("move records", func(t *testing.T) {
		records := []MoveRecord{{
			Game: 3,
			MoveMetric: MoveMetric{
				Step:   7,
				Player: 1,
				Dice:   2,
				Move:   14,
				Hash:   255,
				SearchMetric: SearchMetric{
					Depth:       3,
					Duration:    time.Millisecond,
					ChanceNodes: 10,
					Leaves:      50,
					Wins:        1,
				},
			},
		}}

		require.NoError(t, w.WriteMoveRecords(records))

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "player", "dice", "move", "hash", "depth", "duration", "chance_nodes", "leaves", "wins"}, rows[0])
		require.Equal(t, []string{"3", "7", "1", "2", "14", "ff", "3", "1ms", "10", "50", "1"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(2)
	c.AddChanceNode()
	c.AddLeaf()
	c.AddLeaf()
	c.AddWin()

	m := c.Complete()
	require.Equal(t, 2, m.Depth)
	require.Equal(t, 1, m.ChanceNodes)
	require.Equal(t, 2, m.Leaves)
	require.Equal(t, 1, m.Wins)

	c.Start(1)
	require.Zero(t, c.Complete().Leaves, "Start should reset the counters")
	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete())
}
