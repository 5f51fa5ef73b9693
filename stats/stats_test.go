package stats

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("panics on a non-positive block size", func(t *testing.T) {
		require.Panics(t, func() { NewCollector(0) })
	})

	t.Run("accumulates records across blocks", func(t *testing.T) {
		c := NewCollector(2)
		for i := 1; i <= 5; i++ {
			c.Add(EpisodeRecord{ID: i, Score: i * 10, MaxCell: 3, Moves: i})
		}
		require.Len(t, c.Records(), 5)
		require.Equal(t, 3, c.Records()[2].ID)
	})
}

func TestWriter(t *testing.T) {
	t.Run("writes episode records as CSV", func(t *testing.T) {
		w, err := NewWriter(t.TempDir())
		require.NoError(t, err)

		records := []EpisodeRecord{
			{ID: 1, Score: 42, MaxCell: 6, Moves: 30, Duration: time.Millisecond},
			{ID: 2, Score: 99, MaxCell: 7, Moves: 51, Duration: 2 * time.Millisecond},
		}
		require.NoError(t, w.WriteEpisodeRecords(records))

		f, err := os.Open(filepath.Join(w.Dir(), "episode_records.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, []string{"id", "score", "max_cell", "moves", "duration"}, rows[0])
		require.Equal(t, []string{"2", "99", "7", "51", "2ms"}, rows[2])
	})
}
