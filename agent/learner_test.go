package agent

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timliao0206/TCG/game"
)

// testPatterns keeps agent tests light; the default 6-tuple tables are
// large.
var testPatterns = [][]int{{0, 1}, {4, 5}}

func newTestNTuple(t *testing.T, cfg Config) *NTuple {
	t.Helper()
	a, err := NewNTupleWithPatterns(cfg, testPatterns)
	require.NoError(t, err)
	return a
}

func TestNewNTuple(t *testing.T) {
	t.Run("names and roles the agent", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.1})
		require.Equal(t, "ntuple", a.Name())
		require.Equal(t, "slider", a.Role())
	})

	t.Run("rejects contradictory init sizes", func(t *testing.T) {
		_, err := NewNTuple(Config{Init: []int{256}})
		require.Error(t, err)
	})
}

func TestNTupleTakeAction(t *testing.T) {
	t.Run("breaks ties by direction order", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.1})
		a.OpenEpisode("")

		// All weights zero and every slide rewards 0: first direction wins
		b := game.NewBoard()
		b.SetCell(5, 1)

		require.Equal(t, game.Slide{Dir: game.Up}, a.TakeAction(&b))
	})

	t.Run("prefers the higher combined score", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.1})
		a.OpenEpisode("")

		// Left merges two rank-4 tiles for reward 9; with zero weights the
		// immediate reward decides
		b := game.NewBoard()
		b.SetCell(0, 4)
		b.SetCell(1, 4)
		b.SetCell(4, 1)
		b.SetCell(8, 2)

		require.Equal(t, game.Slide{Dir: game.Left}, a.TakeAction(&b))
	})

	t.Run("records every decision point including the terminal one", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.1})
		a.OpenEpisode("")

		b := game.NewBoard()
		b.SetCell(5, 1)
		require.NotNil(t, a.TakeAction(&b))
		require.Equal(t, 1, a.learner.Len())

		stuck := stuckBoard()
		require.Nil(t, a.TakeAction(&stuck))
		require.Equal(t, 2, a.learner.Len(), "a terminal decision point is still recorded")
	})

	t.Run("close on an empty trajectory is a no-op", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.1})
		a.OpenEpisode("")
		require.NotPanics(t, func() { a.CloseEpisode("") })
	})
}

func TestNTupleLearning(t *testing.T) {
	t.Run("a rewarding episode raises the state's estimate", func(t *testing.T) {
		a := newTestNTuple(t, Config{Alpha: 0.5})
		a.OpenEpisode("")

		// Left merges the two rank-3 tiles for a positive reward
		b := game.NewBoard()
		b.SetCell(0, 3)
		b.SetCell(1, 3)

		action := a.TakeAction(&b)
		require.Equal(t, game.Slide{Dir: game.Left}, action)

		after := b
		require.NotEqual(t, game.Illegal, action.Apply(&after))
		require.NotNil(t, a.TakeAction(&after))
		a.CloseEpisode("")

		require.Positive(t, a.Network().Evaluate(&b),
			"the pre-move state's estimate should move toward its reward")
	})
}

func TestNTuplePersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.bin")

	trained, err := NewNTupleWithPatterns(Config{Alpha: 0.5, Save: path}, testPatterns)
	require.NoError(t, err)

	b := game.NewBoard()
	b.SetCell(0, 3)
	b.SetCell(1, 3)

	trained.OpenEpisode("")
	action := trained.TakeAction(&b)
	require.NotNil(t, action)
	after := b
	require.NotEqual(t, game.Illegal, action.Apply(&after))
	require.NotNil(t, trained.TakeAction(&after))
	trained.CloseEpisode("")
	trained.Close()

	restored, err := NewNTupleWithPatterns(Config{Alpha: 0.5, Load: path}, testPatterns)
	require.NoError(t, err)

	boards := []game.Board{game.NewBoard(), b}
	for _, board := range boards {
		require.Equal(t, trained.Network().Evaluate(&board), restored.Network().Evaluate(&board))
	}
}
