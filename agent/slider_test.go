package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timliao0206/TCG/game"
)

// stuckBoard returns a full board with no adjacent mergeable pair.
func stuckBoard() game.Board {
	b := game.NewBoard()
	for i := 0; i < game.Cells; i++ {
		row, col := i/4, i%4
		if (row+col)%2 == 0 {
			b.SetCell(i, 1)
		} else {
			b.SetCell(i, 4)
		}
	}
	return b
}

func TestRandomSlider(t *testing.T) {
	t.Run("plays a legal slide", func(t *testing.T) {
		cfg, err := ParseConfig("seed=7")
		require.NoError(t, err)
		s := NewRandomSlider(cfg)

		b := game.NewBoard()
		b.SetCell(5, 1)

		action := s.TakeAction(&b)
		require.NotNil(t, action)
		require.NotEqual(t, game.Illegal, action.Apply(&b))
	})

	t.Run("returns nil when stuck", func(t *testing.T) {
		cfg, err := ParseConfig("seed=7")
		require.NoError(t, err)
		s := NewRandomSlider(cfg)

		b := stuckBoard()
		require.Nil(t, s.TakeAction(&b))
	})
}

func TestGreedySlider(t *testing.T) {
	t.Run("picks the highest immediate reward", func(t *testing.T) {
		s := NewGreedySlider(Config{})

		// Left merges two rank-4 tiles (reward 9), up merges 1 and 2
		// further down the first column (reward 3)
		b := game.NewBoard()
		b.SetCell(0, 4)
		b.SetCell(1, 4)
		b.SetCell(4, 1)
		b.SetCell(8, 2)

		require.Equal(t, game.Slide{Dir: game.Left}, s.TakeAction(&b))
	})

	t.Run("breaks ties by direction order", func(t *testing.T) {
		s := NewGreedySlider(Config{})

		// A lone center tile slides anywhere for reward 0
		b := game.NewBoard()
		b.SetCell(5, 1)

		require.Equal(t, game.Slide{Dir: game.Up}, s.TakeAction(&b))
	})

	t.Run("returns nil when stuck", func(t *testing.T) {
		s := NewGreedySlider(Config{})
		b := stuckBoard()
		require.Nil(t, s.TakeAction(&b))
	})
}

func TestRestrictedGreedySlider(t *testing.T) {
	t.Run("prefers right and down", func(t *testing.T) {
		s := NewRestrictedGreedySlider(Config{})

		b := game.NewBoard()
		b.SetCell(5, 1)

		require.Equal(t, game.Slide{Dir: game.Right}, s.TakeAction(&b))
	})

	t.Run("falls back to up or left when forced", func(t *testing.T) {
		s := NewRestrictedGreedySlider(Config{})

		// Bottom-right corner tile: right and down cannot move
		b := game.NewBoard()
		b.SetCell(15, 1)

		action := s.TakeAction(&b)
		require.NotNil(t, action)
		slide, ok := action.(game.Slide)
		require.True(t, ok)
		require.Contains(t, []int{game.Up, game.Left}, slide.Dir)
	})

	t.Run("returns nil when stuck", func(t *testing.T) {
		s := NewRestrictedGreedySlider(Config{})
		b := stuckBoard()
		require.Nil(t, s.TakeAction(&b))
	})
}

func TestRandomPlacer(t *testing.T) {
	t.Run("uses any cell before the first slide", func(t *testing.T) {
		cfg, err := ParseConfig("seed=11")
		require.NoError(t, err)
		p := NewRandomPlacer(cfg)

		b := game.NewBoard()
		action := p.TakeAction(&b)
		require.NotNil(t, action)

		place, ok := action.(game.Place)
		require.True(t, ok)
		require.NotEqual(t, game.Illegal, action.Apply(&b))
		require.Equal(t, place.Tile, b.Cell(place.Pos))
	})

	t.Run("places on the entry edge after a slide", func(t *testing.T) {
		cfg, err := ParseConfig("seed=11")
		require.NoError(t, err)
		p := NewRandomPlacer(cfg)

		b := game.NewBoard()
		require.NoError(t, b.Place(8, 1, 2))
		require.NotEqual(t, game.Illegal, b.Slide(game.Up))

		action := p.TakeAction(&b)
		require.NotNil(t, action)
		place := action.(game.Place)
		require.Contains(t, []int{12, 13, 14, 15}, place.Pos,
			"after an up slide tiles enter from the bottom row")
	})

	t.Run("places the announced hint tile", func(t *testing.T) {
		cfg, err := ParseConfig("seed=3")
		require.NoError(t, err)
		p := NewRandomPlacer(cfg)

		b := game.NewBoard()
		first := p.TakeAction(&b).(game.Place)
		require.NotEqual(t, game.Illegal, first.Apply(&b))
		require.Equal(t, first.Hint, b.Hint())

		second := p.TakeAction(&b).(game.Place)
		require.Equal(t, b.Hint(), second.Tile)
	})

	t.Run("returns nil on a full edge", func(t *testing.T) {
		cfg, err := ParseConfig("seed=11")
		require.NoError(t, err)
		p := NewRandomPlacer(cfg)

		b := stuckBoard()
		require.Nil(t, p.TakeAction(&b))
	})
}
