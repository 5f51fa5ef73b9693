package game

// Action is a single move applied to the board: either a slide by the
// player or a tile placement by the environment. Apply returns the score
// gained, or Illegal when the action has no effect.
type Action interface {
	Apply(b *Board) Reward
}

// Slide is the player's action: shift the board toward Dir.
type Slide struct {
	Dir int
}

func (s Slide) Apply(b *Board) Reward {
	return b.Slide(s.Dir)
}

// Place is the environment's action: put Tile on cell Pos and announce Hint
// as the next tile.
type Place struct {
	Pos  int
	Tile int
	Hint int
}

func (p Place) Apply(b *Board) Reward {
	if err := b.Place(p.Pos, p.Tile, p.Hint); err != nil {
		return Illegal
	}
	return 0
}
