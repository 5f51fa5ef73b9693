package agent

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/timliao0206/TCG/game"
)

// placementSpaces[last] lists the cells the placer may use after a slide in
// direction last: the edge the tiles slid away from. Before the first slide
// every cell is available.
var placementSpaces = [5][]int{
	game.Up:          {12, 13, 14, 15},
	game.Right:       {0, 4, 8, 12},
	game.Down:        {0, 1, 2, 3},
	game.Left:        {3, 7, 11, 15},
	game.InitialLast: {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// RandomPlacer is the environment: after each slide it drops the announced
// hint tile on a random free cell of the entry edge and draws the next hint
// from the tile bag.
type RandomPlacer struct {
	base
	rng *rand.Rand
}

// NewRandomPlacer builds the placer from cfg; an unset seed falls back to
// the wall clock.
func NewRandomPlacer(cfg Config) *RandomPlacer {
	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = uint64(time.Now().UnixNano())
	}
	name := cfg.Name
	if name == "" {
		name = "place"
	}
	return &RandomPlacer{
		base: base{name: name, role: "placer"},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *RandomPlacer) TakeAction(after *game.Board) game.Action {
	space := placementSpaces[after.Last()]
	cells := make([]int, len(space))
	copy(cells, space)
	p.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	for _, pos := range cells {
		if after.Cell(pos) != 0 {
			continue
		}

		bag := make([]int, 0, 3)
		for t := 1; t <= 3; t++ {
			for i := 0; i < after.Bag(t); i++ {
				bag = append(bag, t)
			}
		}
		p.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})

		tile := after.Hint()
		if tile == 0 {
			tile = bag[len(bag)-1]
			bag = bag[:len(bag)-1]
		}
		hint := bag[len(bag)-1]

		return game.Place{Pos: pos, Tile: tile, Hint: hint}
	}
	return nil
}
