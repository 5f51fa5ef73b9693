package game

import (
	"fmt"
	"strings"
)

// Cells is the number of positions on the 4x4 board:
//
//	|  0 |  1 |  2 |  3 |
//	|  4 |  5 |  6 |  7 |
//	|  8 |  9 | 10 | 11 |
//	| 12 | 13 | 14 | 15 |
const Cells = 16

// MaxRank is the largest tile rank a cell can hold.
const MaxRank = 15

// Slide directions.
const (
	Up    = 0
	Right = 1
	Down  = 2
	Left  = 3
)

// InitialLast is the Last() value before any slide has happened; the placer
// may use every cell during the opening placements.
const InitialLast = 4

// Reward is the score gained by applying an action to the board.
type Reward int

// Illegal is returned by actions that have no effect on the board. It must
// never be accumulated into a score.
const Illegal Reward = -1

// Board is a Threes!-style puzzle position. Cells store tile ranks, not face
// values: rank 0 is empty, ranks 1 and 2 are the basic 1- and 2-tiles, and
// rank r >= 3 is the tile with face value 3*2^(r-3).
//
// Board is a value type; copying it with plain assignment yields an
// independent position.
type Board struct {
	tiles [Cells]int
	hint  int    // next tile announced to the player, 0 before the first draw
	last  int    // direction of the last slide, InitialLast before any slide
	bag   [4]int // remaining 1/2/3 tiles in the current bag, index 0 unused
}

// NewBoard returns an empty board with a full tile bag.
func NewBoard() Board {
	return Board{
		last: InitialLast,
		bag:  [4]int{0, 1, 1, 1},
	}
}

// Cell returns the tile rank at position i.
func (b *Board) Cell(i int) int {
	return b.tiles[i]
}

// SetCell overwrites the tile rank at position i without any slide or
// placement bookkeeping.
func (b *Board) SetCell(i, rank int) {
	b.tiles[i] = rank
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	count := 0
	for _, t := range b.tiles {
		if t == 0 {
			count++
		}
	}
	return count
}

// Hint returns the announced next tile, or 0 if none has been drawn yet.
func (b *Board) Hint() int {
	return b.hint
}

// Last returns the direction of the most recent slide, or InitialLast.
func (b *Board) Last() int {
	return b.last
}

// Bag reports how many tiles of rank t remain in the current bag.
func (b *Board) Bag(t int) int {
	if t < 1 || t > 3 {
		return 0
	}
	return b.bag[t]
}

// MaxCell returns the highest tile rank on the board.
func (b *Board) MaxCell() int {
	max := 0
	for _, t := range b.tiles {
		if t > max {
			max = t
		}
	}
	return max
}

// Score returns the total score of the position: a tile of rank r >= 3 is
// worth 3^(r-2), lower ranks are worth nothing.
func (b *Board) Score() int {
	score := 0
	for _, t := range b.tiles {
		score += tileScore(t)
	}
	return score
}

// slideLines[op] lists each lane of the board in shift order for that
// direction: the cell at the target edge comes first.
var slideLines = [4][4][4]int{
	Up:    {{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15}},
	Right: {{3, 2, 1, 0}, {7, 6, 5, 4}, {11, 10, 9, 8}, {15, 14, 13, 12}},
	Down:  {{12, 8, 4, 0}, {13, 9, 5, 1}, {14, 10, 6, 2}, {15, 11, 7, 3}},
	Left:  {{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15}},
}

// Slide shifts every lane one step toward direction op, merging where the
// leading pair allows it, and returns the score gained. It returns Illegal
// and leaves the board untouched when no lane can move.
func (b *Board) Slide(op int) Reward {
	if op < Up || op > Left {
		return Illegal
	}

	total := Reward(0)
	moved := false
	for _, lane := range slideLines[op] {
		gain, ok := b.slideLane(lane)
		if ok {
			total += gain
			moved = true
		}
	}
	if !moved {
		return Illegal
	}

	b.last = op
	return total
}

// slideLane shifts one lane of four cells, given in shift order. A lane
// moves at the first cell that is empty or merges with its follower; every
// later tile then advances one step.
func (b *Board) slideLane(lane [4]int) (Reward, bool) {
	for i := 0; i < 3; i++ {
		cur := b.tiles[lane[i]]
		next := b.tiles[lane[i+1]]

		if cur == 0 {
			occupied := false
			for j := i + 1; j < 4; j++ {
				if b.tiles[lane[j]] != 0 {
					occupied = true
					break
				}
			}
			if !occupied {
				return 0, false
			}
			b.shift(lane, i)
			return 0, true
		}

		if m := mergedRank(cur, next); m != 0 {
			gain := tileScore(m) - tileScore(cur) - tileScore(next)
			b.tiles[lane[i]] = m
			b.shift(lane, i+1)
			return Reward(gain), true
		}
	}
	return 0, false
}

// shift advances the tail of a lane one step, starting at position from.
func (b *Board) shift(lane [4]int, from int) {
	for j := from; j < 3; j++ {
		b.tiles[lane[j]] = b.tiles[lane[j+1]]
	}
	b.tiles[lane[3]] = 0
}

// mergedRank returns the rank produced by tile b sliding into tile a, or 0
// when the pair does not merge. 1 and 2 combine into a 3; equal ranks of 3
// or more combine upward.
func mergedRank(a, b int) int {
	switch {
	case a == 1 && b == 2, a == 2 && b == 1:
		return 3
	case a >= 3 && a == b && a < MaxRank:
		return a + 1
	}
	return 0
}

func tileScore(rank int) int {
	if rank < 3 {
		return 0
	}
	score := 3
	for r := 3; r < rank; r++ {
		score *= 3
	}
	return score
}

// Place puts tile on the empty cell pos and announces hint as the next tile,
// updating the bag bookkeeping. The bag refills with one tile of each basic
// rank once all three have been drawn.
func (b *Board) Place(pos, tile, hint int) error {
	if pos < 0 || pos >= Cells {
		return fmt.Errorf("cannot place: position %d out of range", pos)
	}
	if b.tiles[pos] != 0 {
		return fmt.Errorf("cannot place: cell %d is occupied", pos)
	}
	if tile < 1 || tile > 3 {
		return fmt.Errorf("cannot place: tile rank %d is not placeable", tile)
	}
	if hint < 1 || hint > 3 {
		return fmt.Errorf("cannot place: hint rank %d is not placeable", hint)
	}

	// The very first placement draws both the tile and the hint from the
	// bag; afterwards the placed tile is the previously announced hint and
	// only the new hint is drawn.
	if b.hint == 0 {
		b.draw(tile)
	}
	b.draw(hint)

	b.tiles[pos] = tile
	b.hint = hint
	return nil
}

func (b *Board) draw(tile int) {
	b.bag[tile]--
	if b.bag[1] <= 0 && b.bag[2] <= 0 && b.bag[3] <= 0 {
		b.bag[1], b.bag[2], b.bag[3] = 1, 1, 1
	}
}

// String renders the board as a 4x4 grid of tile ranks.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			fmt.Fprintf(&sb, "%3d", b.tiles[row*4+col])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
