// Package ntuple implements a linear value function over a 4x4 tile board:
// a set of fixed cell patterns ("tuples"), each backed by a lookup table of
// weights shared across the pattern's board symmetries, trained with a
// backward TD(0) pass over episode trajectories.
package ntuple

import (
	"fmt"

	"github.com/timliao0206/TCG/game"
)

// EmptySlot marks a feature slot that encodes the board's empty-cell count
// instead of a cell's tile rank.
const EmptySlot = -1

// slotBits is the width of one packed slot; it accommodates tile ranks 0
// through 15.
const slotBits = 4

// Feature is an ordered list of board cells (plus at most one EmptySlot)
// defining one lookup-table addressing scheme. Slot order determines bit
// position in the packed index, so the same cells in a different order are a
// different feature. Features are immutable once constructed.
type Feature struct {
	slots []int
}

// NewFeature validates the slot list and returns the feature. Cell indices
// must lie in [0,16) and at most one EmptySlot is allowed.
func NewFeature(slots []int) (Feature, error) {
	if len(slots) == 0 {
		return Feature{}, fmt.Errorf("feature needs at least one slot")
	}
	hasEmpty := false
	for _, s := range slots {
		if s == EmptySlot {
			if hasEmpty {
				return Feature{}, fmt.Errorf("feature allows at most one empty-count slot")
			}
			hasEmpty = true
			continue
		}
		if s < 0 || s >= game.Cells {
			return Feature{}, fmt.Errorf("feature cell index %d out of range [0,%d)", s, game.Cells)
		}
	}

	owned := make([]int, len(slots))
	copy(owned, slots)
	return Feature{slots: owned}, nil
}

// MustFeature is NewFeature for statically known slot lists; it panics on a
// malformed definition.
func MustFeature(slots ...int) Feature {
	f, err := NewFeature(slots)
	if err != nil {
		panic(err)
	}
	return f
}

// Encode packs the board's contents at each slot, in definition order, into
// the feature's pattern index. An EmptySlot contributes the current
// empty-cell count.
func (f Feature) Encode(b *game.Board) int {
	idx := 0
	for _, s := range f.slots {
		idx <<= slotBits
		if s == EmptySlot {
			idx |= b.EmptyCount()
		} else {
			idx |= b.Cell(s)
		}
	}
	return idx
}

// Size returns the number of slots.
func (f Feature) Size() int {
	return len(f.slots)
}

// TableSize returns the number of weight entries a table addressed by this
// feature needs: 16^k for k slots.
func (f Feature) TableSize() int {
	return 1 << (slotBits * len(f.slots))
}

// Hash identifies the shape of the feature: bit i is set iff cell i appears
// in the slot list, and the result is negated when an EmptySlot is present.
// Two features with equal hashes cover the same cells and are treated as
// duplicates during orbit deduplication. The hash is never a table index.
func (f Feature) Hash() int {
	h := 0
	negate := false
	for _, s := range f.slots {
		if s == EmptySlot {
			negate = true
			continue
		}
		h |= 1 << s
	}
	if negate {
		return -h
	}
	return h
}
