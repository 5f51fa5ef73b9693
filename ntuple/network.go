package ntuple

import (
	"fmt"

	"github.com/timliao0206/TCG/game"
)

// group is one feature group: the symmetry orbit of a base feature and the
// single weight table shared by every orbit member.
type group struct {
	orbit []Feature
	table []float64
}

// Network is an ensemble of feature groups forming a linear value function:
// evaluating a board sums one table lookup per (group, variant) pair.
type Network struct {
	groups   []group
	variants int // total orbit members across all groups
}

// NewNetwork builds a network from base features, one group per feature.
// sizes, when non-nil, gives the configured table size per group and must
// agree with each feature's natural 16^k size; a mismatch is a construction
// error.
func NewNetwork(bases []Feature, sizes []int) (*Network, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("network needs at least one feature group")
	}
	if sizes != nil && len(sizes) != len(bases) {
		return nil, fmt.Errorf("got %d table sizes for %d feature groups", len(sizes), len(bases))
	}

	n := &Network{groups: make([]group, 0, len(bases))}
	for i, base := range bases {
		want := base.TableSize()
		if sizes != nil && sizes[i] != want {
			return nil, fmt.Errorf("group %d: configured table size %d, feature needs %d", i, sizes[i], want)
		}
		orbit := Orbit(base)
		n.groups = append(n.groups, group{
			orbit: orbit,
			table: make([]float64, want),
		})
		n.variants += len(orbit)
	}
	return n, nil
}

// Variants returns the total number of (group, variant) pairs; evaluation
// sums this many table lookups.
func (n *Network) Variants() int {
	return n.variants
}

// Evaluate returns the value estimate for b: the sum over every group and
// every symmetric variant of the group's table entry addressed by that
// variant. It never mutates the network.
func (n *Network) Evaluate(b *game.Board) float64 {
	sum := 0.0
	for gi := range n.groups {
		g := &n.groups[gi]
		for _, f := range g.orbit {
			sum += g.table[f.Encode(b)]
		}
	}
	return sum
}

// Update nudges every table entry addressed by b toward target: each
// (group, variant) pair adds the same delta, alpha/Variants() times the TD
// error, to its entry. The accumulation is sequential and in place, so when
// two variants of one group address the same entry it is incremented twice.
// Whether that overlap should instead collapse to one increment is an open
// point in the reference update rule; this implementation reproduces the
// reference behavior.
func (n *Network) Update(target float64, b *game.Board, alpha float64) {
	delta := alpha / float64(n.variants) * (target - n.Evaluate(b))
	for gi := range n.groups {
		g := &n.groups[gi]
		for _, f := range g.orbit {
			g.table[f.Encode(b)] += delta
		}
	}
}
