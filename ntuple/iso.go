package ntuple

// Index permutations generating the board's 8-element symmetry group.
// rightRotation[i] is the cell index i maps to under a quarter turn;
// antiDiagonal[i] is its mirror image across the anti-diagonal.
var (
	rightRotation = [16]int{12, 8, 4, 0, 13, 9, 5, 1, 14, 10, 6, 2, 15, 11, 7, 3}
	antiDiagonal  = [16]int{15, 11, 7, 3, 14, 10, 6, 2, 13, 9, 5, 1, 12, 8, 4, 0}
)

// Orbit returns the distinct symmetric variants of base: four rotations,
// then the reflection and its four rotations, deduplicated by shape hash
// with the first occurrence kept. A pattern with no self-symmetry yields 8
// variants; self-symmetric patterns yield fewer. All variants share one
// weight table.
func Orbit(base Feature) []Feature {
	variants := make([]Feature, 0, 8)

	cur := base
	for i := 0; i < 4; i++ {
		cur = permute(cur, rightRotation)
		variants = append(variants, cur)
	}

	cur = permute(cur, antiDiagonal)
	for i := 0; i < 4; i++ {
		variants = append(variants, cur)
		cur = permute(cur, rightRotation)
	}

	seen := make(map[int]bool, len(variants))
	orbit := make([]Feature, 0, len(variants))
	for _, v := range variants {
		h := v.Hash()
		if seen[h] {
			continue
		}
		seen[h] = true
		orbit = append(orbit, v)
	}
	return orbit
}

// permute maps every cell slot through matching. An EmptySlot is dropped
// during mapping and re-attached at the end, so every variant of a feature
// with an empty-count slot keeps exactly one.
func permute(f Feature, matching [16]int) Feature {
	slots := make([]int, 0, len(f.slots))
	hasEmpty := false
	for _, s := range f.slots {
		if s == EmptySlot {
			hasEmpty = true
			continue
		}
		slots = append(slots, matching[s])
	}
	if hasEmpty {
		slots = append(slots, EmptySlot)
	}
	return Feature{slots: slots}
}
