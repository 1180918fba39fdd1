package hnf

// Key returns the canonical identifier for the temperament class whose
// column lattice is spanned by m: the Hermite normal form's columns,
// traversed from the last to the first, each column contributing only the
// entries from its own position onward (the always-zero prefix above each
// pivot is discarded). Two mappings spanning the same lattice produce
// identical keys regardless of how they were obtained.
func Key(m Mapping) ETMap {
	reduced := HermiteNormalForm(m)
	var key ETMap
	for i := len(reduced) - 1; i >= 0; i-- {
		key = append(key, reduced[i][i:]...)
	}

	return key
}

// Rank returns the number of non-zero columns in the Hermite normal form of
// m, i.e. the true rank of the lattice it spans (after discarding any
// columns linearly dependent on the rest).
func Rank(m Mapping) int {
	reduced := HermiteNormalForm(m)
	rank := 0
	for _, col := range reduced {
		for _, v := range col {
			if v != 0 {
				rank++
				break
			}
		}
	}

	return rank
}
