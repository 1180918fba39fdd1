package hnf

import "fmt"

// Exponent is a signed step count or prime-factor exponent.
type Exponent = int32

// ETMap is a rank-1 mapping: ETMap[i] is the number of generator steps
// approximating prime i.
type ETMap = []Exponent

// Mapping is an ordered sequence of ETMaps of common length d; len(Mapping)
// is the formal rank (before any reduction) of the temperament it
// describes. Row order carries no meaning and is preserved by every
// operation in this module.
type Mapping = []ETMap

// Dimension returns d, the common length of every ETMap in m. It panics if
// m is empty or its columns disagree in length, since both are precondition
// violations rather than recoverable errors.
func Dimension(m Mapping) int {
	if len(m) == 0 {
		panic("hnf: empty mapping has no dimension")
	}
	d := len(m[0])
	for _, col := range m[1:] {
		if len(col) != d {
			panic(fmt.Sprintf("hnf: ragged mapping: column lengths %d and %d", d, len(col)))
		}
	}

	return d
}

// CloneMapping returns a deep copy of m.
func CloneMapping(m Mapping) Mapping {
	out := make(Mapping, len(m))
	for i, col := range m {
		out[i] = append(ETMap(nil), col...)
	}

	return out
}
