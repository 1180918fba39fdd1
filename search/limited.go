package search

import (
	"math"

	"github.com/x31eq/regulartemp/hnf"
)

// LimitedMappings returns every ETMap of the prime limit's dimension whose
// first coordinate is nNotes and whose squared Cangwu badness (at
// parameter ek, in cents/octave) does not exceed the cap implied by bmax
// (the cents cutoff). pitches must already be normalised so pitches[0] ==
// 1200 (GetEqualTemperaments does this; LimitedMappings itself works in
// whatever units pitches is given, converting to octaves internally).
//
// Emission order is the lexicographic order of the search tree: the walk
// is a pruned depth-first recursion over coordinates 1..d-1, with tighter
// bounds at each depth derived from the Cangwu ellipsoid; this makes the
// result deterministic for fixed inputs.
func LimitedMappings(nNotes hnf.Exponent, ek, bmax float64, pitches []float64) []hnf.ETMap {
	d := len(pitches)
	ek /= 1200.0
	bmax /= 1200.0
	octavePitches := make([]float64, d)
	for i, p := range pitches {
		octavePitches[i] = p / 1200.0
	}
	cap := bmax * bmax * float64(d) / (octavePitches[0] * octavePitches[0])
	epsilon2 := ek * ek / (1 + ek*ek)

	var result []hnf.ETMap
	var recurse func(mapping hnf.ETMap, tot, tot2 float64)
	recurse = func(mapping hnf.ETMap, tot, tot2 float64) {
		i := len(mapping)
		weightedSize := float64(mapping[i-1]) / octavePitches[i-1]
		tot += weightedSize
		tot2 += weightedSize * weightedSize
		lambda := 1.0 - epsilon2

		if i == d {
			result = append(result, append(hnf.ETMap(nil), mapping...))
			return
		}

		toti := tot * lambda / (float64(i) + epsilon2)
		error2 := tot2 - tot*toti
		if error2 >= cap {
			return
		}
		deficit := math.Sqrt(float64(i+1) * (cap - error2) / (float64(i) + epsilon2))
		target := octavePitches[i]
		xmin := target * (toti - deficit)
		xmax := target * (toti + deficit)
		for guess := int64(math.Ceil(xmin)); guess <= int64(math.Floor(xmax)); guess++ {
			next := append(append(hnf.ETMap(nil), mapping...), hnf.Exponent(guess))
			recurse(next, tot, tot2)
		}
	}

	recurse(hnf.ETMap{nNotes}, 0, 0)

	return result
}
