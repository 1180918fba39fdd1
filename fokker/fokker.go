package fokker

import (
	"github.com/x31eq/regulartemp/hnf"
)

// MaximallyEven returns the length-n sequence whose i-th entry is
// floor((i+2)*o/n) - floor(o/n): the cumulative step counts of the
// maximally even distribution of o generator steps over n scale degrees,
// anchored so the final entry is always o itself. Panics if n <= 0, a
// caller precondition.
func MaximallyEven(n, o int) []int {
	if n <= 0 {
		panic("fokker: n must be positive")
	}
	base := floorDiv(o, n)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = floorDiv((i+2)*o, n) - base
	}

	return out
}

func floorDiv(a, n int) int {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}

	return q
}

// Steps returns the Fokker (maximally even periodicity) block of a rank-r
// mapping at target pitch count n: n vectors of length r, where entry j of
// the i-th vector is the step count of generator j at scale degree i.
// Returns an empty block when n == 0.
//
// A generator whose ET size o_j is at least n, with o_j + c still above n
// (c being the smallest ET size in the mapping), loses its chromatic
// structure under the naive maximally even construction. In that case the
// block folds o_j down by multiples of c to o_j' = o_j + c*k and corrects
// with -k copies of the chromatic scale ME(n, c). The fold is skipped when
// it would drive o_j' negative; there the correction no longer improves on
// the direct construction.
func Steps(mapping hnf.Mapping, n int) [][]int {
	if n == 0 {
		return nil
	}
	r := len(mapping)
	o := make([]int, r)
	for j, et := range mapping {
		o[j] = int(et[0])
	}
	c := o[0]
	for _, v := range o[1:] {
		if v < c {
			c = v
		}
	}

	scales := make([][]int, r)
	for j, oj := range o {
		k := floorDiv(n-oj, c)
		ojPrime := oj + c*k
		if oj >= n && oj+c > n && ojPrime >= 0 {
			mePrime := MaximallyEven(n, ojPrime)
			meC := MaximallyEven(n, c)
			scale := make([]int, n)
			for i := range scale {
				scale[i] = mePrime[i] - k*meC[i]
			}
			scales[j] = scale
		} else {
			scales[j] = MaximallyEven(n, oj)
		}
	}

	block := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, r)
		for j := 0; j < r; j++ {
			row[j] = scales[j][i]
		}
		block[i] = row
	}

	return block
}

// Pitches converts a Fokker block of generator-step counts into cents, by
// taking the dot product of each step vector with the rank-length tuning
// (cents per generator).
func Pitches(block [][]int, tuning []float64) []float64 {
	out := make([]float64, len(block))
	for i, steps := range block {
		var sum float64
		for j, s := range steps {
			sum += float64(s) * tuning[j]
		}
		out[i] = sum
	}

	return out
}
