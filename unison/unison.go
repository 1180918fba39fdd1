package unison

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// singularityTolerance guards the "numerically invertible" check below: a
// determinant smaller than this in magnitude is treated as singular
// rather than risking a wildly inaccurate inverse.
const singularityTolerance = 1e-9

// OnlyUnisonVector returns the commatic unison vector of a codimension-1
// mapping: the unique (up to sign) prime-space interval every row of m
// sends to zero generator steps. Returns ErrNoUnisonVector if m's rank is
// not exactly d-1, or if the augmented matrix is singular for every
// candidate column (which should not happen for a genuine codimension-1
// mapping).
//
// The algorithm: form the d x d matrix S whose columns are a
// single standard basis vector e_k prepended to m's columns; for the first
// k where S is invertible, the unison vector is the first row of
// adj(S) = det(S) * S^-1, rounded to the nearest integer. This works for
// any k because A * adj(A) = det(A) * I holds regardless of A's contents:
// row 0 of adj(S) is orthogonal to every column of S except column 0, and
// columns 1..d-1 of S are exactly m's rows — so row 0 of adj(S) is
// orthogonal to all of them, which is precisely the unison-vector
// condition.
func OnlyUnisonVector(m hnf.Mapping) (hnf.ETMap, error) {
	r := len(m)
	if r == 0 {
		return nil, ErrNoUnisonVector
	}
	d := hnf.Dimension(m)
	if r != d-1 {
		return nil, ErrNoUnisonVector
	}

	for k := 0; k < d; k++ {
		s := mat.NewDense(d, d, nil)
		s.Set(k, 0, 1)
		for j, col := range m {
			for i, exp := range col {
				s.Set(i, j+1, float64(exp))
			}
		}

		var lu mat.LU
		lu.Factorize(s)
		det := lu.Det()
		if math.Abs(det) < singularityTolerance {
			continue
		}

		var inv mat.Dense
		if err := inv.Inverse(s); err != nil {
			continue
		}

		uv := make(hnf.ETMap, d)
		for i := 0; i < d; i++ {
			uv[i] = hnf.Exponent(math.Round(inv.At(0, i) * det))
		}

		return uv, nil
	}

	return nil, ErrNoUnisonVector
}

// TempersOut reports whether every row of m sends interval to zero
// generator steps: dot(m[j], interval) == 0 for every j. The dot product
// widens to int64 so large ET sizes cannot overflow it.
func TempersOut(m hnf.Mapping, interval hnf.ETMap) bool {
	d := hnf.Dimension(m)
	if len(interval) != d {
		panic("unison: interval dimension does not match mapping")
	}
	for _, row := range m {
		var dot int64
		for i, exp := range row {
			dot += int64(exp) * int64(interval[i])
		}
		if dot != 0 {
			return false
		}
	}

	return true
}

// GetETsTemperingOut filters candidates to those that temper out uv:
// whichever equal temperaments share this comma.
func GetETsTemperingOut(uv hnf.ETMap, candidates []hnf.ETMap) []hnf.ETMap {
	out := make([]hnf.ETMap, 0)
	for _, et := range candidates {
		if TempersOut(hnf.Mapping{et}, uv) {
			out = append(out, et)
		}
	}

	return out
}

// NormalizePositive negates uv if its total pitch width (sum pitches[i] *
// uv[i]) is negative, giving the canonical "positive comma" orientation.
func NormalizePositive(limit primelimit.PrimeLimit, uv hnf.ETMap) hnf.ETMap {
	var width float64
	for i, exp := range uv {
		width += limit.Pitches[i] * float64(exp)
	}
	if width >= 0 {
		return uv
	}

	out := make(hnf.ETMap, len(uv))
	for i, exp := range uv {
		out[i] = -exp
	}

	return out
}
