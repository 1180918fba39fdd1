package tuning

import (
	"gonum.org/v1/gonum/mat"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/weighted"
)

// TETuning is the Tenney-Euclidean optimum tuning for a mapping: the unique
// generator tuning minimising the RMS of weighted mistuning across the
// prime limit. It is obtained in closed form from the
// Moore-Penrose pseudo-inverse of the weighted mapping, so unlike TOPTuning
// it never needs an iterative solver.
type TETuning struct {
	limit   primelimit.PrimeLimit
	mapping hnf.Mapping
	tuning  []float64
	mapPinv *mat.Dense // r x d pseudo-inverse of the plain mapping, for PitchFromPrimes
}

// PrimeLimit implements Tuned.
func (t TETuning) PrimeLimit() primelimit.PrimeLimit { return t.limit }

// Mapping implements Tuned.
func (t TETuning) Mapping() hnf.Mapping { return t.mapping }

// Tuning implements Tuned: generator sizes in cents, one per mapping row.
func (t TETuning) Tuning() []float64 { return t.tuning }

// BuildTE computes the TE tuning of m in the given prime limit.
//
// The weighted mapping W is d x r (d = limit dimension, r = rank). Its
// Moore-Penrose pseudo-inverse W+ is r x d; the TE generator tuning is
// 1200 * column_sum(W+), i.e. for each row j of W+, 1200 times the sum of
// that row's d entries.
//
// Returns ErrNoPseudoInverse if W is rank-deficient (m is not a genuine
// rank-r mapping); well-formed mappings from hnf/search/rank never trigger
// this.
func BuildTE(limit primelimit.PrimeLimit, m hnf.Mapping) (TETuning, error) {
	w := weighted.Build(limit, m)
	// The Tenney weights are a positive diagonal scaling, so W has the same
	// rank as m's integer lattice.
	if hnf.Rank(m) != len(m) {
		return TETuning{}, ErrNoPseudoInverse
	}

	pinv, ok := moorePenrosePinv(w.Dense())
	if !ok {
		return TETuning{}, ErrNoPseudoInverse
	}
	rows, cols := pinv.Dims() // r, d

	tuning := make([]float64, rows)
	for j := 0; j < rows; j++ {
		var sum float64
		for i := 0; i < cols; i++ {
			sum += pinv.At(j, i)
		}
		tuning[j] = sum * 1200.0
	}

	// The plain (unweighted) mapping matrix: mapping[j] is its j-th column.
	// Its pseudo-inverse recovers the exact generator steps that produced a
	// given prime-exponent interval, independent of tuning, so it is
	// computed once here and reused by
	// PitchFromPrimes rather than derived from the (tuning-dependent) weighted
	// matrix.
	d := limit.Dimension()
	r := len(m)
	plain := mat.NewDense(d, r, nil)
	for j, col := range m {
		for i, exp := range col {
			plain.Set(i, j, float64(exp))
		}
	}
	mapPinv, ok := moorePenrosePinv(plain)
	if !ok {
		return TETuning{}, ErrNoPseudoInverse
	}

	return TETuning{
		limit:   limit,
		mapping: hnf.CloneMapping(m),
		tuning:  tuning,
		mapPinv: mapPinv,
	}, nil
}

// moorePenrosePinv computes the Moore-Penrose pseudo-inverse of a via a
// zero-tolerance SVD: every singular value
// strictly greater than zero is reciprocated, every zero one is left as
// zero. Returns ok=false if the SVD fails to converge.
func moorePenrosePinv(a *mat.Dense) (*mat.Dense, bool) {
	rows, cols := a.Dims()

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return nil, false
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	values := svd.Values(nil)

	sigmaPlus := mat.NewDense(cols, rows, nil)
	for i, s := range values {
		if s > 0 {
			sigmaPlus.Set(i, i, 1/s)
		}
	}

	var temp, pinv mat.Dense
	temp.Mul(&v, sigmaPlus)
	pinv.Mul(&temp, u.T())

	return &pinv, true
}

// Complexity is the RMS of the weighted mapping, unaffected by tuning
// choice.
func (t TETuning) Complexity() float64 {
	return weighted.Complexity(t.limit, t.mapping)
}

// Badness is the Cangwu badness of the mapping at ek=0: the
// badness used to select and rank TE-tuned temperaments by default.
func (t TETuning) Badness() float64 {
	return weighted.Badness(t.limit, t.mapping, 0)
}

// Error is Badness/Complexity, the weighted RMS error of the optimum tuning
// in cents.
func (t TETuning) Error() float64 {
	c := t.Complexity()
	if c == 0 {
		return 0
	}

	return t.Badness() / c
}

// AdjustedError scales Error by the widest interval in the prime limit,
// relative to an octave, making errors comparable across prime limits of
// different spans.
func (t TETuning) AdjustedError() float64 {
	maxPitch := t.limit.Pitches[0]
	for _, p := range t.limit.Pitches[1:] {
		if p > maxPitch {
			maxPitch = p
		}
	}

	return t.Error() * maxPitch / 1200.0
}

// TuningMap returns the cents value each prime is tempered to.
func (t TETuning) TuningMap() []float64 { return TuningMap(t) }

// Mistunings returns TuningMap()[i] - Pitches[i] for every prime.
func (t TETuning) Mistunings() []float64 { return Mistunings(t) }

// Stretch is the ratio of the tempered first harmonic to its just value.
func (t TETuning) Stretch() float64 { return Stretch(t) }

// UnstretchedTuning is Tuning with Stretch divided out (the POTE tuning).
func (t TETuning) UnstretchedTuning() []float64 { return UnstretchedTuning(t) }

// UnstretchedTuningMap is TuningMap with Stretch divided out.
func (t TETuning) UnstretchedTuningMap() []float64 { return UnstretchedTuningMap(t) }

// UnstretchedMistunings is Mistunings computed against UnstretchedTuningMap.
func (t TETuning) UnstretchedMistunings() []float64 { return UnstretchedMistunings(t) }

// PitchFromSteps returns the cents value of an interval expressed as a
// rank-length vector of generator steps.
func (t TETuning) PitchFromSteps(steps []float64) float64 {
	return PitchFromSteps(t, steps)
}

// PitchFromPrimes returns the cents value of an interval expressed as a
// prime-limit-length vector of prime-factor exponents, by first recovering
// its generator steps through the plain mapping's pseudo-inverse
// (generators = M+ * interval, exact whenever interval lies in the
// mapping's row space) and then applying the tuning.
func (t TETuning) PitchFromPrimes(interval hnf.ETMap) float64 {
	r, d := t.mapPinv.Dims()
	if len(interval) != d {
		panic("tuning: interval dimension does not match prime limit")
	}

	steps := make([]float64, r)
	for j := 0; j < r; j++ {
		var sum float64
		for i := 0; i < d; i++ {
			sum += t.mapPinv.At(j, i) * float64(interval[i])
		}
		steps[j] = sum
	}

	return t.PitchFromSteps(steps)
}
