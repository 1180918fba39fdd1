package tuning

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/weighted"
)

// TOPTuning is the Tenney-OPtimal tuning: the generator tuning minimising
// the largest weighted mistuning across the prime limit (a minimax
// problem), rather than TE's RMS. The minimax program is a small linear
// program (2d inequality rows, r+1 variables) solved with gonum's
// lp.Simplex.
type TOPTuning struct {
	limit    primelimit.PrimeLimit
	mapping  hnf.Mapping
	tuning   []float64
	maxError float64    // the minimised max |weighted mistuning|, in cents
	mapPinv  *mat.Dense // r x d pseudo-inverse of the plain mapping, for PitchFromPrimes
}

// PrimeLimit implements Tuned.
func (t TOPTuning) PrimeLimit() primelimit.PrimeLimit { return t.limit }

// Mapping implements Tuned.
func (t TOPTuning) Mapping() hnf.Mapping { return t.mapping }

// Tuning implements Tuned.
func (t TOPTuning) Tuning() []float64 { return t.tuning }

// MaxWeightedError returns the minimised maximum of |weighted mistuning|
// across every prime, in cents: the value TOP optimises for.
func (t TOPTuning) MaxWeightedError() float64 { return t.maxError }

// simplexTol is the termination tolerance handed to lp.Simplex. The
// constraint coefficients are weighted step counts (tens) and the right
// hand sides are 1200, so this leaves ample headroom above float64 noise.
const simplexTol = 1e-10

// BuildTOP computes the TOP tuning of m in the given prime limit by solving
//
//	minimize   t
//	subject to  sum_j W[i][j]*g[j] - 1200 <=  t   for every prime i
//	           -sum_j W[i][j]*g[j] + 1200 <=  t   for every prime i
//
// where W is the (d x r) weighted mapping and g is the rank-length
// generator tuning. The optimal t is the largest weighted mistuning, in
// cents. The general-form program is converted to standard form with
// lp.Convert (which splits the sign-free g and t into nonnegative parts
// and appends slacks) and solved with lp.Simplex; any solver failure is
// surfaced as ErrLPInfeasible.
func BuildTOP(limit primelimit.PrimeLimit, m hnf.Mapping) (TOPTuning, error) {
	w := weighted.Build(limit, m)
	d, r := w.Rows(), w.Cols()
	a := w.Dense()

	// Variables are (g_1, ..., g_r, t); each prime contributes the pair of
	// rows encoding |sum_j W[i][j]*g[j] - 1200| <= t.
	nVar := r + 1
	g := mat.NewDense(2*d, nVar, nil)
	h := make([]float64, 2*d)
	for i := 0; i < d; i++ {
		for j := 0; j < r; j++ {
			wij := a.At(i, j)
			g.Set(i, j, wij)
			g.Set(d+i, j, -wij)
		}
		g.Set(i, r, -1)
		g.Set(d+i, r, -1)
		h[i] = 1200
		h[d+i] = -1200
	}
	c := make([]float64, nVar)
	c[r] = 1

	cStd, aStd, bStd := lp.Convert(c, g, h, nil, nil)
	optT, sol, err := lp.Simplex(cStd, aStd, bStd, simplexTol, nil)
	if err != nil {
		return TOPTuning{}, ErrLPInfeasible
	}

	// Convert orders the standard-form variables as the positive parts,
	// then the negative parts, then the slacks.
	tuning := make([]float64, r)
	for j := 0; j < r; j++ {
		tuning[j] = sol[j] - sol[nVar+j]
	}

	plain := mat.NewDense(d, r, nil)
	for j, col := range m {
		for i, exp := range col {
			plain.Set(i, j, float64(exp))
		}
	}
	mapPinv, ok := moorePenrosePinv(plain)
	if !ok {
		return TOPTuning{}, ErrNoPseudoInverse
	}

	return TOPTuning{
		limit:    limit,
		mapping:  hnf.CloneMapping(m),
		tuning:   tuning,
		maxError: optT,
		mapPinv:  mapPinv,
	}, nil
}

// Complexity is the RMS of the weighted mapping, unaffected by tuning
// choice.
func (t TOPTuning) Complexity() float64 {
	return weighted.Complexity(t.limit, t.mapping)
}

// TuningMap returns the cents value each prime is tempered to.
func (t TOPTuning) TuningMap() []float64 { return TuningMap(t) }

// Mistunings returns TuningMap()[i] - Pitches[i] for every prime.
func (t TOPTuning) Mistunings() []float64 { return Mistunings(t) }

// Stretch is the ratio of the tempered first harmonic to its just value.
func (t TOPTuning) Stretch() float64 { return Stretch(t) }

// UnstretchedTuning is Tuning with Stretch divided out.
func (t TOPTuning) UnstretchedTuning() []float64 { return UnstretchedTuning(t) }

// UnstretchedTuningMap is TuningMap with Stretch divided out.
func (t TOPTuning) UnstretchedTuningMap() []float64 { return UnstretchedTuningMap(t) }

// UnstretchedMistunings is Mistunings computed against UnstretchedTuningMap.
func (t TOPTuning) UnstretchedMistunings() []float64 { return UnstretchedMistunings(t) }

// PitchFromSteps returns the cents value of an interval expressed as a
// rank-length vector of generator steps.
func (t TOPTuning) PitchFromSteps(steps []float64) float64 {
	return PitchFromSteps(t, steps)
}

// PitchFromPrimes returns the cents value of an interval expressed as a
// prime-limit-length vector of prime-factor exponents (see TETuning's
// method of the same name for the derivation).
func (t TOPTuning) PitchFromPrimes(interval hnf.ETMap) float64 {
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
