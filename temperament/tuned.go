package temperament

import (
	"sort"
	"strconv"

	"github.com/x31eq/regulartemp/fokker"
	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/tuning"
	"github.com/x31eq/regulartemp/unison"
	"github.com/x31eq/regulartemp/weighted"
)

// Tuned is the "has a tuning" capability extended with the generated
// structures a tuned temperament exposes: Fokker blocks and a small
// unison-vector search, composed on top of whatever optimiser (TE or
// TOP) produced the underlying tuning.
type Tuned struct {
	inner tuning.Tuned
}

// FromTE wraps a TE-tuned temperament as a Tuned facade value.
func FromTE(t tuning.TETuning) Tuned { return Tuned{inner: t} }

// FromTOP wraps a TOP-tuned temperament as a Tuned facade value.
func FromTOP(t tuning.TOPTuning) Tuned { return Tuned{inner: t} }

// PrimeLimit returns the prime limit the tuning was computed against.
func (t Tuned) PrimeLimit() primelimit.PrimeLimit { return t.inner.PrimeLimit() }

// Mapping returns the underlying (untuned) mapping.
func (t Tuned) Mapping() hnf.Mapping { return t.inner.Mapping() }

// Tuning returns the generator sizes in cents.
func (t Tuned) Tuning() []float64 { return t.inner.Tuning() }

// TuningMap returns the cents value each prime is tempered to.
func (t Tuned) TuningMap() []float64 { return tuning.TuningMap(t.inner) }

// Mistunings returns TuningMap()[i] - Pitches[i] for every prime.
func (t Tuned) Mistunings() []float64 { return tuning.Mistunings(t.inner) }

// Stretch is the ratio of the tempered first harmonic to its just value.
func (t Tuned) Stretch() float64 { return tuning.Stretch(t.inner) }

// UnstretchedTuning is Tuning with Stretch divided out (POTE, for TE).
func (t Tuned) UnstretchedTuning() []float64 { return tuning.UnstretchedTuning(t.inner) }

// UnstretchedTuningMap is TuningMap with Stretch divided out.
func (t Tuned) UnstretchedTuningMap() []float64 { return tuning.UnstretchedTuningMap(t.inner) }

// UnstretchedMistunings is Mistunings computed against UnstretchedTuningMap.
func (t Tuned) UnstretchedMistunings() []float64 { return tuning.UnstretchedMistunings(t.inner) }

// PitchFromSteps returns the cents value of a generator-step interval.
func (t Tuned) PitchFromSteps(steps []float64) float64 {
	return tuning.PitchFromSteps(t.inner, steps)
}

// PitchFromPrimes returns the cents value of an interval expressed as a
// prime-exponent vector.
func (t Tuned) PitchFromPrimes(interval hnf.ETMap) float64 {
	switch inner := t.inner.(type) {
	case tuning.TETuning:
		return inner.PitchFromPrimes(interval)
	case tuning.TOPTuning:
		return inner.PitchFromPrimes(interval)
	default:
		panic("temperament: unsupported Tuned implementation")
	}
}

// FokkerBlockSteps returns the n-note Fokker periodicity block of the
// underlying mapping, as generator-step vectors.
func (t Tuned) FokkerBlockSteps(n int) [][]int {
	return fokker.Steps(t.inner.Mapping(), n)
}

// FokkerBlockPitches returns the n-note Fokker block converted to cents
// via the tuning.
func (t Tuned) FokkerBlockPitches(n int) []float64 {
	return fokker.Pitches(t.FokkerBlockSteps(n), t.inner.Tuning())
}

// maxUVEnumeration bounds the total size of the brute-force unison-vector
// search below: uvSearchBound derives a per-dimension exponent cap from it
// so the search stays tractable as the prime limit's dimension grows.
const maxUVEnumeration = 200000

// uvSearchBound returns the largest exponent magnitude per coordinate such
// that (2*bound+1)^d stays within maxUVEnumeration, or 0 when even the
// narrowest useful radius (2) would overflow it. A radius below 2 misses
// almost every comma worth finding, so past that dimension (d >= 8) the
// caller skips the sweep entirely rather than hanging on an enumeration
// that grows as 5^d.
func uvSearchBound(d int) int {
	for bound := 6; bound >= 2; bound-- {
		total := 1
		width := 2*bound + 1
		overflow := false
		for i := 0; i < d; i++ {
			total *= width
			if total > maxUVEnumeration {
				overflow = true
				break
			}
		}
		if !overflow {
			return bound
		}
	}

	return 0
}

// UnisonVectors returns up to nResults unison vectors tempered out by the
// mapping, ordered by ascending Tenney-weighted complexity. For a
// codimension-1 mapping this always includes unison.OnlyUnisonVector's
// result first; for higher-codimension mappings (where the null space has
// more than one dimension) it falls back to a bounded brute-force search
// over small integer exponent vectors, there being no closed form. In
// limits too high-dimensional for even the narrowest sweep to fit the
// enumeration budget, the sweep is skipped and only the closed-form
// result (if any) is returned.
func (t Tuned) UnisonVectors(nResults int) []hnf.ETMap {
	limit := t.inner.PrimeLimit()
	mapping := t.inner.Mapping()
	d := limit.Dimension()

	type scored struct {
		uv   hnf.ETMap
		comp float64
	}
	var candidates []scored
	add := func(uv hnf.ETMap) {
		uv = unison.NormalizePositive(limit, uv)
		candidates = append(candidates, scored{uv: uv, comp: complexity(limit, uv)})
	}

	if uv, err := unison.OnlyUnisonVector(mapping); err == nil {
		add(uv)
	}

	if bound := uvSearchBound(d); bound > 0 {
		var walk func(idx int, uv hnf.ETMap)
		walk = func(idx int, uv hnf.ETMap) {
			if idx == d {
				allZero := true
				for _, v := range uv {
					if v != 0 {
						allZero = false
						break
					}
				}
				if allZero {
					return
				}
				cp := append(hnf.ETMap(nil), uv...)
				if unison.TempersOut(mapping, cp) {
					add(cp)
				}

				return
			}
			for e := -bound; e <= bound; e++ {
				uv[idx] = hnf.Exponent(e)
				walk(idx+1, uv)
			}
		}
		walk(0, make(hnf.ETMap, d))
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].comp < candidates[j].comp })

	seen := make(map[string]struct{})
	out := make([]hnf.ETMap, 0, nResults)
	for _, c := range candidates {
		k := ketKey(c.uv)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c.uv)
		if len(out) == nResults {
			break
		}
	}

	return out
}

func complexity(limit primelimit.PrimeLimit, uv hnf.ETMap) float64 {
	return weighted.Complexity(limit, hnf.Mapping{uv})
}

func ketKey(uv hnf.ETMap) string {
	b := make([]byte, 0, 4*len(uv))
	for _, v := range uv {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}

	return string(b)
}
