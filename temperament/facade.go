package temperament

import (
	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/naming"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/rank"
	"github.com/x31eq/regulartemp/search"
	"github.com/x31eq/regulartemp/tuning"
	"github.com/x31eq/regulartemp/unison"
)

// PrimeLimitConsecutive builds a PrimeLimit from every prime at or below
// harmonicCap.
func PrimeLimitConsecutive(harmonicCap primelimit.Harmonic) primelimit.PrimeLimit {
	return primelimit.Consecutive(harmonicCap)
}

// PrimeLimitExplicit builds a PrimeLimit from an arbitrary ordered list of
// harmonics.
func PrimeLimitExplicit(harmonics []primelimit.Harmonic) primelimit.PrimeLimit {
	return primelimit.Explicit(harmonics)
}

// PrimeLimitInharmonic builds a PrimeLimit directly from cents-valued
// pitches.
func PrimeLimitInharmonic(pitchesInCents []primelimit.Cents) primelimit.PrimeLimit {
	return primelimit.Inharmonic(pitchesInCents)
}

// ParsePrimeLimit parses the textual prime-limit grammar ("7", "2.3.7",
// "2.3.7/5").
func ParsePrimeLimit(text string) (primelimit.PrimeLimit, error) {
	return primelimit.Parse(text)
}

// GetEqualTemperaments returns the nResults equal temperaments of lowest
// Cangwu badness in limit.
func GetEqualTemperaments(limit primelimit.PrimeLimit, ek float64, nResults int, opts ...search.Option) []hnf.ETMap {
	return search.GetEqualTemperaments(limit, ek, nResults, opts...)
}

// HigherRankSearch extends a list of rank-r mappings to rank-(r+1) with the
// given candidate equal temperaments.
func HigherRankSearch(
	limit primelimit.PrimeLimit,
	candidateETs []hnf.ETMap,
	currentMappings []hnf.Mapping,
	ek float64,
	nResults int,
	opts ...rank.Option,
) []hnf.Mapping {
	return rank.HigherRankSearch(limit, candidateETs, currentMappings, ek, nResults, opts...)
}

// AmbiguousET reports whether et's rounding is a close call in limit.
func AmbiguousET(limit primelimit.PrimeLimit, et hnf.ETMap) bool {
	return naming.AmbiguousET(limit, et)
}

// WartedETName renders et as its canonical warted identifier in limit.
func WartedETName(limit primelimit.PrimeLimit, et hnf.ETMap) string {
	return naming.WartedETName(limit, et)
}

// ETFromName parses a warted ET identifier, the inverse of WartedETName.
func ETFromName(limit primelimit.PrimeLimit, name string) (hnf.ETMap, bool) {
	et, err := naming.ETFromName(limit, name)
	if err != nil {
		return nil, false
	}

	return et, true
}

// MappingFromName parses a "12 & 19 & 31"-style rank-r identifier.
func MappingFromName(limit primelimit.PrimeLimit, name string) (hnf.Mapping, bool) {
	m, err := naming.MappingFromName(limit, name)
	if err != nil {
		return nil, false
	}

	return m, true
}

// TETuning computes the Tenney-Euclidean optimum tuning of m in limit.
func TETuning(limit primelimit.PrimeLimit, m hnf.Mapping) (Tuned, error) {
	t, err := tuning.BuildTE(limit, m)
	if err != nil {
		return Tuned{}, err
	}

	return FromTE(t), nil
}

// TOPTuning computes the Tenney-OPtimal (minimax) tuning of m in limit.
func TOPTuning(limit primelimit.PrimeLimit, m hnf.Mapping) (Tuned, error) {
	t, err := tuning.BuildTOP(limit, m)
	if err != nil {
		return Tuned{}, err
	}

	return FromTOP(t), nil
}

// OnlyUnisonVector returns the commatic unison vector of a codimension-1
// mapping.
func OnlyUnisonVector(m hnf.Mapping) (hnf.ETMap, bool) {
	uv, err := unison.OnlyUnisonVector(m)
	if err != nil {
		return nil, false
	}

	return uv, true
}

// TempersOut reports whether every row of m sends interval to zero steps.
func TempersOut(m hnf.Mapping, interval hnf.ETMap) bool {
	return unison.TempersOut(m, interval)
}

// getETsTemperingOutPoolFactor oversamples GetEqualTemperaments before
// filtering by the unison-vector constraint, since the bounded search
// itself has no notion of "tempering out a comma" built in;
// this composes the existing search with a post-hoc filter instead of
// threading the constraint through limited_mappings.
const getETsTemperingOutPoolFactor = 16

// GetETsTemperingOut returns up to nResults equal temperaments (by
// ascending Cangwu badness at parameter ek) that temper out every unison
// vector in uvs.
func GetETsTemperingOut(limit primelimit.PrimeLimit, ek float64, uvs []hnf.ETMap, nResults int) []hnf.ETMap {
	pool := nResults * getETsTemperingOutPoolFactor
	if pool < nResults {
		pool = nResults // overflow guard for absurd nResults
	}
	var out []hnf.ETMap
	for attempt := 0; attempt < 6; attempt++ {
		candidates := search.GetEqualTemperaments(limit, ek, pool)
		out = make([]hnf.ETMap, 0, nResults)
		for _, et := range candidates {
			all := true
			for _, uv := range uvs {
				if !unison.TempersOut(hnf.Mapping{et}, uv) {
					all = false
					break
				}
			}
			if all {
				out = append(out, et)
				if len(out) == nResults {
					return out
				}
			}
		}
		if len(candidates) < pool {
			return out // the search itself exhausted n_notes' bound; no more to find
		}
		pool *= 4
	}

	return out
}

// FactorizeRatio expresses num/den as an ETMap over limit's headings.
func FactorizeRatio(limit primelimit.PrimeLimit, num, den int64) (hnf.ETMap, bool) {
	et, err := naming.FactorizeRatio(limit, num, den)
	if err != nil {
		return nil, false
	}

	return et, true
}

// ParseAsVector parses a "n:d" or "n/d" ratio string and factorises it.
func ParseAsVector(limit primelimit.PrimeLimit, ratio string) (hnf.ETMap, bool) {
	et, err := naming.ParseAsVector(limit, ratio)
	if err != nil {
		return nil, false
	}

	return et, true
}

// GetRatio reconstructs the (numerator, denominator) ratio an ETMap
// represents in limit.
func GetRatio(limit primelimit.PrimeLimit, ket hnf.ETMap) (num, den int64, ok bool) {
	num, den, err := naming.GetRatio(limit, ket)

	return num, den, err == nil
}
