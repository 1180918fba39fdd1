package tuning

import (
	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// Tuned is the "has a tuning" capability: anything
// with a prime limit, a mapping, and a generator tuning in cents. TETuning
// and TOPTuning both satisfy it, and every derived quantity below — tuning
// map, mistunings, stretch, unstretched variants, pitch lookups — is a pure
// function of those three fields, so it is implemented once here instead
// of once per optimiser.
type Tuned interface {
	PrimeLimit() primelimit.PrimeLimit
	Mapping() hnf.Mapping
	Tuning() []float64
}

// TuningMap returns tuning_map[i] = sum_j mapping[j][i] * tuning[j], the
// actual cents value each prime is tempered to.
func TuningMap(t Tuned) []float64 {
	mapping := t.Mapping()
	tun := t.Tuning()
	d := hnf.Dimension(mapping)
	out := make([]float64, d)
	for j, col := range mapping {
		for i, exp := range col {
			out[i] += float64(exp) * tun[j]
		}
	}

	return out
}

// Mistunings returns tuning_map[i] - pitches[i] for every prime.
func Mistunings(t Tuned) []float64 {
	tm := TuningMap(t)
	pitches := t.PrimeLimit().Pitches
	out := make([]float64, len(tm))
	for i := range tm {
		out[i] = tm[i] - pitches[i]
	}

	return out
}

// Stretch returns the octave (or first-harmonic) stretch factor:
// tuning_map[0] / pitches[0].
func Stretch(t Tuned) float64 {
	return TuningMap(t)[0] / t.PrimeLimit().Pitches[0]
}

// UnstretchedTuning divides every generator by Stretch, producing the
// "pure equivalence interval" (POTE, for TE) tuning.
func UnstretchedTuning(t Tuned) []float64 {
	stretch := Stretch(t)
	tun := t.Tuning()
	out := make([]float64, len(tun))
	for i, x := range tun {
		out[i] = x / stretch
	}

	return out
}

// UnstretchedTuningMap divides every tuning-map entry by Stretch.
func UnstretchedTuningMap(t Tuned) []float64 {
	stretch := Stretch(t)
	tm := TuningMap(t)
	out := make([]float64, len(tm))
	for i, x := range tm {
		out[i] = x / stretch
	}

	return out
}

// UnstretchedMistunings returns UnstretchedTuningMap(t)[i] - pitches[i].
func UnstretchedMistunings(t Tuned) []float64 {
	tm := UnstretchedTuningMap(t)
	pitches := t.PrimeLimit().Pitches
	out := make([]float64, len(tm))
	for i := range tm {
		out[i] = tm[i] - pitches[i]
	}

	return out
}

// PitchFromSteps returns the cents value of a generator-step interval
// (length rank): the dot product of tuning and interval.
func PitchFromSteps(t Tuned, steps []float64) float64 {
	tun := t.Tuning()
	var sum float64
	for i, x := range tun {
		sum += x * steps[i]
	}

	return sum
}
