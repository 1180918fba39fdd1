package tuning_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/tuning"
	"github.com/x31eq/regulartemp/weighted"
)

func marvelLimit() primelimit.PrimeLimit {
	return primelimit.Consecutive(11)
}

func marvelMapping() hnf.Mapping {
	return hnf.Mapping{
		{22, 35, 51, 62, 76},
		{31, 49, 72, 87, 107},
		{41, 65, 95, 115, 142},
	}
}

func TestBuildTEMarvel(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	assert.InDelta(t, 0.15566, tet.Complexity(), 0.000015)
	assert.InDelta(t, 0.16948, weighted.Badness(limit, m, 1.0), 0.000015)

	want := []float64{3.96487, 17.32226, 14.05909}
	require.Len(t, tet.Tuning(), len(want))
	for i, w := range want {
		assert.InDelta(t, w, tet.Tuning()[i], 0.0005)
	}

	assert.InDelta(t, 1200.640, tet.TuningMap()[0], 0.001)
}

func TestTEErrorIsBadnessOverComplexity(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	assert.InDelta(t, tet.Badness()/tet.Complexity(), tet.Error(), 1e-9)
}

func TestTEMistuningsAndTuningMapAgree(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	tm := tet.TuningMap()
	mist := tet.Mistunings()
	require.Len(t, mist, len(tm))
	for i := range tm {
		assert.InDelta(t, tm[i]-limit.Pitches[i], mist[i], 1e-9)
	}
}

func TestTEUnstretchedTuningMapHasZeroStretch(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	tm := tet.UnstretchedTuningMap()
	assert.InDelta(t, limit.Pitches[0], tm[0], 1e-9)
}

func TestTEPitchFromStepsMatchesDotProduct(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	steps := []float64{1, 1, 0}
	want := tet.Tuning()[0] + tet.Tuning()[1]
	assert.InDelta(t, want, tet.PitchFromSteps(steps), 1e-9)
}

func TestTEPitchFromPrimesRoundTripsAnET(t *testing.T) {
	limit := marvelLimit()
	m := marvelMapping()

	tet, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	// 22p's own mapping row, read back through the pseudo-inverse, should
	// land close to 22 steps' worth of tuning (one generator).
	interval := hnf.ETMap{22, 35, 51, 62, 76}
	got := tet.PitchFromPrimes(interval)
	assert.InDelta(t, tet.Tuning()[0], got, 1e-6)
}

func TestBuildTERankDeficientMappingFails(t *testing.T) {
	limit := primelimit.Consecutive(5)
	twelve := hnf.ETMap{12, 19, 28}
	doubled := hnf.ETMap{24, 38, 56} // linearly dependent on twelve

	_, err := tuning.BuildTE(limit, hnf.Mapping{twelve, doubled})
	assert.ErrorIs(t, err, tuning.ErrNoPseudoInverse)
}

func meantoneMapping() hnf.Mapping {
	return hnf.Mapping{
		{19, 30, 44},
		{31, 49, 72},
	}
}

func TestBuildTOPMeantoneIsFeasible(t *testing.T) {
	limit := primelimit.Consecutive(5)
	m := meantoneMapping()

	top, err := tuning.BuildTOP(limit, m)
	require.NoError(t, err)
	require.Len(t, top.Tuning(), 2)
	assert.Greater(t, top.MaxWeightedError(), 0.0)
}

// TOP meantone has all three primes at maximum damage, so the optimum is a
// unique vertex: octave 1201.6985, fourth 504.1341.
func TestBuildTOPMeantoneKnownOptimum(t *testing.T) {
	limit := primelimit.Consecutive(5)
	m := meantoneMapping()

	top, err := tuning.BuildTOP(limit, m)
	require.NoError(t, err)

	tm := top.TuningMap()
	octave := tm[0]
	fourth := 2*tm[0] - tm[1] // 4/3 under the tempered primes
	assert.InDelta(t, 1201.6985, octave, 0.005)
	assert.InDelta(t, 504.1341, fourth, 0.005)
	assert.InDelta(t, 1.6985, top.MaxWeightedError(), 0.005)
}

// TOP's minimised max weighted mistuning must be no worse than the same
// quantity evaluated on the TE tuning of the same mapping, since TOP
// optimises exactly that quantity and TE does not.
func TestTOPOptimalityWitness(t *testing.T) {
	limit := primelimit.Consecutive(5)
	m := meantoneMapping()

	top, err := tuning.BuildTOP(limit, m)
	require.NoError(t, err)

	te, err := tuning.BuildTE(limit, m)
	require.NoError(t, err)

	teMax := maxWeightedError(te, limit)
	assert.LessOrEqual(t, top.MaxWeightedError(), teMax+1e-6)
}

func maxWeightedError(t tuning.Tuned, limit primelimit.PrimeLimit) float64 {
	tm := tuning.TuningMap(t)
	var worst float64
	for i, pitch := range limit.Pitches {
		e := math.Abs(tm[i]/pitch-1) * 1200
		if e > worst {
			worst = e
		}
	}

	return worst
}

func TestBuildTOPTuningMapApproximatesPitches(t *testing.T) {
	limit := primelimit.Consecutive(5)
	m := meantoneMapping()

	top, err := tuning.BuildTOP(limit, m)
	require.NoError(t, err)

	tm := top.TuningMap()
	for i, pitch := range limit.Pitches {
		assert.InDelta(t, pitch, tm[i], 25)
	}
}
