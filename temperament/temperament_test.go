package temperament_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/temperament"
	"github.com/x31eq/regulartemp/unison"
)

func meantone() hnf.Mapping {
	return hnf.Mapping{
		{19, 30, 44},
		{31, 49, 72},
	}
}

func marvel() hnf.Mapping {
	return hnf.Mapping{
		{22, 35, 51, 62, 76},
		{31, 49, 72, 87, 107},
		{41, 65, 95, 115, 142},
	}
}

func TestClassMeantone(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	c := temperament.NewClass(meantone())

	assert.Equal(t, 2, c.Rank())
	assert.Equal(t, hnf.Mapping{{1, 0, -4}, {0, 1, 4}}, c.ReducedMapping())
	assert.Equal(t, hnf.ETMap{1, 4, 1, 0, -4}, c.Key())
	assert.Equal(t, "Meantone", c.Name(limit))
}

func TestClassNameFallsBackToWartedETs(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	// Porcupine is not in the canonical table, so the name is built from
	// its ETs.
	porcupine := hnf.Mapping{
		{15, 24, 35},
		{22, 35, 51},
	}
	assert.Equal(t, "15p & 22p", temperament.NewClass(porcupine).Name(limit))
}

func TestClassETBelongs(t *testing.T) {
	c := temperament.NewClass(meantone())

	assert.True(t, c.ETBelongs(hnf.ETMap{12, 19, 28}))
	assert.True(t, c.ETBelongs(hnf.ETMap{7, 11, 16}))
	assert.False(t, c.ETBelongs(hnf.ETMap{6, 9, 14}))
}

func TestMarvelNameAndFokkerBlock(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(11)

	assert.Equal(t, "Marvel", temperament.NewClass(marvel()).Name(limit))

	tuned, err := temperament.TETuning(limit, marvel())
	require.NoError(t, err)

	want := [][]int{
		{3, 4, 6},
		{6, 9, 12},
		{9, 13, 18},
		{12, 18, 24},
		{15, 22, 30},
		{19, 27, 36},
		{22, 31, 41},
	}
	assert.Equal(t, want, tuned.FokkerBlockSteps(7))

	pitches := tuned.FokkerBlockPitches(7)
	require.Len(t, pitches, 7)
	for i := 1; i < len(pitches); i++ {
		assert.Greater(t, pitches[i], pitches[i-1])
	}
}

func TestTunedUnisonVectorsMeantone(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	tuned, err := temperament.TETuning(limit, meantone())
	require.NoError(t, err)

	uvs := tuned.UnisonVectors(3)
	require.NotEmpty(t, uvs)
	assert.Equal(t, hnf.ETMap{-4, 4, -1}, uvs[0])
	for _, uv := range uvs {
		assert.True(t, temperament.TempersOut(meantone(), uv))
	}
}

func TestTOPTuningMeantoneStretch(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	tuned, err := temperament.TOPTuning(limit, meantone())
	require.NoError(t, err)

	assert.InDelta(t, 1201.6985/1200.0, tuned.Stretch(), 1e-4)
	assert.InDelta(t, 1200.0, tuned.UnstretchedTuningMap()[0], 1e-9)
}

func TestGetETsTemperingOutSyntonicComma(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	comma := hnf.ETMap{-4, 4, -1}

	ets := temperament.GetETsTemperingOut(limit, 1.0, []hnf.ETMap{comma}, 3)
	require.NotEmpty(t, ets)
	for _, et := range ets {
		assert.True(t, unison.TempersOut(hnf.Mapping{et}, comma), "et=%v", et)
	}
}

func TestOnlyUnisonVectorFacade(t *testing.T) {
	uv, ok := temperament.OnlyUnisonVector(meantone())
	require.True(t, ok)
	assert.True(t, temperament.TempersOut(meantone(), uv))

	_, ok = temperament.OnlyUnisonVector(hnf.Mapping{{12, 19, 28}, {24, 38, 56}})
	assert.False(t, ok)
}

func TestMappingFromNameFacade(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	m, ok := temperament.MappingFromName(limit, "12 & 19")
	require.True(t, ok)
	require.Len(t, m, 2)
	assert.Equal(t, hnf.ETMap{12, 19, 28}, m[0])
	assert.Equal(t, hnf.ETMap{19, 30, 44}, m[1])
}

func TestRatioFacadeRoundTrip(t *testing.T) {
	limit := temperament.PrimeLimitConsecutive(5)
	ket, ok := temperament.ParseAsVector(limit, "81:80")
	require.True(t, ok)

	num, den, ok := temperament.GetRatio(limit, ket)
	require.True(t, ok)
	assert.Equal(t, int64(81), num)
	assert.Equal(t, int64(80), den)
}
