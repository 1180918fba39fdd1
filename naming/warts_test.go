package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/naming"
	"github.com/x31eq/regulartemp/primelimit"
)

func limit17() primelimit.PrimeLimit {
	return primelimit.Consecutive(17)
}

func TestPatentValAndName12p(t *testing.T) {
	limit := primelimit.Consecutive(7) // 2.3.5.7
	et := hnf.ETMap{12, 19, 28, 34}
	assert.Equal(t, et, naming.PatentVal(limit, 12))
	assert.Equal(t, "12p", naming.WartedETName(limit, et))
}

func TestETFromNameRoundTripPatent(t *testing.T) {
	limit := primelimit.Consecutive(7)
	want := hnf.ETMap{12, 19, 28, 34}
	for _, name := range []string{"12", "12p"} {
		got, err := naming.ETFromName(limit, name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestWartedNameScenarios(t *testing.T) {
	limit := limit17()
	cases := []struct {
		et   hnf.ETMap
		name string
	}{
		{hnf.ETMap{4, 6, 9, 11, 13, 14, 14}, "4efgggg"},
		{hnf.ETMap{4, 6, 9, 11, 13, 14, 18}, "4efggg"},
		{hnf.ETMap{2, 3, 5, 6, 6, 7, 7}, "2egg"},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, naming.WartedETName(limit, c.et), "et=%v", c.et)
	}
}

func TestWartedNameRoundTrip(t *testing.T) {
	limit := limit17()
	ets := []hnf.ETMap{
		{4, 6, 9, 11, 13, 14, 14},
		{4, 6, 9, 11, 13, 14, 18},
		{2, 3, 5, 6, 6, 7, 7},
	}
	for _, et := range ets {
		name := naming.WartedETName(limit, et)
		got, err := naming.ETFromName(limit, name)
		require.NoError(t, err)
		assert.Equal(t, et, got, "name=%s", name)
	}
}

func TestWartLettersFollowPrimeSequence(t *testing.T) {
	// In the gappy limit 2.3.7 the prime 7 keeps its own letter 'd', not
	// the column letter 'c'.
	limit, err := primelimit.Parse("2.3.7")
	require.NoError(t, err)

	et := hnf.ETMap{5, 8, 13} // patent is {5, 8, 14}
	assert.Equal(t, "5dd", naming.WartedETName(limit, et))

	got, err := naming.ETFromName(limit, "5dd")
	require.NoError(t, err)
	assert.Equal(t, et, got)
}

func TestNonOctaveEquivalencePrefix(t *testing.T) {
	// A tritave-based limit prefixes names with the equivalence interval's
	// own wart letter.
	limit, err := primelimit.Parse("3.5.7")
	require.NoError(t, err)

	patent := naming.PatentVal(limit, 13)
	name := naming.WartedETName(limit, patent)
	assert.Equal(t, "b13p", name)

	got, err := naming.ETFromName(limit, name)
	require.NoError(t, err)
	assert.Equal(t, patent, got)

	// The prefix is optional on the way back in.
	got, err = naming.ETFromName(limit, "13p")
	require.NoError(t, err)
	assert.Equal(t, patent, got)
}

func TestMappingFromName(t *testing.T) {
	limit := primelimit.Consecutive(3)
	m, err := naming.MappingFromName(limit, "12 & 19")
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, naming.PatentVal(limit, 12), m[0])
	assert.Equal(t, naming.PatentVal(limit, 19), m[1])
}

func TestCanonicalNameMeantone(t *testing.T) {
	limit := primelimit.Consecutive(5)
	meantone := hnf.Mapping{{19, 30, 44}, {31, 49, 72}}
	assert.Equal(t, "Meantone", naming.CanonicalName(limit, meantone))
}
