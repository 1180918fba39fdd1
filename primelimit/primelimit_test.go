package primelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x31eq/regulartemp/primelimit"
)

func TestConsecutive7Limit(t *testing.T) {
	limit := primelimit.Consecutive(7)
	require.Equal(t, []string{"2", "3", "5", "7"}, limit.Headings)
	require.Len(t, limit.Pitches, 4)
	assert.InDelta(t, 1200.0, limit.Pitches[0], 1e-9)
	assert.InDelta(t, 1901.955, limit.Pitches[1], 1e-3)
}

func TestConsecutive11Limit(t *testing.T) {
	limit := primelimit.Consecutive(11)
	assert.Equal(t, []string{"2", "3", "5", "7", "11"}, limit.Headings)
}

func TestExplicit(t *testing.T) {
	limit := primelimit.Explicit([]primelimit.Harmonic{2, 3, 7, 11})
	assert.Equal(t, []string{"2", "3", "7", "11"}, limit.Headings)
	assert.Equal(t, 4, limit.Dimension())
}

func TestInharmonic(t *testing.T) {
	limit := primelimit.Inharmonic([]primelimit.Cents{1200, 1902, 2790})
	assert.Equal(t, 3, limit.Dimension())
	assert.Equal(t, "1902.000", limit.Headings[1])
}

func TestParseConsecutive(t *testing.T) {
	limit, err := primelimit.Parse("7")
	require.NoError(t, err)
	assert.Equal(t, primelimit.Consecutive(7).Headings, limit.Headings)
}

func TestParseExplicit(t *testing.T) {
	limit, err := primelimit.Parse("2.3.7")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "7"}, limit.Headings)
}

func TestParseGeneralisedRatio(t *testing.T) {
	limit, err := primelimit.Parse("2.3.7/5")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "7/5"}, limit.Headings)
	assert.InDelta(t, 582.512, limit.Pitches[2], 1e-3)
}

func TestParseInvalid(t *testing.T) {
	_, err := primelimit.Parse("")
	assert.ErrorIs(t, err, primelimit.ErrParse)

	_, err = primelimit.Parse("not-a-number")
	assert.ErrorIs(t, err, primelimit.ErrParse)
}

func TestInvariantPanics(t *testing.T) {
	assert.Panics(t, func() { primelimit.Explicit(nil) })
}
