package weighted_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/weighted"
)

func marvel() hnf.Mapping {
	return hnf.Mapping{
		{22, 35, 51, 62, 76},
		{31, 49, 72, 87, 107},
		{41, 65, 95, 115, 142},
	}
}

func TestMarvelComplexity(t *testing.T) {
	limit := primelimit.Consecutive(11)
	c := weighted.Complexity(limit, marvel())
	assert.Greater(t, c, 0.15566)
	assert.Less(t, c, 0.15567)
}

func TestMarvelBadness(t *testing.T) {
	limit := primelimit.Consecutive(11)
	b := weighted.Badness(limit, marvel(), 1.0)
	assert.Greater(t, b, 0.16948)
	assert.Less(t, b, 0.16949)
}

func TestComplexityPanicsOnDimensionMismatch(t *testing.T) {
	limit := primelimit.Consecutive(7) // dimension 4
	assert.Panics(t, func() { weighted.Complexity(limit, marvel()) })
}
