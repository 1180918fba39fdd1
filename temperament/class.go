package temperament

import (
	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/naming"
	"github.com/x31eq/regulartemp/primelimit"
)

// Class is the "has a mapping" capability: a temperament
// identified by its column lattice, independent of any tuning. Two Class
// values with the same Key belong to the same temperament class.
type Class struct {
	mapping hnf.Mapping
}

// NewClass wraps m as a temperament class. Panics if m is empty or ragged
// (hnf.Dimension's preconditions).
func NewClass(m hnf.Mapping) Class {
	hnf.Dimension(m) // validates; panics on a malformed mapping

	return Class{mapping: hnf.CloneMapping(m)}
}

// Mapping returns the original (non-reduced) mapping.
func (c Class) Mapping() hnf.Mapping { return c.mapping }

// Rank returns the true rank of c's lattice.
func (c Class) Rank() int { return hnf.Rank(c.mapping) }

// ReducedMapping returns c's canonical Hermite-normal-form representative.
func (c Class) ReducedMapping() hnf.Mapping { return hnf.HermiteNormalForm(c.mapping) }

// Key returns c's canonical identifier.
func (c Class) Key() hnf.ETMap { return hnf.Key(c.mapping) }

// Name returns c's well-known name in limit if the table has one, or else
// the "&"-joined warted names of its ETs (MappingFromName's inverse).
func (c Class) Name(limit primelimit.PrimeLimit) string {
	if name := naming.CanonicalName(limit, c.mapping); name != "" {
		return name
	}

	names := make([]string, len(c.mapping))
	for i, et := range c.mapping {
		names[i] = naming.WartedETName(limit, et)
	}

	joined := names[0]
	for _, n := range names[1:] {
		joined += " & " + n
	}

	return joined
}

// ETBelongs reports whether et is consistent with c's temperament class:
// adding it as a column does not raise the rank (et lies in the span of
// c's existing mapping).
func (c Class) ETBelongs(et hnf.ETMap) bool {
	extended := append(hnf.CloneMapping(c.mapping), append(hnf.ETMap(nil), et...))

	return hnf.Rank(extended) == c.Rank()
}
