package primelimit

import (
	"fmt"
	"math"
)

// Cents is a logarithmic pitch unit: 1200 cents equal one octave.
type Cents = float64

// Harmonic is an integer partial number (a numerator/denominator of a
// just-intonation ratio, or a prime).
type Harmonic = uint16

// PrimeLimit is the harmonic basis a temperament is measured against: an
// ordered sequence of partials in cents, with a parallel sequence of
// display headings and a single label for the whole limit.
//
// Invariant: len(Pitches) == len(Headings) >= 1, and every entry of Pitches
// is strictly positive. Constructors in this package always return values
// that satisfy the invariant; callers who build a PrimeLimit by hand are
// responsible for it.
type PrimeLimit struct {
	Pitches  []Cents
	Headings []string
	Label    string
}

// Dimension returns d, the number of partials in the limit.
func (p PrimeLimit) Dimension() int {
	return len(p.Pitches)
}

// validate panics if p violates the PrimeLimit invariant. It is called by
// every constructor in this package before the value is returned, so a
// PrimeLimit obtained from primelimit is always well-formed; callers who
// assemble one by hand bypass this check.
func validate(p PrimeLimit) PrimeLimit {
	if len(p.Pitches) == 0 {
		panic(fmt.Sprintf("primelimit: %v", ErrEmptyLimit))
	}
	if len(p.Pitches) != len(p.Headings) {
		panic(fmt.Sprintf("primelimit: %v", ErrHeadingMismatch))
	}
	for _, pitch := range p.Pitches {
		if pitch <= 0 {
			panic(fmt.Sprintf("primelimit: %v", ErrNonPositivePitch))
		}
	}

	return p
}

// cents converts a frequency ratio to cents: 1200 * log2(ratio).
func cents(ratio float64) Cents {
	return math.Log2(ratio) * 1200.0
}
