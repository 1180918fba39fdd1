package primelimit

import "errors"

// Sentinel errors for primelimit operations.
var (
	// ErrEmptyLimit indicates an attempt to build a PrimeLimit with no partials.
	ErrEmptyLimit = errors.New("primelimit: empty limit")

	// ErrNonPositivePitch indicates a pitch value was zero or negative.
	ErrNonPositivePitch = errors.New("primelimit: non-positive pitch")

	// ErrHeadingMismatch indicates pitches and headings have different lengths.
	ErrHeadingMismatch = errors.New("primelimit: pitches/headings length mismatch")

	// ErrParse indicates a prime-limit description string could not be parsed.
	ErrParse = errors.New("primelimit: could not parse limit string")
)
