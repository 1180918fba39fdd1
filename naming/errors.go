package naming

import "errors"

// Sentinel errors for naming operations.
var (
	// ErrUnknownName indicates ETFromName could not parse an ET identifier.
	ErrUnknownName = errors.New("naming: unrecognised ET name")

	// ErrUnknownMapping indicates MappingFromName could not parse a
	// "n & m & ..." temperament identifier.
	ErrUnknownMapping = errors.New("naming: unrecognised mapping name")

	// ErrRatioNotInLimit indicates a ratio's prime factorisation is not
	// expressible in a PrimeLimit's headings.
	ErrRatioNotInLimit = errors.New("naming: ratio does not factor in this limit")

	// ErrNumericOverflow indicates ratio reconstruction from an exponent
	// vector exceeded the supported integer range.
	ErrNumericOverflow = errors.New("naming: ratio reconstruction overflowed")
)
