package primelimit

import (
	"fmt"
	"strconv"
	"strings"
)

// Consecutive builds a PrimeLimit from every prime at or below harmonicCap,
// labelling each with its decimal numeral: a "p-limit" in the usual
// tuning-theory sense.
func Consecutive(harmonicCap Harmonic) PrimeLimit {
	primes := primesBelow(harmonicCap + 1)
	if len(primes) == 0 {
		panic(fmt.Sprintf("primelimit: %v", ErrEmptyLimit))
	}
	pitches := make([]Cents, len(primes))
	headings := make([]string, len(primes))
	for i, p := range primes {
		pitches[i] = cents(float64(p))
		headings[i] = strconv.Itoa(int(p))
	}

	return validate(PrimeLimit{
		Pitches:  pitches,
		Headings: headings,
		Label:    strconv.Itoa(int(harmonicCap)),
	})
}

// Explicit builds a PrimeLimit from an arbitrary ordered list of harmonics
// (not necessarily prime, not necessarily consecutive), e.g. [2, 3, 7, 11].
func Explicit(harmonics []Harmonic) PrimeLimit {
	if len(harmonics) == 0 {
		panic(fmt.Sprintf("primelimit: %v", ErrEmptyLimit))
	}
	pitches := make([]Cents, len(harmonics))
	headings := make([]string, len(harmonics))
	labelParts := make([]string, len(harmonics))
	for i, h := range harmonics {
		pitches[i] = cents(float64(h))
		headings[i] = strconv.Itoa(int(h))
		labelParts[i] = headings[i]
	}

	return validate(PrimeLimit{
		Pitches:  pitches,
		Headings: headings,
		Label:    strings.Join(labelParts, "."),
	})
}

// Inharmonic builds a PrimeLimit directly from cents-valued pitches, for
// scales with no rational-harmonic basis at all. Headings default to the
// pitch values themselves, formatted to three decimals.
func Inharmonic(pitchesInCents []Cents) PrimeLimit {
	if len(pitchesInCents) == 0 {
		panic(fmt.Sprintf("primelimit: %v", ErrEmptyLimit))
	}
	headings := make([]string, len(pitchesInCents))
	for i, p := range pitchesInCents {
		headings[i] = strconv.FormatFloat(p, 'f', 3, 64)
	}

	return validate(PrimeLimit{
		Pitches:  append([]Cents(nil), pitchesInCents...),
		Headings: headings,
		Label:    "inharmonic",
	})
}

// Parse accepts the textual prime-limit grammar used throughout the package:
//
//	"7"       -> Consecutive(7)            (2.3.5.7)
//	"2.3.7"   -> Explicit([2, 3, 7])
//	"2.3.7/5" -> explicit harmonics with one ratio-valued generalised partial
//
// Each dot-separated token is either a bare integer harmonic or a "n/d"
// ratio; ratio tokens keep their original string as the display heading
// (e.g. "7/5") while contributing cents(n/d) to Pitches. Returns ErrParse if
// any token fails to parse or the whole string is empty.
func Parse(text string) (PrimeLimit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return PrimeLimit{}, fmt.Errorf("%q: %w", text, ErrParse)
	}
	if !strings.Contains(text, ".") {
		n, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			return PrimeLimit{}, fmt.Errorf("%q: %w", text, ErrParse)
		}

		return Consecutive(Harmonic(n)), nil
	}

	tokens := strings.Split(text, ".")
	pitches := make([]Cents, len(tokens))
	headings := make([]string, len(tokens))
	for i, tok := range tokens {
		ratio, err := parseRatioToken(tok)
		if err != nil {
			return PrimeLimit{}, fmt.Errorf("%q: %w", text, ErrParse)
		}
		pitches[i] = cents(ratio)
		headings[i] = tok
	}

	return validate(PrimeLimit{
		Pitches:  pitches,
		Headings: headings,
		Label:    text,
	}), nil
}

// parseRatioToken parses either a bare integer ("7") or a ratio ("7/5") into
// its float64 value.
func parseRatioToken(tok string) (float64, error) {
	if num, den, ok := strings.Cut(tok, "/"); ok {
		n, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, ErrParse
		}

		return n / d, nil
	}

	return strconv.ParseFloat(tok, 64)
}

// primesBelow returns every prime strictly less than n by an incremental
// sieve.
func primesBelow(n Harmonic) []Harmonic {
	if n < 3 {
		return nil
	}
	top := int(n)
	hasFactor := make([]bool, top-2)
	var primes []Harmonic
	for i := 2; i < top; i++ {
		if !hasFactor[i-2] {
			for j := i + i; j < top; j += i {
				hasFactor[j-2] = true
			}
			primes = append(primes, Harmonic(i))
		}
	}

	return primes
}
