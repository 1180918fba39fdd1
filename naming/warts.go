package naming

import (
	"math"
	"strconv"
	"strings"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// wartAlphabet is the letter pool warts are drawn from: 'a'..'z' skipping
// 'p', which is reserved for the whole-mapping "patent val" suffix.
// Indices past the Latin letters continue with Hangzhou numerals — a
// canonical continuation, not to be substituted.
var wartAlphabet = buildWartAlphabet()

var hangzhouNumerals = []rune{'〇', '一', '二', '三', '四', '五', '六', '七', '八', '九'}

// nonPrimeBase is the index of 'q' in wartAlphabet: the first letter
// assigned to non-prime partials.
const nonPrimeBase = 15

func buildWartAlphabet() []rune {
	var letters []rune
	for c := 'a'; c <= 'z'; c++ {
		if c == 'p' {
			continue
		}
		letters = append(letters, c)
	}

	return letters
}

// alphabetLetter resolves an index into the extended wart alphabet,
// repeating the Hangzhou numerals for absurdly high-dimensional limits.
func alphabetLetter(i int) string {
	if i < len(wartAlphabet) {
		return string(wartAlphabet[i])
	}
	i -= len(wartAlphabet)

	return string(hangzhouNumerals[i%len(hangzhouNumerals)])
}

// wartLetters assigns a wart letter to every column of limit. A heading
// that is a prime number gets the letter at its position in the prime
// sequence: 'a' for 2, 'b' for 3, 'c' for 5, 'd' for 7, and so on. Any
// other heading (a ratio like "7/5", a composite, a cents string) gets
// the next letter from 'q' onward, in column order.
func wartLetters(limit primelimit.PrimeLimit) []string {
	letters := make([]string, len(limit.Headings))
	nonPrime := nonPrimeBase
	for i, h := range limit.Headings {
		if n, err := strconv.Atoi(h); err == nil && isPrime(n) {
			letters[i] = alphabetLetter(primeIndex(n))
			continue
		}
		letters[i] = alphabetLetter(nonPrime)
		nonPrime++
	}

	return letters
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for f := 2; f*f <= n; f++ {
		if n%f == 0 {
			return false
		}
	}

	return true
}

// primeIndex returns the number of primes below p, i.e. p's 0-based
// position in the prime sequence.
func primeIndex(p int) int {
	idx := 0
	for n := 2; n < p; n++ {
		if isPrime(n) {
			idx++
		}
	}

	return idx
}

// patentColumn reports the patent (nearest-rounding) step count for column
// i at nNotes steps to the equivalence interval, together with the sign of
// the "next best" (second-closest) rounding direction: -1 if the next best
// approximation is the patent value minus one (i.e. the continuous value's
// fractional part is >= 0.5, so patent rounds up), +1 if it is the patent
// value plus one (fractional part < 0.5, patent rounds down).
func patentColumn(limit primelimit.PrimeLimit, nNotes hnf.Exponent, i int) (patent hnf.Exponent, nextBestDir int) {
	x := float64(nNotes) * limit.Pitches[i] / limit.Pitches[0]
	floor := math.Floor(x)
	frac := x - floor
	if frac >= 0.5 {
		return hnf.Exponent(floor + 1), -1
	}

	return hnf.Exponent(floor), 1
}

// PatentVal returns the nearest-rounding ETMap for nNotes steps to the
// equivalence interval in limit: the "patent val".
func PatentVal(limit primelimit.PrimeLimit, nNotes hnf.Exponent) hnf.ETMap {
	d := limit.Dimension()
	et := make(hnf.ETMap, d)
	for i := 0; i < d; i++ {
		et[i], _ = patentColumn(limit, nNotes, i)
	}

	return et
}

// AmbiguousET reports whether et's rounding is a "close call" in any
// column: the second-closest approximation's error is within 20% of the
// closest's (fixed tolerance, 1.20).
func AmbiguousET(limit primelimit.PrimeLimit, et hnf.ETMap) bool {
	const tolerance = 1.20
	nNotes := et[0]
	for i := range et {
		x := float64(nNotes) * limit.Pitches[i] / limit.Pitches[0]
		patent, nextBestDir := patentColumn(limit, nNotes, i)
		errBest := math.Abs(x - float64(patent))
		if errBest == 0 {
			continue
		}
		next := patent + hnf.Exponent(nextBestDir)
		errNext := math.Abs(x - float64(next))
		if errNext <= tolerance*errBest {
			return true
		}
	}

	return false
}

// wartsForColumn returns how many copies of column i's wart letter to
// write for an ETMap et: 2*delta copies normally, or 2*delta - 1 if et's
// direction away from the patent val agrees with the direction of the
// next-best (second-closest) approximation — landing on the next-best
// side "costs" one fewer wart than overshooting past it.
func wartsForColumn(limit primelimit.PrimeLimit, et hnf.ETMap, i int) int {
	patent, nextBestDir := patentColumn(limit, et[0], i)
	delta := int(et[i]) - int(patent)
	if delta == 0 {
		return 0
	}
	absDelta := delta
	dir := 1
	if delta < 0 {
		absDelta = -delta
		dir = -1
	}
	if dir == nextBestDir {
		return 2*absDelta - 1
	}

	return 2 * absDelta
}

// WartedETName renders et as its canonical warted identifier in limit: the
// step count, prefixed with the equivalence interval's own wart letter
// when that interval is not "2", a trailing "p" if et is exactly the
// patent val, or else a trailing run of wart letters (one run per
// mismatched column, in column order) encoding how and how far et
// deviates from the patent val.
func WartedETName(limit primelimit.PrimeLimit, et hnf.ETMap) string {
	letters := wartLetters(limit)

	var b strings.Builder
	if limit.Headings[0] != "2" {
		b.WriteString(letters[0])
	}
	b.WriteString(strconv.Itoa(int(et[0])))

	patent := PatentVal(limit, et[0])
	if equalETMap(et, patent) {
		b.WriteByte('p')

		return b.String()
	}

	for i := 1; i < len(et); i++ {
		if n := wartsForColumn(limit, et, i); n > 0 {
			b.WriteString(strings.Repeat(letters[i], n))
		}
	}

	return b.String()
}

func equalETMap(a, b hnf.ETMap) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ETFromName parses a warted ET identifier, the inverse of WartedETName:
// an optional prefix wart naming the equivalence interval, a decimal step
// count, an optional trailing "p", or a trailing run of wart letters.
// Returns ErrUnknownName if name does not fit this grammar or uses a
// letter no column of limit owns.
func ETFromName(limit primelimit.PrimeLimit, name string) (hnf.ETMap, error) {
	letters := wartLetters(limit)
	columnOf := make(map[string]int, len(letters))
	for i, l := range letters {
		columnOf[l] = i
	}

	runes := []rune(name)
	pos := 0

	// The prefix wart marks the equivalence interval; it carries no
	// adjustment of its own, so it is checked and discarded.
	if pos < len(runes) && string(runes[pos]) == letters[0] && limit.Headings[0] != "2" {
		pos++
	}

	digitsStart := pos
	for pos < len(runes) && runes[pos] >= '0' && runes[pos] <= '9' {
		pos++
	}
	if pos == digitsStart {
		return nil, ErrUnknownName
	}
	nNotes, err := strconv.Atoi(string(runes[digitsStart:pos]))
	if err != nil {
		return nil, ErrUnknownName
	}

	isPatent := false
	suffixCounts := make(map[int]int)
	for pos < len(runes) {
		if runes[pos] == 'p' && pos == len(runes)-1 {
			isPatent = true
			pos++
			continue
		}
		col, ok := columnOf[string(runes[pos])]
		if !ok {
			return nil, ErrUnknownName
		}
		suffixCounts[col]++
		pos++
	}

	et := PatentVal(limit, hnf.Exponent(nNotes))
	if isPatent && len(suffixCounts) > 0 {
		return nil, ErrUnknownName
	}

	for col, count := range suffixCounts {
		applyWarts(limit, et, col, count)
	}

	return et, nil
}

// applyWarts nudges et[col] away from its patent value by the step count
// implied by `count` wart-letter repetitions, inverting wartsForColumn:
// count copies means |delta| = ceil(count/2), with the direction resolved
// by whether count is odd (next-best side, cheaper by one) or even.
func applyWarts(limit primelimit.PrimeLimit, et hnf.ETMap, col, count int) {
	if count == 0 {
		return
	}
	_, nextBestDir := patentColumn(limit, et[0], col)
	absDelta := (count + 1) / 2
	dir := nextBestDir
	if count%2 == 0 {
		dir = -nextBestDir
	}
	et[col] += hnf.Exponent(dir * absDelta)
}

// MappingFromName parses a rank-r temperament identifier such as
// "12 & 19 & 31": its ETs, space/"&"/"+"-separated, each parsed with
// ETFromName. Returns ErrUnknownMapping if any token fails to parse.
func MappingFromName(limit primelimit.PrimeLimit, name string) (hnf.Mapping, error) {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '&' || r == '+' || r == ' '
	})
	if len(fields) == 0 {
		return nil, ErrUnknownMapping
	}

	mapping := make(hnf.Mapping, 0, len(fields))
	for _, f := range fields {
		et, err := ETFromName(limit, f)
		if err != nil {
			return nil, ErrUnknownMapping
		}
		mapping = append(mapping, et)
	}

	return mapping, nil
}
