package naming

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// maxRatioBits bounds ratio reconstruction: the arithmetic runs in
// math/big so it never wraps, but a reconstructed numerator or
// denominator wider than an int64 cannot cross GetRatio's signature and
// is reported as overflow rather than silently truncated.
const maxRatioBits = 63

// headingRatio parses a PrimeLimit heading ("7", "7/5") into its rational
// value.
func headingRatio(heading string) (*big.Rat, bool) {
	if num, den, ok := strings.Cut(heading, "/"); ok {
		n, ok1 := new(big.Int).SetString(num, 10)
		d, ok2 := new(big.Int).SetString(den, 10)
		if !ok1 || !ok2 || d.Sign() == 0 {
			return nil, false
		}

		return new(big.Rat).SetFrac(n, d), true
	}
	n, ok := new(big.Int).SetString(heading, 10)
	if !ok {
		return nil, false
	}

	return new(big.Rat).SetInt(n), true
}

// primeFactorization factors the positive integer n by trial division into
// prime -> exponent.
func primeFactorization(n *big.Int) map[int64]int64 {
	factors := make(map[int64]int64)
	rem := new(big.Int).Set(n)
	two := big.NewInt(2)
	for new(big.Int).Mod(rem, two).Sign() == 0 {
		factors[2]++
		rem.Div(rem, two)
	}
	for p := int64(3); new(big.Int).Mul(big.NewInt(p), big.NewInt(p)).Cmp(rem) <= 0; p += 2 {
		bp := big.NewInt(p)
		for new(big.Int).Mod(rem, bp).Sign() == 0 {
			factors[p]++
			rem.Div(rem, bp)
		}
	}
	if rem.Cmp(big.NewInt(1)) > 0 {
		factors[rem.Int64()]++
	}

	return factors
}

// ratioFactorization returns the prime factorization exponents (as
// big.Rat, since the ratio's numerator and denominator each contribute
// with opposite sign) of a rational value.
func ratioFactorization(r *big.Rat) map[int64]*big.Rat {
	out := make(map[int64]*big.Rat)
	for p, e := range primeFactorization(r.Num()) {
		out[p] = new(big.Rat).SetInt64(e)
	}
	for p, e := range primeFactorization(r.Denom()) {
		if cur, ok := out[p]; ok {
			out[p] = cur.Sub(cur, new(big.Rat).SetInt64(e))
		} else {
			out[p] = new(big.Rat).SetInt64(-e)
		}
	}

	return out
}

// FactorizeRatio expresses the ratio num/den as an ETMap of exponents over
// limit's headings, solving the linear system "sum_j coeff_j * basis_j =
// target" in prime-exponent space by Gaussian elimination over the
// rationals. Returns ErrRatioNotInLimit if the ratio is not an integer
// combination of limit's headings.
func FactorizeRatio(limit primelimit.PrimeLimit, num, den int64) (hnf.ETMap, error) {
	target := ratioFactorization(new(big.Rat).SetFrac64(num, den))

	basisRatios := make([]*big.Rat, limit.Dimension())
	for i, h := range limit.Headings {
		r, ok := headingRatio(h)
		if !ok {
			return nil, fmt.Errorf("%w: heading %q is not a plain ratio", ErrRatioNotInLimit, h)
		}
		basisRatios[i] = r
	}
	basisFactors := make([]map[int64]*big.Rat, len(basisRatios))
	primes := make(map[int64]struct{})
	for i, r := range basisRatios {
		basisFactors[i] = ratioFactorization(r)
		for p := range basisFactors[i] {
			primes[p] = struct{}{}
		}
	}
	for p := range target {
		primes[p] = struct{}{}
	}

	primeList := make([]int64, 0, len(primes))
	for p := range primes {
		primeList = append(primeList, p)
	}

	d := len(basisRatios)
	rows := len(primeList)
	a := make([][]*big.Rat, rows)
	for r, p := range primeList {
		row := make([]*big.Rat, d+1)
		for j := 0; j < d; j++ {
			v, ok := basisFactors[j][p]
			if !ok {
				v = new(big.Rat)
			}
			row[j] = new(big.Rat).Set(v)
		}
		rhs, ok := target[p]
		if !ok {
			rhs = new(big.Rat)
		}
		row[d] = new(big.Rat).Set(rhs)
		a[r] = row
	}

	coeffs, ok := solveLeastOverdetermined(a, d)
	if !ok {
		return nil, ErrRatioNotInLimit
	}

	out := make(hnf.ETMap, d)
	for j, c := range coeffs {
		if !c.IsInt() {
			return nil, ErrRatioNotInLimit
		}
		out[j] = hnf.Exponent(c.Num().Int64())
	}

	return out, nil
}

// solveLeastOverdetermined performs Gauss-Jordan elimination on an
// (rows x (d+1)) augmented rational matrix with potentially more equations
// than unknowns, returning the d solved coefficients if the system is
// consistent. Rows beyond the pivoted ones must reduce to all-zero for the
// system to be consistent (the ratio genuinely lies in the basis span).
func solveLeastOverdetermined(a [][]*big.Rat, d int) ([]*big.Rat, bool) {
	rows := len(a)
	pivotRow := 0
	pivotCol := make([]int, 0, d)
	for col := 0; col < d && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if a[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		a[pivotRow], a[sel] = a[sel], a[pivotRow]
		pivot := a[pivotRow][col]
		for c := range a[pivotRow] {
			a[pivotRow][c] = new(big.Rat).Quo(a[pivotRow][c], pivot)
		}
		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := a[r][col]
			if factor.Sign() == 0 {
				continue
			}
			for c := range a[r] {
				a[r][c] = new(big.Rat).Sub(a[r][c], new(big.Rat).Mul(factor, a[pivotRow][c]))
			}
		}
		pivotCol = append(pivotCol, col)
		pivotRow++
	}

	for r := pivotRow; r < rows; r++ {
		if a[r][d].Sign() != 0 {
			return nil, false
		}
	}

	coeffs := make([]*big.Rat, d)
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	for i, col := range pivotCol {
		coeffs[col] = a[i][d]
	}

	return coeffs, true
}

// ParseAsVector parses a "n:d" or "n/d" ratio string and factorises it in
// limit with FactorizeRatio.
func ParseAsVector(limit primelimit.PrimeLimit, ratio string) (hnf.ETMap, error) {
	sep := ":"
	if !strings.Contains(ratio, sep) {
		sep = "/"
	}
	numStr, denStr, ok := strings.Cut(ratio, sep)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRatioNotInLimit, ratio)
	}
	num, err1 := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	den, err2 := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("%w: %q", ErrRatioNotInLimit, ratio)
	}

	return FactorizeRatio(limit, num, den)
}

// GetRatio reconstructs the (numerator, denominator) ratio an ETMap
// represents in limit, the inverse of FactorizeRatio: multiply each
// heading raised to its exponent. Returns ErrNumericOverflow if the result
// would not fit an int64.
func GetRatio(limit primelimit.PrimeLimit, ket hnf.ETMap) (num, den int64, err error) {
	numAcc := big.NewInt(1)
	denAcc := big.NewInt(1)
	for i, exp := range ket {
		r, ok := headingRatio(limit.Headings[i])
		if !ok {
			return 0, 0, fmt.Errorf("%w: heading %q is not a plain ratio", ErrRatioNotInLimit, limit.Headings[i])
		}
		e := int64(exp)
		neg := e < 0
		if neg {
			e = -e
		}
		n := new(big.Int).Exp(r.Num(), big.NewInt(e), nil)
		dd := new(big.Int).Exp(r.Denom(), big.NewInt(e), nil)
		if neg {
			n, dd = dd, n
		}
		numAcc.Mul(numAcc, n)
		denAcc.Mul(denAcc, dd)
	}

	g := new(big.Int).GCD(nil, nil, numAcc, denAcc)
	if g.Sign() != 0 {
		numAcc.Div(numAcc, g)
		denAcc.Div(denAcc, g)
	}

	if numAcc.BitLen() > maxRatioBits || denAcc.BitLen() > maxRatioBits {
		return 0, 0, ErrNumericOverflow
	}

	return numAcc.Int64(), denAcc.Int64(), nil
}

// Stringify renders an ETMap as its ratio's "n/d" text, falling back to
// the raw exponent vector if the ratio overflows or the limit's headings
// are not plain ratios.
func Stringify(limit primelimit.PrimeLimit, ket hnf.ETMap) string {
	num, den, err := GetRatio(limit, ket)
	if err != nil {
		return ketString(ket)
	}

	return strconv.FormatInt(num, 10) + "/" + strconv.FormatInt(den, 10)
}

func ketString(ket hnf.ETMap) string {
	parts := make([]string, len(ket))
	for i, v := range ket {
		parts[i] = strconv.Itoa(int(v))
	}

	return "[" + strings.Join(parts, " ") + "]"
}
