package weighted

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// Matrix is the Tenney-weighted real matrix of a mapping: a (d x r) dense
// matrix whose entry (i, j) is mapping[j][i] * 1200/pitches[i].
type Matrix struct {
	dense *mat.Dense
	rows  int
	cols  int
}

// Build derives the weighted mapping of m in the given prime limit.
// Panics if m's dimension does not match limit's (a precondition
// violation, not a recoverable error).
func Build(limit primelimit.PrimeLimit, m hnf.Mapping) Matrix {
	d := limit.Dimension()
	r := len(m)
	if hnf.Dimension(m) != d {
		panic("weighted: mapping dimension does not match prime limit")
	}
	data := make([]float64, d*r)
	for j, col := range m {
		for i, exp := range col {
			data[i*r+j] = float64(exp) * 1200.0 / limit.Pitches[i]
		}
	}

	return Matrix{dense: mat.NewDense(d, r, data), rows: d, cols: r}
}

// Dense exposes the underlying gonum matrix for callers that need direct
// linear-algebra access (tuning's pseudo-inverse, unison's adjoint).
func (m Matrix) Dense() *mat.Dense { return m.dense }

// Rows returns d, the prime-limit dimension.
func (m Matrix) Rows() int { return m.rows }

// Cols returns r, the temperament rank.
func (m Matrix) Cols() int { return m.cols }

// RowMean returns the mean of each column across all d rows: a length-r
// vector, one entry per generator.
func (m Matrix) RowMean() []float64 {
	means := make([]float64, m.cols)
	for j := 0; j < m.cols; j++ {
		var sum float64
		for i := 0; i < m.rows; i++ {
			sum += m.dense.At(i, j)
		}
		means[j] = sum / float64(m.rows)
	}

	return means
}

// RMSOfMatrix computes sqrt(det(AᵀA / rows(A))) via LU factorisation of the
// Gram matrix AᵀA.
func RMSOfMatrix(a *mat.Dense) float64 {
	rows, cols := a.Dims()
	var gram mat.Dense
	gram.Mul(a.T(), a)

	var lu mat.LU
	lu.Factorize(&gram)
	det := lu.Det()

	// det(AᵀA / d) = det(AᵀA) / d^cols, since dividing an r x r matrix by a
	// scalar scales its determinant by that scalar to the r-th power.
	scaled := det / math.Pow(float64(rows), float64(cols))
	if scaled < 0 {
		// Guard against a tiny negative value from floating-point noise on
		// a matrix that is mathematically positive semi-definite.
		scaled = 0
	}

	return math.Sqrt(scaled)
}

// Complexity is the RMS of the weighted mapping itself.
func Complexity(limit primelimit.PrimeLimit, m hnf.Mapping) float64 {
	return RMSOfMatrix(Build(limit, m).Dense())
}

// Badness is the Cangwu badness of m at parameter ek (cents/octave): the
// RMS of the weighted mapping after subtracting its Cangwu-shrunk row-mean
// translation, expressed in cents.
func Badness(limit primelimit.PrimeLimit, m hnf.Mapping, ek float64) float64 {
	w := Build(limit, m)
	eps := ek / 1200.0
	scale := 1.0 - eps/math.Sqrt(1+eps*eps)

	rows, cols := w.Rows(), w.Cols()
	mean := w.RowMean()
	translation := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			translation.Set(i, j, scale*mean[j])
		}
	}

	var diff mat.Dense
	diff.Sub(w.Dense(), translation)

	return RMSOfMatrix(&diff) * 1200.0
}
