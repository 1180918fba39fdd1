package tuning

import "errors"

var (
	// ErrNoPseudoInverse indicates the weighted mapping was rank-deficient,
	// so no Moore-Penrose pseudo-inverse exists. Only malformed mappings
	// trigger this; well-formed rank-r mappings never do.
	ErrNoPseudoInverse = errors.New("tuning: no pseudoinverse (rank-deficient weighted mapping)")

	// ErrLPInfeasible indicates the TOP simplex solver could not find a
	// feasible optimum. Should not occur for well-formed inputs; callers
	// may fall back to TE.
	ErrLPInfeasible = errors.New("tuning: TOP linear program infeasible")
)
