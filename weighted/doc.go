// Package weighted builds the Tenney-weighted real matrix of a mapping and
// computes the root-mean-square measures derived from it: Complexity and
// Cangwu Badness.
//
// The weighted mapping is never stored long-term: it is rebuilt on demand
// from a PrimeLimit and a Mapping by Build, backed by
// gonum.org/v1/gonum/mat so that the Gram-matrix determinant at the heart
// of RMSOfMatrix goes through an LU factorisation rather than a naive
// cofactor expansion. That matters once ET sizes run into the hundreds at
// rank >= 4, where the Gram entries leave float64's exact-integer range.
package weighted
