// Package pqueue implements the fixed-capacity min-cap priority queue used
// by the equal-temperament and higher-rank searches: it retains the
// n_results best-scoring payloads seen so far, tightening its `Cap` (the
// worst badness still retained) as the search narrows in.
//
// Sizes here run from tens to a few hundred entries, so a sorted slice
// with insert-in-place is the whole implementation; a binary heap would
// be an equivalent choice. Push is guarded by a mutex only so that
// concurrent use is safe rather than silent corruption — the searches
// themselves are single-threaded.
package pqueue
