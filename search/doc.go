// Package search is the bounded equal-temperament search: LimitedMappings
// is the pruned recursive walk over a p-dimensional integer lattice bounded
// by Cangwu badness, and GetEqualTemperaments is the driver
// that calls it with an increasing n_notes and a tightening cap until the
// best n_results mappings are found.
package search
