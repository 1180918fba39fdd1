// Package rank implements the higher-rank extension search: combining a
// list of surviving equal temperaments with a list of existing rank-r
// mappings into rank-(r+1) candidates, pruned by a priority queue and
// deduplicated by their canonical Hermite key.
package rank
