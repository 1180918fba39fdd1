// Package unison recovers the commatic unison vector — the single
// prime-space interval a codimension-1 mapping sends to zero generator
// steps — and the tests built on it: whether an arbitrary interval tempers
// out under a mapping, and which candidate equal temperaments share a
// given comma.
package unison
