// Package hnf is the "integer lattice" layer: it defines the ETMap and
// Mapping vector types every other package in this module builds on, and
// implements Hermite normal form reduction, the canonical Key derived from
// it, and Rank.
//
// Two mappings describe the same temperament class iff their columns span
// the same integer lattice; HermiteNormalForm picks the unique canonical
// representative of that lattice, and Key flattens it into a single
// comparable/hashable slice.
package hnf
