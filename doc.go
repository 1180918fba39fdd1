// Package regulartemp is a toolkit for finding and analysing regular
// musical temperaments.
//
// 🎵 What is regulartemp?
//
//	A deterministic, zero-dependency-beyond-gonum library that brings
//	together:
//
//	  • Prime-limit search: bounded recursion over equal temperaments,
//	    ranked by Tenney-weighted Cangwu badness
//	  • Lattice reduction: Hermite normal form canonicalisation so two
//	    mappings of the same temperament compare equal
//	  • Tuning optimisation: Tenney-Euclidean (least squares) and
//	    Tenney-OPtimal (minimax) generator tunings
//	  • Unison vectors, Fokker periodicity blocks and the warted ET
//	    naming convention ("12", "31", "41e" and friends)
//
// ✨ Why choose regulartemp?
//
//   - Deterministic     — pure functions of (PrimeLimit, parameters); no
//     hidden global state but the priority queue's documented single-writer
//     contract
//   - Grounded in theory — Cangwu badness, TE/TOP optimisation and warted
//     names all follow the regular-temperament literature
//   - Pure Go            — no cgo; gonum.org/v1/gonum for dense linear
//     algebra, the standard library everywhere else
//
// Under the hood, everything is organised under small, single-concern
// packages:
//
//	primelimit/  — PrimeLimit construction and parsing
//	hnf/         — Hermite normal form reduction and canonical keys
//	weighted/    — Tenney weighting, RMS badness and complexity
//	pqueue/      — the bounded priority queue the search packages share
//	search/      — bounded recursive search for equal temperaments
//	rank/        — extending a rank-r mapping to rank-(r+1)
//	tuning/      — TE and TOP tuning optimisation
//	unison/      — unison vector recovery and comma membership
//	fokker/      — maximally-even scales and Fokker periodicity blocks
//	naming/      — warted ET names, canonical temperament names, ratios
//	temperament/ — the public facade composing the packages above
//
// See DESIGN.md for the reasoning behind each package's design.
package regulartemp
