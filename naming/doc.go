// Package naming turns equal-temperament mappings into human-readable
// "warted" identifiers and back, detects patent vals, factorises ratios
// over a prime limit's headings, and keeps a small canonical name table
// for well-known temperament classes.
package naming
