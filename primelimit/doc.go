// Package primelimit describes the harmonic basis a temperament search is
// carried out against: an ordered list of partials expressed in cents,
// together with display headings ("2", "3", "7/5", ...).
//
// A PrimeLimit is a plain value type. It is built once by one of the
// constructors (Consecutive, Explicit, Inharmonic, Parse) and then read many
// times by every other package in this module; nothing here mutates a
// PrimeLimit after construction.
package primelimit
