// Package temperament is the public surface a collaborator (CLI, web UI,
// file exporter) consumes, composed from the lower layers (primelimit,
// hnf, weighted, search, rank, tuning, unison, fokker, naming) without
// exposing their internals. Capabilities are split across small structs —
// Class for anything with a mapping, Tuned for anything with a tuning —
// rather than a type hierarchy.
package temperament
