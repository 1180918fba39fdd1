// Package tuning provides the two real-valued tuning optimisers:
// TE (Tenney-Euclidean), a closed-form Moore-Penrose pseudo-inverse of
// the weighted mapping, and TOP (Tenney-OPtimal), a minimax linear
// program solved with gonum's lp.Simplex.
//
// Both optimisers produce a tuned-temperament result (mapping plus a
// generator tuning in cents); the derived quantities — tuning map,
// mistunings, stretch, unstretched variants — are pure functions of
// (PrimeLimit, Mapping, Tuning) and so are implemented once, in shared.go,
// against a small interface both TETuning and TOPTuning satisfy.
package tuning
