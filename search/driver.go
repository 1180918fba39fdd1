package search

import (
	"math"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/pqueue"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/weighted"
)

// DefaultMaxNotes defensively bounds GetEqualTemperaments' n_notes loop:
// on a pathological (near-zero ek, inharmonic) limit the `n_notes <
// cap/ek` termination condition can in principle fail to tighten fast
// enough.
const DefaultMaxNotes = 1 << 20

// Options configures GetEqualTemperaments.
type Options struct {
	MaxNotes int
}

// Option customises Options.
type Option func(*Options)

// WithMaxNotes overrides DefaultMaxNotes. Panics if n <= 0.
func WithMaxNotes(n int) Option {
	if n <= 0 {
		panic("search: WithMaxNotes requires a positive bound")
	}

	return func(o *Options) { o.MaxNotes = n }
}

func defaultOptions() Options {
	return Options{MaxNotes: DefaultMaxNotes}
}

// GetEqualTemperaments returns the nResults equal temperaments of lowest
// Cangwu badness (parameter ek, cents/octave) in the given prime limit,
// ascending by badness. It normalises pitches so pitches[0] == 1200,
// estimates a loose initial cutoff from the first d+nResults patent vals,
// then widens n_notes while tightening the cutoff from the priority
// queue's own worst retained badness.
func GetEqualTemperaments(limit primelimit.PrimeLimit, ek float64, nResults int, opts ...Option) []hnf.ETMap {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if nResults <= 0 {
		panic("search: nResults must be positive")
	}

	d := limit.Dimension()
	scale := 1200.0 / limit.Pitches[0]
	pitches := make([]float64, d)
	for i, p := range limit.Pitches {
		pitches[i] = p * scale
	}
	normLimit := primelimit.PrimeLimit{Pitches: pitches, Headings: limit.Headings, Label: limit.Label}

	preliminary := 0.0
	for n := 1; n <= d+nResults; n++ {
		et := patentVal(pitches, hnf.Exponent(n))
		if b := weighted.Badness(normLimit, hnf.Mapping{et}, ek); b > preliminary {
			preliminary = b
		}
	}

	q := pqueue.New[hnf.ETMap](nResults)
	capV := preliminary
	for nNotes := hnf.Exponent(1); float64(nNotes) < capV/ek && int(nNotes) < cfg.MaxNotes; nNotes++ {
		for _, m := range LimitedMappings(nNotes, ek, capV, pitches) {
			b := weighted.Badness(normLimit, hnf.Mapping{m}, ek)
			q.Push(b, m)
		}
		if qc := q.Cap(); qc < capV {
			capV = qc
		}
	}

	items := q.Items()
	out := make([]hnf.ETMap, len(items))
	for i, it := range items {
		out[i] = it.Payload
	}

	return out
}

// patentVal rounds each prime's pitch to the nearest step of an nNotes-note
// equal division, i.e. the "patent val" for that division.
func patentVal(pitches []float64, nNotes hnf.Exponent) hnf.ETMap {
	et := make(hnf.ETMap, len(pitches))
	for i, p := range pitches {
		et[i] = hnf.Exponent(math.Round(float64(nNotes) * p / pitches[0]))
	}

	return et
}
