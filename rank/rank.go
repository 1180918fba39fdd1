package rank

import (
	"math"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/pqueue"
	"github.com/x31eq/regulartemp/primelimit"
	"github.com/x31eq/regulartemp/weighted"
)

// Options configures HigherRankSearch.
type Options struct {
	// SafetyMargin widens the badness cutoff tested before the (expensive)
	// canonical-key computation is attempted, so that near-miss candidates
	// still get deduplicated against rather than dropped outright. It does
	// not change which n_results mappings are ultimately returned — the
	// priority queue still enforces its own capacity and ordering — only
	// how much extra search the dedup pass is willing to do. A
	// quality-of-search heuristic, not a correctness requirement, so it
	// is an explicit, zero-by-default option.
	SafetyMargin float64
}

// Option customises Options.
type Option func(*Options)

// WithSafetyMargin sets Options.SafetyMargin.
func WithSafetyMargin(cents float64) Option {
	return func(o *Options) { o.SafetyMargin = cents }
}

// DefaultSafetyMargin returns 4*sqrt(d), an empirical additive buffer that
// scales with the prime limit's dimension.
func DefaultSafetyMargin(dimension int) float64 {
	return 4 * math.Sqrt(float64(dimension))
}

// HigherRankSearch combines every current rank-r mapping with every
// candidate equal temperament into rank-(r+1) mappings, keeping the
// nResults lowest-badness results that are genuinely rank-(r+1) (the new
// column must be linearly independent of the existing ones) and distinct
// under Hermite-key deduplication.
func HigherRankSearch(
	limit primelimit.PrimeLimit,
	candidateETs []hnf.ETMap,
	currentMappings []hnf.Mapping,
	ek float64,
	nResults int,
	opts ...Option,
) []hnf.Mapping {
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if nResults <= 0 {
		panic("rank: nResults must be positive")
	}

	q := pqueue.New[hnf.Mapping](nResults)
	seen := make(map[string]struct{})

	for _, current := range currentMappings {
		r := len(current)
		for _, et := range candidateETs {
			extended := append(hnf.CloneMapping(current), append(hnf.ETMap(nil), et...))
			if hnf.Rank(extended) != r+1 {
				continue
			}
			badness := weighted.Badness(limit, extended, ek)
			if badness >= q.Cap()+cfg.SafetyMargin {
				continue
			}
			keyStr := keyString(hnf.Key(extended))
			if _, dup := seen[keyStr]; dup {
				continue
			}
			seen[keyStr] = struct{}{}
			q.Push(badness, extended)
		}
	}

	items := q.Items()
	out := make([]hnf.Mapping, len(items))
	for i, it := range items {
		out[i] = it.Payload
	}

	return out
}

func keyString(k hnf.ETMap) string {
	buf := make([]byte, 0, 4*len(k))
	for _, v := range k {
		buf = appendInt(buf, int64(v))
		buf = append(buf, ',')
	}

	return string(buf)
}

func appendInt(buf []byte, v int64) []byte {
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	if v == 0 {
		return append(buf, '0')
	}
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}
