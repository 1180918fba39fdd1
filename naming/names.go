package naming

import (
	"strconv"
	"strings"

	"github.com/x31eq/regulartemp/hnf"
	"github.com/x31eq/regulartemp/primelimit"
)

// namedEntry is one row of the canonical name table: a temperament class,
// identified by its prime-limit headings and Hermite key, with a
// well-known name.
type namedEntry struct {
	headings string // headings joined with "."
	key      string // hnf.Key, joined with ","
	name     string
}

// canonicalNames is the compile-time table of well-known temperament
// classes: Meantone (5-limit), Marvel and Jove (11-limit).
var canonicalNames = []namedEntry{
	{headings: "2.3.5", key: keyString(hnf.Mapping{{1, 0, -4}, {0, 1, 4}}), name: "Meantone"},
	{
		headings: "2.3.5.7.11",
		key: keyString(hnf.Mapping{
			{1, 0, 0, -5, 12},
			{0, 1, 0, 2, -1},
			{0, 0, 1, 2, -3},
		}),
		name: "Marvel",
	},
	{
		headings: "2.3.5.7.11",
		key: keyString(hnf.Mapping{
			{1, 1, 1, 2, 2},
			{0, 2, 1, 1, 5},
			{0, 0, 2, 1, 0},
		}),
		name: "Jove",
	},
}

func keyString(m hnf.Mapping) string {
	k := hnf.Key(m)
	parts := make([]string, len(k))
	for i, v := range k {
		parts[i] = strconv.Itoa(int(v))
	}

	return strings.Join(parts, ",")
}

// CanonicalName looks up m's well-known name in limit, returning "" if m's
// temperament class is not in the table.
func CanonicalName(limit primelimit.PrimeLimit, m hnf.Mapping) string {
	headings := strings.Join(limit.Headings, ".")
	key := keyString(m)
	for _, entry := range canonicalNames {
		if entry.headings == headings && entry.key == key {
			return entry.name
		}
	}

	return ""
}
