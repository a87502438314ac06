package naming

import "fmt"

// Deduplicate suffixes every name that occurs more than once in the set
// with "-{n}", where n is the 1-based occurrence counter in encounter
// order. Unique names pass through untouched, which makes the operation
// idempotent on already-unique sets.
//
// Two passes: count first, then assign, so a name's ordinal never depends
// on where in the slice it is examined.
func Deduplicate(names []string) []string {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}

	out := make([]string, len(names))
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if counts[name] <= 1 {
			out[i] = name
			continue
		}
		seen[name]++
		out[i] = fmt.Sprintf("%s-%d", name, seen[name])
	}
	return out
}
