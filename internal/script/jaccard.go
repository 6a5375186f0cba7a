package script

import "strings"

// Similarity computes the Jaccard ratio of lower-cased token sets of two
// lines. Values above the dedup threshold mark the lines as duplicates; an
// empty line on either side is never similar to anything.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	setA := tokenSet(a)
	setB := tokenSet(b)

	intersection := 0
	union := len(setB)
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(s)) {
		set[tok] = struct{}{}
	}
	return set
}
