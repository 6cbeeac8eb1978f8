package evaluation

// SymptomRecall is the fraction of expected symptoms that were matched.
// Returns 1.0 when nothing was expected.
func SymptomRecall(expected, matched []string) float64 {
	if len(expected) == 0 {
		return 1.0
	}
	return float64(overlap(expected, matched)) / float64(len(expected))
}

// SymptomPrecision is the fraction of matched symptoms that were expected.
// Returns 1.0 when nothing was matched.
func SymptomPrecision(expected, matched []string) float64 {
	if len(matched) == 0 {
		return 1.0
	}
	return float64(overlap(matched, expected)) / float64(len(matched))
}

// overlap counts the distinct items of a that also appear in b.
func overlap(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}

	counted := make(map[string]struct{}, len(a))
	found := 0
	for _, s := range a {
		if _, dup := counted[s]; dup {
			continue
		}
		counted[s] = struct{}{}
		if _, ok := set[s]; ok {
			found++
		}
	}
	return found
}
