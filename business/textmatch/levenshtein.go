package textmatch

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, and substitutions to turn a into b. Symmetric and
// deterministic; Levenshtein("", s) equals the rune length of s.
func Levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	// Two rolling rows keep memory at O(len(b)).
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// FuzzyMatch reports whether a and b are within threshold edits of
// each other. A cheap length check skips the DP when the strings
// cannot possibly be close enough.
func FuzzyMatch(a, b string, threshold int) bool {
	if threshold < 0 {
		return false
	}

	la := len([]rune(a))
	lb := len([]rune(b))
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > threshold {
		return false
	}

	return Levenshtein(a, b) <= threshold
}
