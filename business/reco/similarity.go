package reco

import (
	"math"
)

// Acceptance thresholds are business rules, not tunables.
const (
	// jaccardThreshold: minimum behavior-set overlap for two users to
	// count as similar in the collaborative strategy.
	jaccardThreshold = 0.3

	// cosineThreshold: minimum feature-vector similarity for two
	// products to count as related in the content-based strategy.
	cosineThreshold = 0.5
)

// Jaccard returns |A ∩ B| / |A ∪ B| over two behavior sets, 0 when
// both are empty. Symmetric and bounded to [0,1].
func Jaccard(a, b map[uint64]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	intersection := 0
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// Cosine returns (A·B)/(‖A‖‖B‖) over two feature vectors, 0 when
// either has zero magnitude or the dimensions disagree. Symmetric and
// bounded to [0,1] for non-negative features.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
