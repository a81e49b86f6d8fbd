package domain

// RecommendedProduct pairs a catalog item with the score the
// recommender ranked it by. Ephemeral, never persisted.
type RecommendedProduct struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}
