package domain

// SearchResult is one page of ranked catalog matches.
type SearchResult struct {
	Items       []Product `json:"items"`
	TotalCount  int       `json:"total_count"`
	CurrentPage int       `json:"current_page"`
	TotalPages  int       `json:"total_pages"`
}

// Suggestion is a single autocomplete entry.
type Suggestion struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}
