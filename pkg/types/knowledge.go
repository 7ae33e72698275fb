package types

// KnowledgeDocument is one entry of the static expertise catalog.
// Immutable after process start.
type KnowledgeDocument struct {
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Content         string   `json:"content"`
	Keywords        []string `json:"keywords"`
	CoachingContext string   `json:"coaching_context"`
}

// RetrievedContext is a scored catalog hit. Derived per query, never stored.
type RetrievedContext struct {
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Content         string  `json:"content"`
	RelevanceScore  float64 `json:"relevance_score"`
	CoachingContext string  `json:"coaching_context"`
}
