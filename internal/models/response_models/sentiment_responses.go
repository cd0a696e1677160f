package response_models

// SentimentStats aggregates a user's non-deleted sentiment ratings.
type SentimentStats struct {
	TotalCount    int64   `json:"total_count"`
	AverageRating float64 `json:"average_rating"`
	MinRating     float64 `json:"min_rating"`
	MaxRating     float64 `json:"max_rating"`
}

// BatchItemResult reports the outcome of one item in a batch run; Error is
// empty on success.
type BatchItemResult struct {
	UserID uint        `json:"user_id"`
	Rating interface{} `json:"rating,omitempty"`
	Error  string      `json:"error,omitempty"`
}
