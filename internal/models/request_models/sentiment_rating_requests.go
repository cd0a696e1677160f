package request_models

// AnalyzeSentimentRequest is the inbound payload for the analysis endpoints.
// Model optionally selects one of the gateway's two variants; empty means
// the gateway default. Domain validation happens in the service, not here,
// so callers get the full field-level violation list.
type AnalyzeSentimentRequest struct {
	UserID       uint    `json:"user_id"`
	Summary      string  `json:"summary"`
	Mood         string  `json:"mood"`
	EnergyLevel  int     `json:"energy_level"`
	Complexity   string  `json:"complexity"`
	Satisfaction float64 `json:"satisfaction"`
	Model        string  `json:"model,omitempty"`
}

type BatchAnalyzeSentimentRequest struct {
	Items []AnalyzeSentimentRequest `json:"items" binding:"required,min=1"`
	Model string                    `json:"model,omitempty"`
}
