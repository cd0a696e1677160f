package request_models

type CreateVibeLogRequest struct {
	Summary      string  `json:"summary"`
	Mood         string  `json:"mood"`
	EnergyLevel  int     `json:"energy_level"`
	Complexity   string  `json:"complexity"`
	Satisfaction float64 `json:"satisfaction"`
}

// UpdateVibeLogRequest carries optional fields; nil means leave unchanged.
type UpdateVibeLogRequest struct {
	Summary      *string  `json:"summary,omitempty"`
	Mood         *string  `json:"mood,omitempty"`
	EnergyLevel  *int     `json:"energy_level,omitempty"`
	Complexity   *string  `json:"complexity,omitempty"`
	Satisfaction *float64 `json:"satisfaction,omitempty"`
}
