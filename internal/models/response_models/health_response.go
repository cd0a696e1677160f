package response_models

type HealthResponse struct {
	Database  string `json:"database"`
	AIService bool   `json:"ai_service_available"`
}
