package common

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string            `json:"status"`
	Environment string            `json:"environment"`
	Summarizer  string            `json:"summarizer"`
	Transcriber string            `json:"transcriber"`
	Checks      map[string]string `json:"checks,omitempty"`
}
