package http

type PredictResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type StatusResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	ModelVersion string `json:"model_version,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
