package dto

type PredictionResult struct {
	RequestID string
	Label     string
	Score     float64
}
