package http

type PredictRequest struct {
	Text string `json:"text"`
}
