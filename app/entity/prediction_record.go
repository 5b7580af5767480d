package entity

import "time"

// PredictionRecord is the append-only log document written for every
// authenticated request that produced a prediction.
type PredictionRecord struct {
	RequestID      string    `bson:"request_id"`
	InputText      string    `bson:"input_text"`
	PredictedLabel string    `bson:"predicted_label"`
	Confidence     float64   `bson:"confidence"`
	TokenOwner     string    `bson:"token_owner"`
	Timestamp      time.Time `bson:"timestamp"`
}
