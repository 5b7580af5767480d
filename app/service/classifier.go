package service

import "context"

// Classification is the model output for a single input text.
type Classification struct {
	Label string
	Score float64
}

// Classifier is the narrow boundary to the trained model. Implementations
// must be safe for concurrent use; the service treats the model as a shared
// read-only resource built once at startup.
type Classifier interface {
	Classify(ctx context.Context, text, requestID string) (*Classification, error)
}
