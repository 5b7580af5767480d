package client

import (
	"context"
	"fmt"

	"github.com/vibast-solutions/ms-go-intent/app/service"
)

// ModelClassifier adapts ModelClient to the service.Classifier interface.
type ModelClassifier struct {
	client *ModelClient
}

func NewModelClassifier(client *ModelClient) service.Classifier {
	return &ModelClassifier{client: client}
}

func (c *ModelClassifier) Classify(ctx context.Context, text, requestID string) (*service.Classification, error) {
	resp, err := c.client.Classify(ctx, text, requestID)
	if err != nil {
		return nil, err
	}

	if resp.Label == "" {
		return nil, fmt.Errorf("model server returned an empty label")
	}
	if resp.Score < 0 || resp.Score > 1 {
		return nil, fmt.Errorf("model server returned score %v outside [0,1]", resp.Score)
	}

	return &service.Classification{
		Label: resp.Label,
		Score: resp.Score,
	}, nil
}
