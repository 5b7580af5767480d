package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vibast-solutions/ms-go-intent/app/dto"
	"github.com/vibast-solutions/ms-go-intent/app/entity"
)

var ErrInferenceFailed = errors.New("inference failed")

// PredictionRecorder is the write-only boundary to the prediction log store.
type PredictionRecorder interface {
	Append(ctx context.Context, record *entity.PredictionRecord) error
}

type PredictionService interface {
	Predict(ctx context.Context, owner, text string) (*dto.PredictionResult, error)
}

type predictionService struct {
	classifier         Classifier
	recorder           PredictionRecorder
	inferenceTimeout   time.Duration
	persistenceTimeout time.Duration
}

func NewPredictionService(classifier Classifier, recorder PredictionRecorder, inferenceTimeout, persistenceTimeout time.Duration) PredictionService {
	return &predictionService{
		classifier:         classifier,
		recorder:           recorder,
		inferenceTimeout:   inferenceTimeout,
		persistenceTimeout: persistenceTimeout,
	}
}

// Predict runs the classify-then-log pipeline for an authenticated request.
// Logging the record is best-effort: a store failure or timeout is logged and
// the computed prediction is still returned.
func (s *predictionService) Predict(ctx context.Context, owner, text string) (*dto.PredictionResult, error) {
	requestID := uuid.NewString()

	inferCtx, cancel := context.WithTimeout(ctx, s.inferenceTimeout)
	defer cancel()

	classification, err := s.classifier.Classify(inferCtx, text, requestID)
	if err != nil {
		logrus.WithError(err).WithField("request_id", requestID).Error("Classification failed")
		return nil, fmt.Errorf("%w: %v", ErrInferenceFailed, err)
	}

	record := &entity.PredictionRecord{
		RequestID:      requestID,
		InputText:      text,
		PredictedLabel: classification.Label,
		Confidence:     classification.Score,
		TokenOwner:     owner,
		Timestamp:      time.Now().UTC(),
	}
	s.appendRecord(ctx, record)

	return &dto.PredictionResult{
		RequestID: requestID,
		Label:     classification.Label,
		Score:     classification.Score,
	}, nil
}

func (s *predictionService) appendRecord(ctx context.Context, record *entity.PredictionRecord) {
	// The response is already committed once inference succeeded, so the
	// append must not inherit the request's cancellation, only its values.
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.persistenceTimeout)
	defer cancel()

	if err := s.recorder.Append(appendCtx, record); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id":  record.RequestID,
			"token_owner": record.TokenOwner,
		}).Warn("Failed to log prediction record")
	}
}
