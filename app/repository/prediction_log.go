package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vibast-solutions/ms-go-intent/app/entity"
)

// PredictionLogRepository appends accepted prediction records to the external
// document store. It exposes no read, update, or delete surface; querying the
// log is an administrative concern outside the serving path.
type PredictionLogRepository struct {
	collection *mongo.Collection
}

func NewPredictionLogRepository(collection *mongo.Collection) *PredictionLogRepository {
	return &PredictionLogRepository{collection: collection}
}

func (r *PredictionLogRepository) Append(ctx context.Context, record *entity.PredictionRecord) error {
	_, err := r.collection.InsertOne(ctx, record)
	return err
}
