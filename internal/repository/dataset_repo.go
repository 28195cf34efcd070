package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/model"
)

// datasetDoc wraps the single published snapshot with bookkeeping fields.
type datasetDoc struct {
	Key       string               `bson:"key"`
	Dataset   *model.SurveyDataset `bson:"dataset"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

// Only one snapshot is live at a time; it is upserted under a fixed key.
const currentDatasetKey = "current"

// DatasetRepo handles MongoDB operations for the published survey dataset.
type DatasetRepo interface {
	Save(ctx context.Context, ds *model.SurveyDataset) error
	Get(ctx context.Context) (*model.SurveyDataset, error)
}

type datasetRepo struct {
	collection *mongo.Collection
}

// NewDatasetRepo creates a new dataset repository
func NewDatasetRepo(db *mongo.Database) DatasetRepo {
	return &datasetRepo{
		collection: db.Collection("datasets"),
	}
}

func (r *datasetRepo) Save(ctx context.Context, ds *model.SurveyDataset) error {
	doc := datasetDoc{
		Key:       currentDatasetKey,
		Dataset:   ds,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"key": currentDatasetKey}, doc, opts)
	return err
}

func (r *datasetRepo) Get(ctx context.Context) (*model.SurveyDataset, error) {
	var doc datasetDoc
	err := r.collection.FindOne(ctx, bson.M{"key": currentDatasetKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if doc.Dataset != nil {
		doc.Dataset.Normalize()
	}
	return doc.Dataset, nil
}
