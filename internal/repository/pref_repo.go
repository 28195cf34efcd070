package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storepulse/internal/model"
)

// PrefRepo handles MongoDB operations for dashboard preferences.
type PrefRepo interface {
	SetTheme(ctx context.Context, ownerID string, theme model.Theme) error
	Get(ctx context.Context, ownerID string) (*model.Preference, error)
}

type prefRepo struct {
	collection *mongo.Collection
}

// NewPrefRepo creates a new preference repository
func NewPrefRepo(db *mongo.Database) PrefRepo {
	return &prefRepo{
		collection: db.Collection("preferences"),
	}
}

func (r *prefRepo) SetTheme(ctx context.Context, ownerID string, theme model.Theme) error {
	pref := model.Preference{
		OwnerID:   ownerID,
		Theme:     theme,
		UpdatedAt: time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"ownerId": ownerID}, pref, opts)
	return err
}

func (r *prefRepo) Get(ctx context.Context, ownerID string) (*model.Preference, error) {
	var pref model.Preference
	err := r.collection.FindOne(ctx, bson.M{"ownerId": ownerID}).Decode(&pref)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
