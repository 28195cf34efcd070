package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/model"
)

// memDatasetRepo records saves in memory.
type memDatasetRepo struct {
	saved   *model.SurveyDataset
	saveErr error
	stored  *model.SurveyDataset
}

func (r *memDatasetRepo) Save(_ context.Context, ds *model.SurveyDataset) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = ds
	return nil
}

func (r *memDatasetRepo) Get(_ context.Context) (*model.SurveyDataset, error) {
	return r.stored, nil
}

type recordingBroadcaster struct {
	updates []*model.SurveyDataset
}

func (b *recordingBroadcaster) BroadcastDatasetUpdated(ds *model.SurveyDataset) {
	b.updates = append(b.updates, ds)
}

func TestDatasetService_ServesDefaultUntilPublished(t *testing.T) {
	svc := NewDatasetService(&memDatasetRepo{})
	assert.Equal(t, model.DefaultDataset(), svc.Current())
}

func TestDatasetService_LoadPublished(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the stored snapshot", func(t *testing.T) {
		stored := model.DefaultDataset()
		stored.Zones = []model.SimpleDataPoint{{Name: "Quartier est", Value: 12}}
		svc := NewDatasetService(&memDatasetRepo{stored: stored})

		require.NoError(t, svc.LoadPublished(ctx))
		assert.Equal(t, "Quartier est", svc.Current().Zones[0].Name)
	})

	t.Run("keeps the default when nothing is stored", func(t *testing.T) {
		svc := NewDatasetService(&memDatasetRepo{})
		require.NoError(t, svc.LoadPublished(ctx))
		assert.Equal(t, model.DefaultDataset(), svc.Current())
	})
}

func TestDatasetService_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("persists, swaps and broadcasts", func(t *testing.T) {
		repo := &memDatasetRepo{}
		broadcaster := &recordingBroadcaster{}
		svc := NewDatasetService(repo)
		svc.SetBroadcaster(broadcaster)

		ds := model.DefaultDataset()
		ds.Competitors = []model.SimpleDataPoint{{Name: "Monoprix", Value: 42}}
		require.NoError(t, svc.Publish(ctx, ds))

		assert.Same(t, ds, repo.saved)
		assert.Same(t, ds, svc.Current())
		require.Len(t, broadcaster.updates, 1)
		assert.Same(t, ds, broadcaster.updates[0])
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		repo := &memDatasetRepo{}
		svc := NewDatasetService(repo)

		ds := model.DefaultDataset()
		ds.Satisfaction[0].Value = -1
		err := svc.Publish(ctx, ds)
		require.Error(t, err)
		assert.Nil(t, repo.saved, "invalid datasets are never persisted")
		assert.NotEqual(t, ds, svc.Current())
	})

	t.Run("normalizes nil series", func(t *testing.T) {
		repo := &memDatasetRepo{}
		svc := NewDatasetService(repo)

		ds := &model.SurveyDataset{}
		require.NoError(t, svc.Publish(ctx, ds))
		assert.NotNil(t, repo.saved.Zones)
		assert.NotNil(t, repo.saved.ExperienceChanges)
	})

	t.Run("repository failure leaves the snapshot in place", func(t *testing.T) {
		repo := &memDatasetRepo{saveErr: errors.New("mongo down")}
		broadcaster := &recordingBroadcaster{}
		svc := NewDatasetService(repo)
		svc.SetBroadcaster(broadcaster)

		before := svc.Current()
		err := svc.Publish(ctx, model.DefaultDataset())
		require.Error(t, err)
		assert.Same(t, before, svc.Current())
		assert.Empty(t, broadcaster.updates)
	})
}

func TestDatasetService_Reset(t *testing.T) {
	ctx := context.Background()
	repo := &memDatasetRepo{}
	svc := NewDatasetService(repo)

	custom := model.DefaultDataset()
	custom.Zones = nil
	require.NoError(t, svc.Publish(ctx, custom))

	ds, err := svc.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultDataset(), ds)
	assert.Equal(t, model.DefaultDataset(), svc.Current())
}
