package service

import (
	"context"
	"log"
	"sync"

	"storepulse/internal/model"
	"storepulse/internal/repository"
)

// DatasetService owns the published survey dataset. Editors work on a
// private copy and submit a full replacement; Publish swaps the snapshot
// atomically so every enrichment call reads one consistent dataset.
type DatasetService struct {
	repo repository.DatasetRepo

	mu      sync.RWMutex
	current *model.SurveyDataset

	broadcaster Broadcaster
}

// NewDatasetService creates a dataset service serving the built-in default
// until a published snapshot is loaded or submitted.
func NewDatasetService(repo repository.DatasetRepo) *DatasetService {
	return &DatasetService{
		repo:    repo,
		current: model.DefaultDataset(),
	}
}

// SetBroadcaster wires the WebSocket hub for dataset_updated events.
func (s *DatasetService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// LoadPublished restores the last published snapshot from the repository,
// if any. Called once at startup.
func (s *DatasetService) LoadPublished(ctx context.Context) error {
	ds, err := s.repo.Get(ctx)
	if err != nil {
		return err
	}
	if ds == nil {
		return nil
	}
	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()
	return nil
}

// Current returns the live snapshot. Callers must treat it as read-only;
// it is never mutated in place, only replaced wholesale by Publish.
func (s *DatasetService) Current() *model.SurveyDataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Publish validates and installs a full replacement dataset, persists it,
// and notifies connected dashboards.
func (s *DatasetService) Publish(ctx context.Context, ds *model.SurveyDataset) error {
	ds.Normalize()
	if err := ds.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, ds); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = ds
	s.mu.Unlock()

	if s.broadcaster != nil {
		s.broadcaster.BroadcastDatasetUpdated(ds)
	}
	log.Println("dataset snapshot published")
	return nil
}

// Reset republishes the built-in default dataset.
func (s *DatasetService) Reset(ctx context.Context) (*model.SurveyDataset, error) {
	ds := model.DefaultDataset()
	if err := s.Publish(ctx, ds); err != nil {
		return nil, err
	}
	return ds, nil
}
