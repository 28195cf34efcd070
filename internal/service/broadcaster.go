package service

import "storepulse/internal/model"

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastDatasetUpdated(ds *model.SurveyDataset)
}
