package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"storepulse/internal/chart"
	"storepulse/internal/service"
)

// ChartHandler handles chart payload endpoints
type ChartHandler struct {
	datasetSvc *service.DatasetService
}

// NewChartHandler creates a new chart handler
func NewChartHandler(datasetSvc *service.DatasetService) *ChartHandler {
	return &ChartHandler{datasetSvc: datasetSvc}
}

// Get handles GET /v1/charts/{key}
func (h *ChartHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := chart.ParseKey(mux.Vars(r)["key"])
	payload := chart.Build(h.datasetSvc.Current(), key)
	if payload == nil {
		writeError(w, http.StatusNotFound, "unknown chart")
		return
	}
	writeJSON(w, http.StatusOK, payload)
}
