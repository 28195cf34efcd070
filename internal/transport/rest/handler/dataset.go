package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"storepulse/internal/model"
	"storepulse/internal/repository"
	"storepulse/internal/service"
)

// DatasetHandler handles dataset and preference endpoints
type DatasetHandler struct {
	datasetSvc *service.DatasetService
	prefRepo   repository.PrefRepo
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(datasetSvc *service.DatasetService, prefRepo repository.PrefRepo) *DatasetHandler {
	return &DatasetHandler{
		datasetSvc: datasetSvc,
		prefRepo:   prefRepo,
	}
}

// Get handles GET /v1/dataset
func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.datasetSvc.Current())
}

// Replace handles PUT /v1/dataset. The editor submits a full replacement
// dataset; there is no partial-patch protocol.
func (h *DatasetHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var ds model.SurveyDataset
	if err := json.NewDecoder(r.Body).Decode(&ds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.datasetSvc.Publish(r.Context(), &ds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, &ds)
}

// Reset handles POST /v1/dataset/reset
func (h *DatasetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ds, err := h.datasetSvc.Reset(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

// ThemeRequest is the request body for saving a theme preference
type ThemeRequest struct {
	Theme model.Theme `json:"theme"`
}

// GetPreference handles GET /v1/preferences/{owner}
func (h *DatasetHandler) GetPreference(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	pref, err := h.prefRepo.Get(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pref == nil {
		pref = &model.Preference{OwnerID: owner, Theme: model.ThemeLight}
	}
	writeJSON(w, http.StatusOK, pref)
}

// SetPreference handles PUT /v1/preferences/{owner}
func (h *DatasetHandler) SetPreference(w http.ResponseWriter, r *http.Request) {
	owner := mux.Vars(r)["owner"]

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Theme != model.ThemeLight && req.Theme != model.ThemeDark {
		writeError(w, http.StatusBadRequest, "theme must be \"light\" or \"dark\"")
		return
	}

	if err := h.prefRepo.SetTheme(r.Context(), owner, req.Theme); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(req.Theme)})
}
