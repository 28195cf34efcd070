package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storepulse/internal/service"
)

// ChatHandler handles conversation endpoints
type ChatHandler struct {
	chatSvc *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatSvc *service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// SendMessageRequest is the request body for sending a prompt
type SendMessageRequest struct {
	Content string `json:"content"`
}

// CreateSession handles POST /v1/sessions
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.chatSvc.CreateSession(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"sessionId": session.ID})
}

// SendMessage handles POST /v1/sessions/{id}/messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.chatSvc.Send(r.Context(), sessionID, req.Content)
	switch {
	case errors.Is(err, service.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrRequestPending):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, msg)
	}
}

// GetMessages handles GET /v1/sessions/{id}/messages
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]

	messages, err := h.chatSvc.History(r.Context(), sessionID)
	if errors.Is(err, service.ErrSessionNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": messages})
}

// GetPlainMessage handles GET /v1/sessions/{id}/messages/{index}/plain.
// It returns a message's text with chart markers stripped, ready for the
// clipboard.
func (h *ChatHandler) GetPlainMessage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["id"]
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid message index")
		return
	}

	text, err := h.chatSvc.PlainText(r.Context(), sessionID, index)
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrMessageNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, map[string]string{"text": text})
	}
}
