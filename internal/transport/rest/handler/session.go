package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ailiteracy/internal/model"
	"ailiteracy/internal/service"
	"ailiteracy/internal/store"
)

const maxUserTextLen = 4000

// Wire format is snake_case to match the avatar frontend contract.

// StartSessionRequest is the body for POST /v1/sessions
type StartSessionRequest struct {
	UserDisplayName string `json:"user_display_name,omitempty"`
}

// StartSessionResponse returns the new session and the opening prompt
type StartSessionResponse struct {
	SessionID         string          `json:"session_id"`
	AssistantText     string          `json:"assistant_text"`
	SuggestedPersonas []model.Persona `json:"suggested_personas"`
}

// SetPersonaRequest is the body for POST /v1/sessions/{sessionId}/persona
type SetPersonaRequest struct {
	Persona model.Persona `json:"persona"`
}

// SetPersonaResponse acknowledges the persona declaration
type SetPersonaResponse struct {
	SessionID     string `json:"session_id"`
	AssistantText string `json:"assistant_text"`
}

// ChatRequest is the body for POST /v1/sessions/{sessionId}/chat
type ChatRequest struct {
	UserText string `json:"user_text"`
}

// ChatResponse is the outcome of one interview turn
type ChatResponse struct {
	SessionID      string         `json:"session_id"`
	AssistantText  string         `json:"assistant_text"`
	NextQuestionID string         `json:"next_question_id,omitempty"`
	Done           bool           `json:"done"`
	Scores         map[string]int `json:"scores"`
	Evidence       []string       `json:"evidence"`
	Report         *model.Report  `json:"report,omitempty"`
}

// SessionHandler handles the interview session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	sess, greeting := h.sessionSvc.Start()
	writeJSON(w, http.StatusOK, &StartSessionResponse{
		SessionID:         sess.ID,
		AssistantText:     greeting,
		SuggestedPersonas: model.AllPersonas,
	})
}

// SetPersona handles POST /v1/sessions/{sessionId}/persona
func (h *SessionHandler) SetPersona(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SetPersonaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text, err := h.sessionSvc.SetPersona(sessionID, req.Persona)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session_not_found")
		case errors.Is(err, service.ErrInvalidPersona):
			writeError(w, http.StatusBadRequest, "invalid persona")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, &SetPersonaResponse{
		SessionID:     sessionID,
		AssistantText: text,
	})
}

// Chat handles POST /v1/sessions/{sessionId}/chat
func (h *SessionHandler) Chat(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserText == "" || len(req.UserText) > maxUserTextLen {
		writeError(w, http.StatusBadRequest, "user_text must be 1-4000 characters")
		return
	}

	outcome, err := h.sessionSvc.Chat(r.Context(), sessionID, req.UserText)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, "session_not_found")
		case errors.Is(err, service.ErrMalformedOutput):
			writeError(w, http.StatusBadGateway, "assessor model returned an unusable reply, please retry")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, &ChatResponse{
		SessionID:      outcome.SessionID,
		AssistantText:  outcome.AssistantText,
		NextQuestionID: outcome.NextQuestionID,
		Done:           outcome.Done,
		Scores:         outcome.Scores,
		Evidence:       outcome.Evidence,
		Report:         outcome.Report,
	})
}
