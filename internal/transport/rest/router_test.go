package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ailiteracy/internal/config"
	"ailiteracy/internal/model"
	"ailiteracy/internal/service"
	"ailiteracy/internal/store"
)

func newTestRouter(t *testing.T, accessPassword string) http.Handler {
	t.Helper()

	cfg := &config.Config{
		CORSOrigins:    []string{"http://localhost:5173"},
		AccessPassword: accessPassword,
		JWTSecret:      "test-secret",
		SpeechRegion:   "westeurope",
	}

	logger := zap.NewNop()
	authSvc := service.NewAuthService(cfg)
	persistSvc := service.NewPersistService(nil, nil, nil, logger)
	assessor := service.NewAssessorService(service.NewMockLLMClient(), logger)
	sessionSvc := service.NewSessionService(store.NewSessionStore(), assessor, persistSvc, logger)

	return NewRouter(&Container{
		Config:         cfg,
		AuthService:    authSvc,
		SessionService: sessionSvc,
		PersistService: persistSvc,
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStartSession(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions", "", map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID         string   `json:"session_id"`
		AssistantText     string   `json:"assistant_text"`
		SuggestedPersonas []string `json:"suggested_personas"`
	}
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.SessionID)
	assert.NotEmpty(t, resp.AssistantText)
	assert.Len(t, resp.SuggestedPersonas, len(model.AllPersonas))
}

func TestSetPersonaValidation(t *testing.T) {
	router := newTestRouter(t, "")

	start := doJSON(t, router, http.MethodPost, "/v1/sessions", "", nil)
	require.Equal(t, http.StatusOK, start.Code)
	var started struct {
		SessionID string `json:"session_id"`
	}
	decodeBody(t, start, &started)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/"+started.SessionID+"/persona", "",
		map[string]string{"persona": "WIZARD"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/sessions/nope/persona", "",
		map[string]string{"persona": "EXECUTIVE"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/sessions/"+started.SessionID+"/persona", "",
		map[string]string{"persona": "EXECUTIVE"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChatFlowWithMockModel(t *testing.T) {
	router := newTestRouter(t, "")

	start := doJSON(t, router, http.MethodPost, "/v1/sessions", "", nil)
	require.Equal(t, http.StatusOK, start.Code)
	var started struct {
		SessionID string `json:"session_id"`
	}
	decodeBody(t, start, &started)

	persona := doJSON(t, router, http.MethodPost, "/v1/sessions/"+started.SessionID+"/persona", "",
		map[string]string{"persona": "EXECUTIVE"})
	require.Equal(t, http.StatusOK, persona.Code)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/"+started.SessionID+"/chat", "",
		map[string]string{"user_text": "We use AI mostly for drafting board updates."})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		SessionID      string         `json:"session_id"`
		AssistantText  string         `json:"assistant_text"`
		NextQuestionID string         `json:"next_question_id"`
		Done           bool           `json:"done"`
		Scores         map[string]int `json:"scores"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, started.SessionID, resp.SessionID)
	assert.False(t, resp.Done)
	// The mock suggests an unknown id; the assessor substitutes the first
	// remaining candidate in bank order.
	assert.Equal(t, "CORE_A1", resp.NextQuestionID)
	assert.Equal(t, 1, resp.Scores["A"])
	assert.NotEmpty(t, resp.AssistantText)
}

func TestChatValidation(t *testing.T) {
	router := newTestRouter(t, "")

	start := doJSON(t, router, http.MethodPost, "/v1/sessions", "", nil)
	var started struct {
		SessionID string `json:"session_id"`
	}
	decodeBody(t, start, &started)

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions/"+started.SessionID+"/chat", "",
		map[string]string{"user_text": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/sessions/missing/chat", "",
		map[string]string{"user_text": "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportNotFound(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodGet, "/v1/reports/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfigEndpoint(t *testing.T) {
	router := newTestRouter(t, "")

	rec := doJSON(t, router, http.MethodGet, "/v1/config", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "westeurope", resp["speech_region"])
}

func TestAuthVerify(t *testing.T) {
	router := newTestRouter(t, "hunter2")

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/verify", "",
		map[string]string{"password": "wrong"})
	require.Equal(t, http.StatusOK, rec.Code)
	var denied model.AuthResponse
	decodeBody(t, rec, &denied)
	assert.False(t, denied.OK)
	assert.Empty(t, denied.Token)

	rec = doJSON(t, router, http.MethodPost, "/v1/auth/verify", "",
		map[string]string{"password": "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var granted model.AuthResponse
	decodeBody(t, rec, &granted)
	assert.True(t, granted.OK)
	assert.NotEmpty(t, granted.Token)
}

func TestSessionRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t, "hunter2")

	rec := doJSON(t, router, http.MethodPost, "/v1/sessions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/v1/sessions", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	verify := doJSON(t, router, http.MethodPost, "/v1/auth/verify", "",
		map[string]string{"password": "hunter2"})
	var granted model.AuthResponse
	decodeBody(t, verify, &granted)
	require.NotEmpty(t, granted.Token)

	rec = doJSON(t, router, http.MethodPost, "/v1/sessions", granted.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodOptions, "/v1/sessions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSUnknownOrigin(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
