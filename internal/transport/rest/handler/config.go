package handler

import (
	"net/http"

	"ailiteracy/internal/config"
)

// ConfigHandler exposes the settings the avatar frontend needs at runtime
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// Get handles GET /v1/config
func (h *ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"speech_key":    h.cfg.SpeechKey,
		"speech_region": h.cfg.SpeechRegion,
		"backend_url":   h.cfg.BackendURL,
	})
}
