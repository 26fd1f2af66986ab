// Package handlers provides HTTP handlers for settings operations.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/modules/settings"
)

// Handler handles settings HTTP requests
type Handler struct {
	repo *settings.Repository
	log  zerolog.Logger
}

// NewHandler creates a new settings handler
func NewHandler(repo *settings.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "settings").Logger(),
	}
}

// settingsResponse pairs current values with their documentation.
type settingsResponse struct {
	Values       map[string]string `json:"values"`
	Descriptions map[string]string `json:"descriptions"`
}

// HandleGetSettings handles GET /api/settings
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	values, err := h.repo.GetAll()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load settings")
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(settingsResponse{
		Values:       values,
		Descriptions: settings.SettingDescriptions,
	})
}

// HandleUpdateSettings handles PUT /api/settings.
// Body: a flat map of setting key -> value. Unknown keys are rejected so a
// typo cannot silently create a dead setting.
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	for key := range updates {
		if _, ok := settings.SettingDefaults[key]; !ok {
			http.Error(w, "unknown setting: "+key, http.StatusBadRequest)
			return
		}
	}

	for key, value := range updates {
		if err := h.repo.Set(key, value); err != nil {
			h.log.Error().Err(err).Str("key", key).Msg("Failed to update setting")
			http.Error(w, "failed to update settings", http.StatusInternalServerError)
			return
		}
	}

	h.log.Info().Int("updated", len(updates)).Msg("Settings updated")
	h.HandleGetSettings(w, r)
}

// HandleGetAlertPrefs handles GET /api/settings/alerts
func (h *Handler) HandleGetAlertPrefs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.repo.AlertPrefs())
}
