// Package handlers provides HTTP handlers for ledger operations.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/modules/ledger"
	"github.com/aristath/copilot/internal/modules/settings"
)

// Handler handles ledger HTTP requests
type Handler struct {
	ledgerRepo   *ledger.Repository
	settingsRepo *settings.Repository
	log          zerolog.Logger
}

// NewHandler creates a new ledger handler
func NewHandler(ledgerRepo *ledger.Repository, settingsRepo *settings.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		ledgerRepo:   ledgerRepo,
		settingsRepo: settingsRepo,
		log:          log.With().Str("handler", "ledger").Logger(),
	}
}

// HandleGetToday handles GET /api/ledger/today
func (h *Handler) HandleGetToday(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledgerRepo.LoadToday()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load today's ledger")
		http.Error(w, "failed to load ledger", http.StatusInternalServerError)
		return
	}
	writeJSON(w, stats)
}

// HandleGetProgress handles GET /api/ledger/progress
func (h *Handler) HandleGetProgress(w http.ResponseWriter, r *http.Request) {
	goal := h.settingsRepo.DailyGoal()
	progress, err := h.ledgerRepo.ProgressSummary(goal)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build progress summary")
		http.Error(w, "failed to build progress summary", http.StatusInternalServerError)
		return
	}
	writeJSON(w, progress)
}

// HandleGetHistory handles GET /api/ledger/history
func (h *Handler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	limit := 30
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	history, err := h.ledgerRepo.History(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load ledger history")
		http.Error(w, "failed to load ledger history", http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []ledger.DailyStats{}
	}
	writeJSON(w, history)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
