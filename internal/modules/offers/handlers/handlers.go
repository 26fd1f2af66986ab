// Package handlers provides HTTP handlers for the evaluated-offer feed.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/aristath/copilot/internal/modules/offers"
)

// Handler handles offer feed HTTP requests
type Handler struct {
	repo *offers.Repository
	log  zerolog.Logger
}

// NewHandler creates a new offers handler
func NewHandler(repo *offers.Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "offers").Logger(),
	}
}

// HandleGetRecent handles GET /api/offers/recent
func (h *Handler) HandleGetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.repo.Recent(limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to load recent offers")
		http.Error(w, "failed to load recent offers", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []offers.Record{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(records)
}
