package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all ledger routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/ledger", func(r chi.Router) {
		r.Get("/today", h.HandleGetToday)
		r.Get("/progress", h.HandleGetProgress)
		r.Get("/history", h.HandleGetHistory)
	})
}
