package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all offer feed routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/offers", func(r chi.Router) {
		r.Get("/recent", h.HandleGetRecent)
	})
}
