package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"crowdfund/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a CampaignUseCase to execute business logic and a logger for
// structured logging. Routes are registered on a chi.Router for convenient
// method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1/campaigns", func(r chi.Router) {
		r.Post("/", h.handleCreateCampaign)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Get("/status", h.handleStatus)
			r.Get("/deposits/{donor}", h.handleDeposit)
			r.Get("/transfers", h.handleTransfers)
			r.Put("/limit", h.handleSetting(h.svc.SetLimit))
			r.Put("/limit-per-donor", h.handleSetting(h.svc.SetLimitPerDonor))
			r.Put("/minimum-per-donation", h.handleSetting(h.svc.SetMinimumPerDonation))
			r.Post("/fund", h.handleFund)
			r.Post("/claim", h.handleClaim)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
