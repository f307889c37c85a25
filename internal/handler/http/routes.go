package http

import (
	"github.com/MKhiriev/go-delivery-tracker/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/sessions", h.login)

		r.Post("/deliveries", h.createDelivery)
		r.Get("/deliveries", h.listDeliveries)
		r.Patch("/deliveries/{id}/status", h.updateDeliveryStatus)
	})

	// delivery log routes: authentication required, creation gated to sale
	router.Group(func(r chi.Router) {
		r.Use(h.authenticate)

		r.With(h.authorize(models.RoleSale)).Post("/delivery-logs", h.createDeliveryLog)
		r.Get("/delivery-logs/{delivery_id}/show", h.showDelivery)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
