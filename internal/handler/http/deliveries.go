package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/internal/service"
	"github.com/MKhiriev/go-delivery-tracker/internal/store"
	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/models"
)

func (h *Handler) createDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateDeliveryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdDelivery, err := h.services.DeliveryService.CreateDelivery(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Msg("user not found")
			http.Error(w, store.ErrUserNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during delivery creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", createdDelivery.DeliveryID).Msg("delivery successfully created")

	utils.WriteJSON(w, createdDelivery, http.StatusCreated)
}

func (h *Handler) listDeliveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deliveries, err := h.services.DeliveryService.ListDeliveries(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during deliveries listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, deliveries, http.StatusOK)
}

func (h *Handler) updateDeliveryStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deliveryID := chi.URLParam(r, "id")

	var req models.UpdateDeliveryStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedDelivery, err := h.services.DeliveryService.UpdateStatus(ctx, deliveryID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrStatusTransitionNotAllowed):
			log.Err(err).Msg("status transition not allowed")
			http.Error(w, service.ErrStatusTransitionNotAllowed.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDeliveryNotFound):
			log.Err(err).Msg("delivery not found")
			http.Error(w, store.ErrDeliveryNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during delivery status update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().
		Str("id", updatedDelivery.DeliveryID).
		Str("status", updatedDelivery.Status.String()).
		Msg("delivery status successfully updated")

	utils.WriteJSON(w, updatedDelivery, http.StatusOK)
}
