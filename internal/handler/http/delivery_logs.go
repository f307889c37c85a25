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

func (h *Handler) createDeliveryLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateDeliveryLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdLog, err := h.services.DeliveryService.AddLog(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrDeliveryStillProcessing):
			log.Err(err).Msg("delivery is still processing")
			http.Error(w, service.ErrDeliveryStillProcessing.Error(), http.StatusNotFound)
			return
		case errors.Is(err, store.ErrDeliveryNotFound):
			log.Err(err).Msg("delivery not found")
			http.Error(w, store.ErrDeliveryNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during delivery log creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("id", createdLog.LogID).Msg("delivery log successfully created")

	utils.WriteJSON(w, createdLog, http.StatusCreated)
}

func (h *Handler) showDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	deliveryID := chi.URLParam(r, "delivery_id")

	identity, ok := utils.GetAuthUserFromContext(ctx)
	if !ok {
		log.Err(ErrNoIdentityInContext).Msg("no identity in request context")
		http.Error(w, ErrNoIdentityInContext.Error(), http.StatusUnauthorized)
		return
	}

	foundDelivery, err := h.services.DeliveryService.GetDelivery(ctx, deliveryID, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAccessDenied):
			log.Err(err).Msg("access to delivery denied")
			http.Error(w, service.ErrAccessDenied.Error(), http.StatusUnauthorized)
			return
		case errors.Is(err, store.ErrDeliveryNotFound):
			log.Err(err).Msg("delivery not found")
			http.Error(w, store.ErrDeliveryNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during delivery lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, foundDelivery, http.StatusOK)
}
