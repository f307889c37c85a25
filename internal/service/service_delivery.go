package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/internal/store"
	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/internal/validators"
	"github.com/MKhiriev/go-delivery-tracker/models"
)

// deliveryService is the concrete implementation of DeliveryService. It
// enforces the delivery lifecycle rules on top of the repository:
//
//   - new deliveries always start in the processing state;
//   - status moves only along the configured transition table;
//   - log entries may be appended only after the delivery left processing;
//   - a customer may inspect only their own delivery.
type deliveryService struct {
	deliveryRepository store.DeliveryRepository
	validator          validators.Validator
	uuidGen            *utils.UUIDGenerator

	// transitions governs which status changes UpdateStatus accepts.
	transitions models.StatusTransitions

	logger *logger.Logger
}

// NewDeliveryService constructs a DeliveryService wired to the given
// repository. The transition table is supplied by the caller so the delivery
// lifecycle stays configuration, not code.
func NewDeliveryService(deliveryRepository store.DeliveryRepository, validator validators.Validator, uuidGen *utils.UUIDGenerator, transitions models.StatusTransitions, logger *logger.Logger) DeliveryService {
	return &deliveryService{
		deliveryRepository: deliveryRepository,
		validator:          validator,
		uuidGen:            uuidGen,
		transitions:        transitions,
		logger:             logger,
	}
}

// CreateDelivery persists a new delivery in the processing state on behalf of
// the user named in the request. Any authenticated actor may create a
// delivery for any user id; no ownership check is applied here.
//
// Returns ErrInvalidDataProvided if the user id is not UUID-shaped or the
// description is empty, or a wrapped storage error otherwise.
func (d *deliveryService) CreateDelivery(ctx context.Context, req models.CreateDeliveryRequest) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("invalid delivery data provided")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	delivery := models.Delivery{
		DeliveryID:  d.uuidGen.Generate(),
		UserID:      req.UserID,
		Description: req.Description,
		Status:      models.StatusProcessing,
	}

	createdDelivery, err := d.deliveryRepository.CreateDelivery(ctx, delivery)
	if err != nil {
		log.Err(err).Str("user_id", req.UserID).Msg("delivery creation ended with error")
		return models.Delivery{}, fmt.Errorf("delivery creation ended with error: %w", err)
	}

	return createdDelivery, nil
}

// ListDeliveries returns all deliveries ordered by creation time. The listing
// is not scoped to the caller and is not paginated.
func (d *deliveryService) ListDeliveries(ctx context.Context) ([]models.Delivery, error) {
	log := logger.FromContext(ctx)

	deliveries, err := d.deliveryRepository.ListDeliveries(ctx)
	if err != nil {
		log.Err(err).Msg("delivery listing ended with error")
		return nil, fmt.Errorf("delivery listing ended with error: %w", err)
	}

	return deliveries, nil
}

// UpdateStatus moves an existing delivery to a new status.
//
// The delivery must exist and the move must be permitted by the transition
// table; the current status is read first so a vanished delivery surfaces as
// store.ErrDeliveryNotFound rather than a silent no-op.
//
// Returns:
//   - ErrInvalidDataProvided if deliveryID is not UUID-shaped or the status
//     is outside the enum.
//   - store.ErrDeliveryNotFound if the delivery does not exist.
//   - ErrStatusTransitionNotAllowed if the table forbids the move.
func (d *deliveryService) UpdateStatus(ctx context.Context, deliveryID string, req models.UpdateDeliveryStatusRequest) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(deliveryID) {
		log.Error().Str("delivery_id", deliveryID).Msg("invalid delivery id provided")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDelivery)
	}
	if err := d.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("delivery_id", deliveryID).Msg("invalid status data provided")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	delivery, err := d.deliveryRepository.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		log.Err(err).Str("delivery_id", deliveryID).Msg("delivery lookup failed")
		return models.Delivery{}, fmt.Errorf("delivery lookup failed: %w", err)
	}

	if !d.transitions.Allowed(delivery.Status, req.Status) {
		log.Error().
			Str("delivery_id", deliveryID).
			Str("from", delivery.Status.String()).
			Str("to", req.Status.String()).
			Msg("status transition is not allowed")
		return models.Delivery{}, ErrStatusTransitionNotAllowed
	}

	updatedDelivery, err := d.deliveryRepository.UpdateDeliveryStatus(ctx, deliveryID, req.Status)
	if err != nil {
		log.Err(err).Str("delivery_id", deliveryID).Msg("status update ended with error")
		return models.Delivery{}, fmt.Errorf("status update ended with error: %w", err)
	}

	return updatedDelivery, nil
}

// AddLog appends an audit entry to an existing delivery.
//
// The delivery must exist and must have left the initial processing state:
// a log records post-dispatch movement, so nothing may be logged while the
// delivery is still processing.
//
// Returns:
//   - ErrInvalidDataProvided if the request fails validation.
//   - store.ErrDeliveryNotFound if the delivery does not exist.
//   - ErrDeliveryStillProcessing if the delivery status is processing.
func (d *deliveryService) AddLog(ctx context.Context, req models.CreateDeliveryLogRequest) (models.DeliveryLog, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("delivery_id", req.DeliveryID).Msg("invalid delivery log data provided")
		return models.DeliveryLog{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	delivery, err := d.deliveryRepository.GetDeliveryByID(ctx, req.DeliveryID)
	if err != nil {
		log.Err(err).Str("delivery_id", req.DeliveryID).Msg("delivery lookup failed")
		return models.DeliveryLog{}, fmt.Errorf("delivery lookup failed: %w", err)
	}

	if delivery.Status == models.StatusProcessing {
		log.Error().Str("delivery_id", req.DeliveryID).Msg("delivery is still processing")
		return models.DeliveryLog{}, ErrDeliveryStillProcessing
	}

	deliveryLog := models.DeliveryLog{
		LogID:       d.uuidGen.Generate(),
		DeliveryID:  req.DeliveryID,
		Description: req.Description,
	}

	createdLog, err := d.deliveryRepository.CreateDeliveryLog(ctx, deliveryLog)
	if err != nil {
		log.Err(err).Str("delivery_id", req.DeliveryID).Msg("delivery log creation ended with error")
		return models.DeliveryLog{}, fmt.Errorf("delivery log creation ended with error: %w", err)
	}

	return createdLog, nil
}

// GetDelivery fetches a delivery on behalf of caller.
//
// Customers may only inspect deliveries they own; every other role may
// inspect any delivery.
//
// Returns:
//   - ErrInvalidDataProvided if deliveryID is not UUID-shaped.
//   - store.ErrDeliveryNotFound if the delivery does not exist.
//   - ErrAccessDenied if caller is a customer and does not own the delivery.
func (d *deliveryService) GetDelivery(ctx context.Context, deliveryID string, caller models.AuthenticatedUser) (models.Delivery, error) {
	log := logger.FromContext(ctx)

	if !utils.IsUUID(deliveryID) {
		log.Error().Str("delivery_id", deliveryID).Msg("invalid delivery id provided")
		return models.Delivery{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDelivery)
	}

	delivery, err := d.deliveryRepository.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		log.Err(err).Str("delivery_id", deliveryID).Msg("delivery lookup failed")
		return models.Delivery{}, fmt.Errorf("delivery lookup failed: %w", err)
	}

	if caller.Role == models.RoleCustomer && caller.ID != delivery.UserID {
		log.Error().
			Str("delivery_id", deliveryID).
			Str("caller_id", caller.ID).
			Str("owner_id", delivery.UserID).
			Msg("customer tried to access a delivery they do not own")
		return models.Delivery{}, ErrAccessDenied
	}

	return delivery, nil
}
