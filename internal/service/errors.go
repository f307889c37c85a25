package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email/password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrDeliveryStillProcessing rejects log creation while a delivery has not
	// left the initial processing state: a log is evidence of post-dispatch
	// movement, and nothing has moved yet.
	ErrDeliveryStillProcessing = errors.New("delivery is still processing")

	// ErrStatusTransitionNotAllowed rejects a status update not permitted by
	// the configured transition table.
	ErrStatusTransitionNotAllowed = errors.New("status transition is not allowed")

	// ErrAccessDenied rejects a delivery fetch by a customer who does not own
	// the delivery.
	ErrAccessDenied = errors.New("access to delivery denied")
)
