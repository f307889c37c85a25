package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldUserID      = "user_id"
	FieldDeliveryID  = "delivery_id"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	minNameLength     = 3
	minPasswordLength = 6
)

// RequestValidator validates the request bodies accepted by the HTTP surface.
// All checks run before any store access.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterUserRequest:
		return v.validateRegisterUser(value, fields...)
	case *models.RegisterUserRequest:
		return v.validateRegisterUser(*value, fields...)

	case models.CreateSessionRequest:
		return v.validateCreateSession(value, fields...)
	case *models.CreateSessionRequest:
		return v.validateCreateSession(*value, fields...)

	case models.CreateDeliveryRequest:
		return v.validateCreateDelivery(value, fields...)
	case *models.CreateDeliveryRequest:
		return v.validateCreateDelivery(*value, fields...)

	case models.UpdateDeliveryStatusRequest:
		return v.validateUpdateStatus(value, fields...)
	case *models.UpdateDeliveryStatusRequest:
		return v.validateUpdateStatus(*value, fields...)

	case models.CreateDeliveryLogRequest:
		return v.validateCreateDeliveryLog(value, fields...)
	case *models.CreateDeliveryLogRequest:
		return v.validateCreateDeliveryLog(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterUser(req models.RegisterUserRequest, fields ...string) error {
	for _, field := range scope(fields, FieldName, FieldEmail, FieldPassword) {
		switch field {
		case FieldName:
			if len(strings.TrimSpace(req.Name)) < minNameLength {
				return newFieldError(FieldName, ErrNameTooShort)
			}
		case FieldEmail:
			if !isEmail(req.Email) {
				return newFieldError(FieldEmail, ErrInvalidEmail)
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return newFieldError(FieldPassword, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateSession(req models.CreateSessionRequest, fields ...string) error {
	for _, field := range scope(fields, FieldEmail, FieldPassword) {
		switch field {
		case FieldEmail:
			if !isEmail(req.Email) {
				return newFieldError(FieldEmail, ErrInvalidEmail)
			}
		case FieldPassword:
			if len(req.Password) < minPasswordLength {
				return newFieldError(FieldPassword, ErrPasswordTooShort)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateDelivery(req models.CreateDeliveryRequest, fields ...string) error {
	for _, field := range scope(fields, FieldUserID, FieldDescription) {
		switch field {
		case FieldUserID:
			if !utils.IsUUID(req.UserID) {
				return newFieldError(FieldUserID, ErrInvalidUserID)
			}
		case FieldDescription:
			if strings.TrimSpace(req.Description) == "" {
				return newFieldError(FieldDescription, ErrEmptyDescription)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateUpdateStatus(req models.UpdateDeliveryStatusRequest, fields ...string) error {
	for _, field := range scope(fields, FieldStatus) {
		switch field {
		case FieldStatus:
			if !req.Status.Valid() {
				return newFieldError(FieldStatus, ErrInvalidStatus)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateDeliveryLog(req models.CreateDeliveryLogRequest, fields ...string) error {
	for _, field := range scope(fields, FieldDeliveryID, FieldDescription) {
		switch field {
		case FieldDeliveryID:
			if !utils.IsUUID(req.DeliveryID) {
				return newFieldError(FieldDeliveryID, ErrInvalidDelivery)
			}
		case FieldDescription:
			if strings.TrimSpace(req.Description) == "" {
				return newFieldError(FieldDescription, ErrEmptyDescription)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// scope returns the fields to validate: the caller-provided subset when
// non-empty, otherwise the full default set for the request type.
func scope(fields []string, defaults ...string) []string {
	if len(fields) > 0 {
		return fields
	}
	return defaults
}

func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
