package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameTooShort     = errors.New("name must be at least 3 characters")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidDelivery  = errors.New("invalid delivery ID")
	ErrEmptyDescription = errors.New("description is required")
	ErrInvalidStatus    = errors.New("invalid delivery status")
)

// FieldError carries the name of the offending request field together with
// the rule it violated, so handlers can surface field-level detail to callers.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
