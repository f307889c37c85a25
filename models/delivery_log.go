package models

import "time"

// DeliveryLog is an append-only audit entry describing delivery progress.
// Log entries are only ever created, never mutated or deleted; their insertion
// order (by CreatedAt) forms the audit trail of the delivery.
type DeliveryLog struct {
	// LogID is the unique identifier of the log entry (UUID, server-assigned).
	LogID string `json:"id"`

	// DeliveryID references the delivery this entry belongs to.
	DeliveryID string `json:"delivery_id"`

	// Description is the free-form movement record, e.g. "left warehouse".
	Description string `json:"description"`

	// CreatedAt is the server-assigned timestamp of the entry.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DeliveryLog model.
func (l DeliveryLog) TableName() string {
	return "delivery_logs"
}
