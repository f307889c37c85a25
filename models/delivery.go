package models

import "time"

// DeliveryStatus is the lifecycle state of a delivery. The set of states is
// closed; transitions between them are governed by a transition table (see
// [DefaultStatusTransitions]).
type DeliveryStatus string

const (
	// StatusProcessing is the initial state of every delivery. While a
	// delivery is processing no log entries may be appended to it.
	StatusProcessing DeliveryStatus = "processing"

	// StatusShipped marks a delivery that has left the warehouse.
	StatusShipped DeliveryStatus = "shipped"

	// StatusDelivered is the intended terminal state of a delivery.
	StatusDelivered DeliveryStatus = "delivered"
)

// Valid reports whether s is a member of the delivery status enum.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s DeliveryStatus) String() string {
	return string(s)
}

// StatusTransitions maps the current delivery status to the set of statuses
// it may move to. The table is supplied to the delivery service as
// configuration so callers can tighten or relax the lifecycle without
// touching the service code.
type StatusTransitions map[DeliveryStatus][]DeliveryStatus

// Allowed reports whether moving from "from" to "to" is permitted by the table.
func (t StatusTransitions) Allowed(from, to DeliveryStatus) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DefaultStatusTransitions returns the forward-only delivery lifecycle:
// processing → shipped → delivered, with processing → delivered permitted as
// a shortcut. Delivered is terminal.
func DefaultStatusTransitions() StatusTransitions {
	return StatusTransitions{
		StatusProcessing: {StatusShipped, StatusDelivered},
		StatusShipped:    {StatusDelivered},
		StatusDelivered:  {},
	}
}

// Delivery is a trackable shipment record owned by exactly one user.
type Delivery struct {
	// DeliveryID is the unique identifier of the delivery (UUID, server-assigned).
	DeliveryID string `json:"id"`

	// UserID references the owning user. Many deliveries may belong to one user.
	UserID string `json:"user_id"`

	// Description is a free-form summary of the shipment contents.
	Description string `json:"description"`

	// Status is the current lifecycle state. New deliveries start in
	// [StatusProcessing].
	Status DeliveryStatus `json:"status"`

	// CreatedAt is the timestamp when the delivery was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last status mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Delivery model.
func (d Delivery) TableName() string {
	return "deliveries"
}
