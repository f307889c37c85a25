package models

// Request bodies accepted by the HTTP surface. Field names mirror the wire
// format; validation rules live in the validators package.

// RegisterUserRequest is the body of POST /users.
type RegisterUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateDeliveryRequest is the body of POST /deliveries.
type CreateDeliveryRequest struct {
	UserID      string `json:"user_id"`
	Description string `json:"description"`
}

// UpdateDeliveryStatusRequest is the body of PATCH /deliveries/{id}/status.
type UpdateDeliveryStatusRequest struct {
	Status DeliveryStatus `json:"status"`
}

// CreateDeliveryLogRequest is the body of POST /delivery-logs.
type CreateDeliveryLogRequest struct {
	DeliveryID  string `json:"delivery_id"`
	Description string `json:"description"`
}
