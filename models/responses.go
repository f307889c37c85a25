package models

// SessionResponse is the body returned by a successful login: the signed
// session token plus the authenticated user with the password hash stripped.
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
