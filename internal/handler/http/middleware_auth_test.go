package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-delivery-tracker/internal/service"
	"github.com/MKhiriev/go-delivery-tracker/internal/utils"
	"github.com/MKhiriev/go-delivery-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

// TestGetTokenFromAuthHeader covers bearer token extraction from the raw
// Authorization header value.
func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "standard bearer token",
			header:    "Bearer abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:      "scheme is not inspected",
			header:    "Token abc.def.ghi",
			wantToken: "abc.def.ghi",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "empty token part",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// authenticate middleware
// ─────────────────────────────────────────────

// nextRecorder is a terminal handler that records whether it was reached and
// what identity the middleware stored in the context.
type nextRecorder struct {
	called   bool
	identity models.AuthenticatedUser
	hasUser  bool
}

func (n *nextRecorder) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n.called = true
		n.identity, n.hasUser = utils.GetAuthUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

// TestAuthenticate_Success verifies that a valid token passes the middleware
// and the identity from the token claims lands in the request context.
func TestAuthenticate_Success(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			require.Equal(t, "valid.jwt.token", tokenString)
			return models.Token{
				UserID: testUserID,
				Role:   models.RoleSale,
			}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodPost, "/delivery-logs", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.authenticate(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called, "expected next handler to run")
	require.True(t, next.hasUser, "expected identity in context")
	assert.Equal(t, testUserID, next.identity.ID)
	assert.Equal(t, models.RoleSale, next.identity.Role)
}

// TestAuthenticate_NoHeader verifies that a missing Authorization header is
// rejected with 401 before the token is parsed.
func TestAuthenticate_NoHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodPost, "/delivery-logs", nil)
	rec := httptest.NewRecorder()

	h.authenticate(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called, "next handler must not run")
	assert.Contains(t, rec.Body.String(), ErrEmptyAuthorizationHeader.Error())
}

// TestAuthenticate_MalformedHeader verifies that a header without a token part
// is rejected with 401.
func TestAuthenticate_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodPost, "/delivery-logs", nil)
	req.Header.Set("Authorization", "Bearer")
	rec := httptest.NewRecorder()

	h.authenticate(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called, "next handler must not run")
}

// TestAuthenticate_ExpiredToken verifies that an expired or invalid token is
// rejected with 401.
func TestAuthenticate_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)
	next := &nextRecorder{}

	req := httptest.NewRequest(http.MethodPost, "/delivery-logs", nil)
	req.Header.Set("Authorization", "Bearer expired.jwt.token")
	rec := httptest.NewRecorder()

	h.authenticate(next.handler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called, "next handler must not run")
	assert.Contains(t, rec.Body.String(), "token is expired or invalid")
}
