package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-delivery-tracker/internal/logger"
	"github.com/MKhiriev/go-delivery-tracker/internal/service"
	"github.com/MKhiriev/go-delivery-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter builds a fully initialised router backed by permissive mocks.
// Individual tests override mock behaviour before issuing requests.
func newTestRouter(t *testing.T, auth *mockAuthService, delivery *mockDeliveryService) http.Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:     auth,
		DeliveryService: delivery,
	}
	return NewHandler(svcs, logger.Nop()).Init()
}

// happyAuth returns a mockAuthService whose every method succeeds.
func happyAuth() *mockAuthService {
	return &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterUserRequest) (models.User, error) {
			return models.User{UserID: testUserID, Name: req.Name, Email: req.Email, Role: models.RoleCustomer}, nil
		},
		loginFn: func(_ context.Context, req models.CreateSessionRequest) (models.User, error) {
			return models.User{UserID: testUserID, Email: req.Email, Role: models.RoleCustomer}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("routed.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: testUserID, Role: models.RoleSale}, nil
		},
	}
}

// happyDelivery returns a mockDeliveryService whose every method succeeds.
func happyDelivery() *mockDeliveryService {
	return &mockDeliveryService{
		createDeliveryFn: func(_ context.Context, req models.CreateDeliveryRequest) (models.Delivery, error) {
			return models.Delivery{DeliveryID: testDeliveryID, UserID: req.UserID, Status: models.StatusProcessing}, nil
		},
		listDeliveriesFn: func(_ context.Context) ([]models.Delivery, error) {
			return []models.Delivery{}, nil
		},
		updateStatusFn: func(_ context.Context, deliveryID string, req models.UpdateDeliveryStatusRequest) (models.Delivery, error) {
			return models.Delivery{DeliveryID: deliveryID, Status: req.Status}, nil
		},
		addLogFn: func(_ context.Context, req models.CreateDeliveryLogRequest) (models.DeliveryLog, error) {
			return models.DeliveryLog{LogID: "log-id", DeliveryID: req.DeliveryID}, nil
		},
		getDeliveryFn: func(_ context.Context, deliveryID string, _ models.AuthenticatedUser) (models.Delivery, error) {
			return models.Delivery{DeliveryID: deliveryID}, nil
		},
	}
}

// TestRoutes_PublicEndpoints verifies that every public route dispatches to
// its handler without authentication.
func TestRoutes_PublicEndpoints(t *testing.T) {
	router := newTestRouter(t, happyAuth(), happyDelivery())

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{
			name:       "register",
			method:     http.MethodPost,
			target:     "/users",
			body:       `{"name":"Alice Johnson","email":"alice@example.com","password":"correct-horse"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "login",
			method:     http.MethodPost,
			target:     "/sessions",
			body:       `{"email":"alice@example.com","password":"correct-horse"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "create delivery",
			method:     http.MethodPost,
			target:     "/deliveries",
			body:       `{"user_id":"` + testUserID + `","description":"Monitor"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "list deliveries",
			method:     http.MethodGet,
			target:     "/deliveries",
			wantStatus: http.StatusOK,
		},
		{
			name:       "update delivery status",
			method:     http.MethodPatch,
			target:     "/deliveries/" + testDeliveryID + "/status",
			body:       `{"status":"shipped"}`,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.target, body)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// TestRoutes_DeliveryLogsRequireAuth verifies that the delivery-log routes are
// gated by the authenticate middleware.
func TestRoutes_DeliveryLogsRequireAuth(t *testing.T) {
	router := newTestRouter(t, happyAuth(), happyDelivery())

	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{
			name:   "create delivery log",
			method: http.MethodPost,
			target: "/delivery-logs",
			body:   `{"delivery_id":"` + testDeliveryID + `","description":"Arrived"}`,
		},
		{
			name:   "show delivery",
			method: http.MethodGet,
			target: "/delivery-logs/" + testDeliveryID + "/show",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestRoutes_CreateDeliveryLogGatedToSale verifies that the createDeliveryLog
// route is reachable for sale but rejected for customer, while showDelivery
// accepts any authenticated role.
func TestRoutes_CreateDeliveryLogGatedToSale(t *testing.T) {
	logBody := `{"delivery_id":"` + testDeliveryID + `","description":"Arrived"}`

	t.Run("sale may create a log", func(t *testing.T) {
		router := newTestRouter(t, happyAuth(), happyDelivery())

		req := httptest.NewRequest(http.MethodPost, "/delivery-logs", strings.NewReader(logBody))
		req.Header.Set("Authorization", "Bearer sale.jwt.token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("customer may not create a log", func(t *testing.T) {
		auth := happyAuth()
		auth.parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: testUserID, Role: models.RoleCustomer}, nil
		}
		router := newTestRouter(t, auth, happyDelivery())

		req := httptest.NewRequest(http.MethodPost, "/delivery-logs", strings.NewReader(logBody))
		req.Header.Set("Authorization", "Bearer customer.jwt.token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("customer may inspect a delivery", func(t *testing.T) {
		auth := happyAuth()
		auth.parseTokenFn = func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: testUserID, Role: models.RoleCustomer}, nil
		}
		router := newTestRouter(t, auth, happyDelivery())

		req := httptest.NewRequest(http.MethodGet, "/delivery-logs/"+testDeliveryID+"/show", nil)
		req.Header.Set("Authorization", "Bearer customer.jwt.token")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

// TestRoutes_DeliveryLifecycleFlow walks the composite happy path through the
// real router and middleware chain: register, login, create a delivery, have a
// log rejected while the delivery is still processing, ship it, log it, then
// fetch it as the owner and as a foreign customer.
func TestRoutes_DeliveryLifecycleFlow(t *testing.T) {
	const intruderID = "0191e4a0-0000-7000-8000-0000000000ff"

	// registered account and delivery state shared across the flow
	var account models.User
	current := models.Delivery{}

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, req models.RegisterUserRequest) (models.User, error) {
			account = models.User{UserID: testUserID, Name: req.Name, Email: req.Email, Role: models.RoleCustomer}
			return account, nil
		},
		loginFn: func(_ context.Context, req models.CreateSessionRequest) (models.User, error) {
			if req.Email != account.Email {
				return models.User{}, service.ErrInvalidCredentials
			}
			return account, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			return stubToken("owner.jwt.token"), nil
		},
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			switch tokenString {
			case "owner.jwt.token":
				return models.Token{UserID: testUserID, Role: models.RoleCustomer}, nil
			case "intruder.jwt.token":
				return models.Token{UserID: intruderID, Role: models.RoleCustomer}, nil
			case "sale.jwt.token":
				return models.Token{UserID: "0191e4a0-0000-7000-8000-0000000000aa", Role: models.RoleSale}, nil
			default:
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
		},
	}

	delivery := &mockDeliveryService{
		createDeliveryFn: func(_ context.Context, req models.CreateDeliveryRequest) (models.Delivery, error) {
			current = models.Delivery{DeliveryID: testDeliveryID, UserID: req.UserID, Status: models.StatusProcessing}
			return current, nil
		},
		updateStatusFn: func(_ context.Context, deliveryID string, req models.UpdateDeliveryStatusRequest) (models.Delivery, error) {
			current.Status = req.Status
			return current, nil
		},
		addLogFn: func(_ context.Context, req models.CreateDeliveryLogRequest) (models.DeliveryLog, error) {
			if current.Status == models.StatusProcessing {
				return models.DeliveryLog{}, service.ErrDeliveryStillProcessing
			}
			return models.DeliveryLog{LogID: "log-id", DeliveryID: req.DeliveryID, Description: req.Description}, nil
		},
		getDeliveryFn: func(_ context.Context, deliveryID string, user models.AuthenticatedUser) (models.Delivery, error) {
			if user.Role == models.RoleCustomer && user.ID != current.UserID {
				return models.Delivery{}, service.ErrAccessDenied
			}
			return current, nil
		},
	}

	router := newTestRouter(t, auth, delivery)

	do := func(method, target, body, token string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, target, strings.NewReader(body))
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	logBody := `{"delivery_id":"` + testDeliveryID + `","description":"Package shipped"}`

	rec := do(http.MethodPost, "/users", `{"name":"Alice Johnson","email":"alice@example.com","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodPost, "/sessions", `{"email":"alice@example.com","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "owner.jwt.token")

	rec = do(http.MethodPost, "/deliveries", `{"user_id":"`+testUserID+`","description":"Monitor"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(http.MethodPost, "/delivery-logs", logBody, "sale.jwt.token")
	require.Equal(t, http.StatusNotFound, rec.Code, "log must be rejected while the delivery is processing")
	assert.Contains(t, rec.Body.String(), "delivery is still processing")

	rec = do(http.MethodPatch, "/deliveries/"+testDeliveryID+"/status", `{"status":"shipped"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodPost, "/delivery-logs", logBody, "sale.jwt.token")
	require.Equal(t, http.StatusCreated, rec.Code, "log must be accepted once the delivery is shipped")

	rec = do(http.MethodGet, "/delivery-logs/"+testDeliveryID+"/show", "", "owner.jwt.token")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), testDeliveryID)

	rec = do(http.MethodGet, "/delivery-logs/"+testDeliveryID+"/show", "", "intruder.jwt.token")
	require.Equal(t, http.StatusUnauthorized, rec.Code, "a foreign customer must not see the delivery")
}

// TestRoutes_UnsupportedMethod verifies that a registered path hit with an
// unregistered method answers 404, not 405.
func TestRoutes_UnsupportedMethod(t *testing.T) {
	router := newTestRouter(t, happyAuth(), happyDelivery())

	req := httptest.NewRequest(http.MethodDelete, "/users", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRoutes_TraceIDHeader verifies that every response carries an X-Trace-ID
// header, echoing the inbound one when present.
func TestRoutes_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, happyAuth(), happyDelivery())

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	})

	t.Run("echoed when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/deliveries", nil)
		req.Header.Set("X-Trace-ID", "trace-42")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "trace-42", rec.Header().Get("X-Trace-ID"))
	})
}
