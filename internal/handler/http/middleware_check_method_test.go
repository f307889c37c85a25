// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// newCheckMethodRouter builds a minimal router with a single GET route and the
// CheckHTTPMethod handler mounted as MethodNotAllowed.
func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

// TestCheckHTTPMethod_RegisteredMethod verifies that a supported method passes
// through to the route handler.
func TestCheckHTTPMethod_RegisteredMethod(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestCheckHTTPMethod_UnregisteredMethod verifies that an unsupported method
// on a known path answers 404 instead of chi's default 405.
func TestCheckHTTPMethod_UnregisteredMethod(t *testing.T) {
	router := newCheckMethodRouter()

	req := httptest.NewRequest(http.MethodDelete, "/ping", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
