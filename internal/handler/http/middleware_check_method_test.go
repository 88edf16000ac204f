package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodCheckedRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Post("/api/teams", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	router := newMethodCheckedRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered method passes through", http.MethodGet, "/api/version", http.StatusOK},
		{"registered POST passes through", http.MethodPost, "/api/teams", http.StatusCreated},
		{"wrong method hides the route", http.MethodDelete, "/api/version", http.StatusNotFound},
		{"wrong method on POST route", http.MethodGet, "/api/teams", http.StatusNotFound},
		{"PATCH never registered", http.MethodPatch, "/api/teams", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// A 405 is replaced with 404, so probing with unsupported methods reveals
// nothing about which routes exist.
func TestCheckHTTPMethod_NoRouteLeak(t *testing.T) {
	router := newMethodCheckedRouter()

	existing := httptest.NewRecorder()
	router.ServeHTTP(existing, httptest.NewRequest(http.MethodDelete, "/api/version", nil))

	missing := httptest.NewRecorder()
	router.ServeHTTP(missing, httptest.NewRequest(http.MethodDelete, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, existing.Code)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, existing.Code, missing.Code)
}
