package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireAPIToken(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	next := &recordingHandler{}
	mw := h.requireAPIToken(next)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, anonymous(httptest.NewRequest(http.MethodGet, "/", nil)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, 0, next.calls)

	resp := decodeBody[models.APIResponse](t, rr)
	assert.False(t, resp.Success)
	assert.Equal(t, ErrUnauthenticated.Error(), resp.Message)

	rr = httptest.NewRecorder()
	mw.ServeHTTP(rr, withPayload(httptest.NewRequest(http.MethodGet, "/", nil), &models.APITokenPayload{AccountID: 1}))
	assert.Equal(t, 1, next.calls)
}

func TestRequireRole(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	tests := []struct {
		name   string
		role   models.Role
		status int
	}{
		{name: "vendor allowed", role: models.RoleVendor, status: http.StatusOK},
		{name: "admin allowed", role: models.RoleAdmin, status: http.StatusOK},
		{name: "customer forbidden", role: models.RoleCustomer, status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := &recordingHandler{}
			mw := h.requireRole(models.RoleVendor, models.RoleAdmin)(next)

			rr := httptest.NewRecorder()
			r := withPayload(httptest.NewRequest(http.MethodPost, "/", nil), &models.APITokenPayload{AccountID: 1, Role: tt.role})
			mw.ServeHTTP(rr, r)

			assert.Equal(t, tt.status, rr.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, 1, next.calls)
			} else {
				assert.Equal(t, 0, next.calls)
			}
		})
	}

	t.Run("no payload", func(t *testing.T) {
		next := &recordingHandler{}
		rr := httptest.NewRecorder()
		h.requireRole(models.RoleAdmin)(next).ServeHTTP(rr, anonymous(httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
