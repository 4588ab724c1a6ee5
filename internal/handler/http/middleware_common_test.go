package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}

	mw := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(traceIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, r)

	assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

func TestWithLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	h := &Handler{logger: logger.Nop()}

	mw := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	r := httptest.NewRequest(http.MethodPost, "/brew?x=1", nil)
	l := zerolog.New(buf)
	r = r.WithContext(l.WithContext(r.Context()))
	mw.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/brew?x=1", entry["uri"])
	assert.Equal(t, http.MethodPost, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, len("short and stout"), entry["size"])
	assert.Contains(t, entry, "duration")
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)

	// later status changes are ignored
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(" world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 11, w.size)
	assert.Same(t, rr, w.Unwrap())
}

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("items"))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		method string
		status int
	}{
		{method: http.MethodGet, status: http.StatusOK},
		{method: http.MethodPost, status: http.StatusNotFound},
		{method: http.MethodDelete, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, "/items", nil))
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, statusFromError(ErrUnauthenticated))
	assert.Equal(t, http.StatusBadRequest, statusFromError(ErrInvalidJSON))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
