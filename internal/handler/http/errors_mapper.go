package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrMalformedMultipart: http.StatusBadRequest,
	ErrInvalidPathParam:   http.StatusBadRequest,
	ErrInvalidQueryParam:  http.StatusBadRequest,
	ErrUnauthenticated:    http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	errRouteNotFound:      http.StatusNotFound,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrRoleNotAllowed:          http.StatusForbidden,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,
	service.ErrProductUnavailable:      http.StatusConflict,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrVendorNameTaken:    http.StatusConflict,
	store.ErrAccountNotFound:    http.StatusNotFound,
	store.ErrVendorNotFound:     http.StatusNotFound,
	store.ErrProductNotFound:    http.StatusNotFound,
	store.ErrCartItemNotFound:   http.StatusNotFound,
	store.ErrInsufficientStock:  http.StatusConflict,
	store.ErrReferenceNotFound:  http.StatusUnprocessableEntity,
	store.ErrNothingToUpdate:    http.StatusBadRequest,
	store.ErrRedisUnavailable:   http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
	store.ErrEncodingSession:    http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError responds with the JSON error envelope. Messages of server-side
// failures are replaced with the generic status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	}

	_, _ = utils.WriteJSON(w, models.APIResponse{
		Success: false,
		Message: message,
		ErrorReport: map[string]any{
			"status": status,
			"error":  http.StatusText(status),
		},
	}, status)
}

// writeSuccess responds with status and body, where body embeds
// [models.APIResponse].
func writeSuccess(w http.ResponseWriter, r *http.Request, body any, status int) {
	if _, err := utils.WriteJSON(w, body, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
