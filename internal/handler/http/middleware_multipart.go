package http

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
)

// parseMultipart parses multipart/form-data bodies up front so that
// handlers can read r.FormValue and r.MultipartForm. Other requests pass
// through untouched. Temporary files are removed once the request is served.
func (h *Handler) parseMultipart(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			next.ServeHTTP(w, r)
			return
		}

		if err = r.ParseMultipartForm(h.multipartMaxMemory); err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("malformed multipart body")
			writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedMultipart, err))
			return
		}
		defer func() {
			if r.MultipartForm != nil {
				_ = r.MultipartForm.RemoveAll()
			}
		}()

		next.ServeHTTP(w, r)
	})
}
