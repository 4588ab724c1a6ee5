package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// acmeChallenge answers HTTP-01 challenges with the configured key
// authorization, whatever the challenge key and method.
func (h *Handler) acmeChallenge(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("challenge_key", chi.URLParam(r, "challengeKey")).Msg("ACME challenge requested")

	if _, err := utils.WriteText(w, h.acmeChallengeResult, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing ACME challenge response failed")
	}
}
