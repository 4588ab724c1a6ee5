package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	payload, _ := utils.APITokenPayloadFromContext(r.Context())

	var update models.AccountUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.AccountID = payload.AccountID

	account, err := h.services.AccountService.UpdateAccount(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.AccountResponse{APIResponse: success(app.MsgAccountUpdated), Account: account}, http.StatusOK)
}

// loadProvidedAccount puts the account addressed by {accountID} into the
// route data. Only the owner or an admin may address an account.
func (h *Handler) loadProvidedAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID, err := pathID(r, "accountID")
		if err != nil {
			writeError(w, r, err)
			return
		}

		payload, _ := utils.APITokenPayloadFromContext(r.Context())
		if payload.AccountID != accountID && !payload.HasRole(models.RoleAdmin) {
			logger.FromRequest(r).Debug().
				Int64("account_id", payload.AccountID).
				Int64("requested_account_id", accountID).
				Msg("access to another account denied")
			writeError(w, r, service.ErrAccessDenied)
			return
		}

		account, err := h.services.AccountService.GetAccount(r.Context(), accountID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		routeData(r).Accounts.ProvidedAccount = &account
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	account := routeData(r).Accounts.ProvidedAccount
	if account == nil {
		writeError(w, r, ErrRouteDataMissing)
		return
	}

	writeSuccess(w, r, models.AccountResponse{APIResponse: success(app.MsgAccountFound), Account: *account}, http.StatusOK)
}
