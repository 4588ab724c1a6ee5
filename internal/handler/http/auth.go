package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Register(ctx, request)
	if err != nil {
		log.Err(err).Msg("account registration failed")
		writeError(w, r, err)
		return
	}

	h.issueToken(w, r, account, app.MsgAccountRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, err)
		return
	}

	account, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("login failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("account_id", account.AccountID).Msg("account successfully logged in")

	h.issueToken(w, r, account, app.MsgLoggedIn, http.StatusOK)
}

// issueToken signs a token for account, returns it in the Authorization
// header and the body, and remembers it in the session under a new session
// ID. Items of an anonymous session cart are moved to the account cart.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, account models.Account, message string, status int) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.AuthService.CreateToken(ctx, account)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	if h.sessions != nil {
		sess, ok := session.FromContext(ctx)
		if !ok {
			sess = &models.Session{}
		}
		h.moveSessionCart(r, sess, account.AccountID)
		sess.APIToken = token.SignedString

		if err = h.sessions.Renew(ctx, w, sess); err != nil {
			// the token in the response is still usable
			log.Err(err).Msg("storing token in session failed")
		}
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeSuccess(w, r, models.AuthResponse{
		APIResponse: success(message),
		APIToken:    token.SignedString,
		Account:     account,
	}, status)
}

func (h *Handler) moveSessionCart(r *http.Request, sess *models.Session, accountID int64) {
	if sess.Cart.IsEmpty() {
		return
	}

	for _, item := range sess.Cart.Items {
		_, err := h.services.CartService.AddItem(r.Context(), accountID, models.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
		if err != nil {
			logger.FromRequest(r).Err(err).Int64("product_id", item.ProductID).Msg("moving session cart item failed")
		}
	}
	sess.Cart = nil
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sess, ok := session.FromContext(ctx); ok && h.sessions != nil {
		sess.APIToken = ""
		sess.Cart = nil
		if err := h.sessions.Destroy(ctx, w, sess); err != nil {
			writeError(w, r, err)
			return
		}
	}

	writeSuccess(w, r, success(app.MsgLoggedOut), http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	payload, _ := utils.APITokenPayloadFromContext(r.Context())

	account, err := h.services.AccountService.GetAccount(r.Context(), payload.AccountID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeSuccess(w, r, models.AccountResponse{APIResponse: success(app.MsgAccountFound), Account: account}, http.StatusOK)
}
