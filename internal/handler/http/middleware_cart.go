package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// initCartDataInRoute fills RouteData.CartData: authenticated accounts get
// their stored cart, anonymous visitors the cart kept in their session.
// Failures are logged and the cart stays empty.
func (h *Handler) initCartDataInRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd, ok := utils.RouteDataFromContext(r.Context())
		if !ok {
			logger.FromRequest(r).Error().Err(ErrRouteDataMissing).Msg("cart data was not loaded")
			next.ServeHTTP(w, r)
			return
		}

		if cart := h.loadCart(r); cart != nil {
			rd.CartData = cart
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) loadCart(r *http.Request) *models.CartData {
	ctx := r.Context()

	if payload, ok := utils.APITokenPayloadFromContext(ctx); ok {
		cart, err := h.services.CartService.GetCart(ctx, payload.AccountID)
		if err != nil {
			logger.FromRequest(r).Err(err).Int64("account_id", payload.AccountID).Msg("loading account cart failed")
			return nil
		}
		return cart
	}

	if sess, ok := session.FromContext(ctx); ok && sess.Cart != nil {
		if sess.Cart.Items == nil {
			sess.Cart.Items = []models.CartItem{}
		}
		return sess.Cart
	}

	return nil
}
