package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/app"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// Carts of authenticated accounts are served by CartService. Anonymous
// visitors keep their cart in the session, which is created on the first
// added item.

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r, routeData(r).CartData, app.MsgCartCollected)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var item models.CartItem
	if err := decodeJSON(w, r, &item); err != nil {
		writeError(w, r, err)
		return
	}

	if payload, ok := utils.APITokenPayloadFromContext(ctx); ok {
		cart, err := h.services.CartService.AddItem(ctx, payload.AccountID, item)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.writeCart(w, r, cart, app.MsgCartItemAdded)
		return
	}

	if err := h.validator.Validate(ctx, item); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	product, err := h.services.ProductService.GetProduct(ctx, item.ProductID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cart := routeData(r).CartData
	inCart := 0
	for _, line := range cart.Items {
		if line.ProductID == product.ProductID {
			inCart = line.Quantity
		}
	}
	if item.Quantity > product.Stock-inCart {
		writeError(w, r, service.ErrProductUnavailable)
		return
	}

	cart.Add(models.CartItem{
		ProductID:      product.ProductID,
		Name:           product.Name,
		Quantity:       item.Quantity,
		UnitPriceCents: product.PriceCents,
	})
	if err = h.saveSessionCart(w, r, cart); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeCart(w, r, cart, app.MsgCartItemAdded)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID, err := pathID(r, "productID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if payload, ok := utils.APITokenPayloadFromContext(ctx); ok {
		cart, err := h.services.CartService.RemoveItem(ctx, payload.AccountID, productID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		h.writeCart(w, r, cart, app.MsgCartItemRemoved)
		return
	}

	cart := routeData(r).CartData
	if !cart.Remove(productID) {
		writeError(w, r, store.ErrCartItemNotFound)
		return
	}
	if err = h.saveSessionCart(w, r, cart); err != nil {
		writeError(w, r, err)
		return
	}

	h.writeCart(w, r, cart, app.MsgCartItemRemoved)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cart := routeData(r).CartData

	if payload, ok := utils.APITokenPayloadFromContext(ctx); ok {
		if err := h.services.CartService.ClearCart(ctx, payload.AccountID); err != nil {
			writeError(w, r, err)
			return
		}
		cart.Clear()
		h.writeCart(w, r, cart, app.MsgCartCleared)
		return
	}

	cart.Clear()
	if _, ok := session.FromContext(ctx); ok {
		if err := h.saveSessionCart(w, r, cart); err != nil {
			writeError(w, r, err)
			return
		}
	}

	h.writeCart(w, r, cart, app.MsgCartCleared)
}

func (h *Handler) saveSessionCart(w http.ResponseWriter, r *http.Request, cart *models.CartData) error {
	if h.sessions == nil {
		return ErrUnauthenticated
	}

	sess, ok := session.FromContext(r.Context())
	if !ok {
		sess = &models.Session{}
	}
	sess.Cart = cart

	if err := h.sessions.Save(r.Context(), w, sess); err != nil {
		logger.FromRequest(r).Err(err).Msg("saving session cart failed")
		return err
	}
	return nil
}

func (h *Handler) writeCart(w http.ResponseWriter, r *http.Request, cart *models.CartData, message string) {
	if cart == nil {
		cart = models.NewCartData()
	}

	writeSuccess(w, r, models.CartResponse{
		APIResponse: success(message),
		CartData:    cart,
		Checkout:    h.services.DashboardService.Checkout(r.Context(), cart),
	}, http.StatusOK)
}
