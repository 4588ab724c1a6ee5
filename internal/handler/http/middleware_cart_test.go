package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInitCartDataInRoute(t *testing.T) {
	accountCart := &models.CartData{Items: []models.CartItem{{ProductID: 1, Quantity: 1}}}
	sessionCart := &models.CartData{Items: []models.CartItem{{ProductID: 2, Quantity: 3}}}

	t.Run("authenticated account cart", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.cart.EXPECT().GetCart(gomock.Any(), int64(5)).Return(accountCart, nil)

		next := &recordingHandler{}
		r := withPayload(httptest.NewRequest(http.MethodGet, "/", nil), &models.APITokenPayload{AccountID: 5})
		h.initCartDataInRoute(next).ServeHTTP(httptest.NewRecorder(), r)

		require.Equal(t, 1, next.calls)
		assert.Same(t, accountCart, next.routeData.CartData)
	})

	t.Run("account cart failure keeps empty cart", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.cart.EXPECT().GetCart(gomock.Any(), int64(5)).Return(nil, store.ErrExecutingQuery)

		next := &recordingHandler{}
		r := withPayload(httptest.NewRequest(http.MethodGet, "/", nil), &models.APITokenPayload{AccountID: 5})
		h.initCartDataInRoute(next).ServeHTTP(httptest.NewRecorder(), r)

		require.Equal(t, 1, next.calls)
		require.NotNil(t, next.routeData.CartData)
		assert.Empty(t, next.routeData.CartData.Items)
	})

	t.Run("anonymous session cart", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		next := &recordingHandler{}
		r := anonymous(httptest.NewRequest(http.MethodGet, "/", nil))
		r = r.WithContext(session.WithSession(r.Context(), &models.Session{ID: "s", Cart: sessionCart}))
		h.initCartDataInRoute(next).ServeHTTP(httptest.NewRecorder(), r)

		assert.Same(t, sessionCart, next.routeData.CartData)
	})

	t.Run("no route data", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		next := &recordingHandler{}
		h.initCartDataInRoute(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, 1, next.calls)
		assert.Nil(t, next.routeData)
	})
}
