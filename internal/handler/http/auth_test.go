// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/session"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister(t *testing.T) {
	account := models.Account{AccountID: 1, Email: "jane@example.com", Role: models.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.auth.EXPECT().Register(gomock.Any(), models.RegisterRequest{Email: "jane@example.com", Password: "password123"}).Return(account, nil)
		m.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil)

		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"jane@example.com","password":"password123"}`))
		h.register(rr, r)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
		resp := decodeBody[models.AuthResponse](t, rr)
		assert.True(t, resp.Success)
		assert.Equal(t, "signed", resp.APIToken)
		assert.Equal(t, int64(1), resp.Account.AccountID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, m := newTestHandler(t, nil)
		m.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)

		rr := httptest.NewRecorder()
		h.register(rr, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.c","password":"password123"}`)))
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		h, _ := newTestHandler(t, nil)

		rr := httptest.NewRecorder()
		h.register(rr, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{`)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin_StoresTokenInSession(t *testing.T) {
	sessions, storage := newTestSessions(t)
	h, m := newTestHandler(t, sessions)
	account := models.Account{AccountID: 2, Email: "jane@example.com"}

	m.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "jane@example.com", Password: "pw"}).Return(account, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil)

	rr := httptest.NewRecorder()
	h.login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"jane@example.com","password":"pw"}`)))
	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	stored, err := storage.GetSession(context.Background(), cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "signed", stored.APIToken)
}

func TestLogin_RenewsSessionID(t *testing.T) {
	sessions, storage := newTestSessions(t)
	h, m := newTestHandler(t, sessions)
	ctx := context.Background()
	account := models.Account{AccountID: 2}

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(account, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil)

	sess := &models.Session{}
	require.NoError(t, sessions.Save(ctx, httptest.NewRecorder(), sess))
	anonymousID := sess.ID

	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	r = r.WithContext(session.WithSession(r.Context(), sess))
	rr := httptest.NewRecorder()
	h.login(rr, r)
	require.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, anonymousID, cookies[0].Value)

	_, err := storage.GetSession(ctx, anonymousID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	stored, err := storage.GetSession(ctx, cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, "signed", stored.APIToken)
}

func TestLogin_MovesSessionCart(t *testing.T) {
	sessions, _ := newTestSessions(t)
	h, m := newTestHandler(t, sessions)
	account := models.Account{AccountID: 2}

	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(account, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), account).Return(models.Token{SignedString: "signed"}, nil)
	m.cart.EXPECT().AddItem(gomock.Any(), int64(2), models.CartItem{ProductID: 9, Quantity: 2}).Return(models.NewCartData(), nil)

	sess := &models.Session{ID: "s1", Cart: &models.CartData{Items: []models.CartItem{{ProductID: 9, Quantity: 2, UnitPriceCents: 100}}}}
	r := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	r = r.WithContext(session.WithSession(r.Context(), sess))

	rr := httptest.NewRecorder()
	h.login(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, sess.Cart)
	assert.Equal(t, "signed", sess.APIToken)
}

func TestLogin_WrongCredentials(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Account{}, service.ErrWrongCredentials)

	rr := httptest.NewRecorder()
	h.login(rr, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"pw"}`)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Header().Get("Authorization"))
}

func TestLogout(t *testing.T) {
	sessions, storage := newTestSessions(t)
	h, _ := newTestHandler(t, sessions)
	ctx := context.Background()

	sess := &models.Session{APIToken: "signed"}
	require.NoError(t, sessions.Save(ctx, httptest.NewRecorder(), sess))

	r := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	r = r.WithContext(session.WithSession(r.Context(), sess))
	rr := httptest.NewRecorder()
	h.logout(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	_, err := storage.GetSession(ctx, sess.ID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestMe(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.accounts.EXPECT().GetAccount(gomock.Any(), int64(4)).Return(models.Account{AccountID: 4, Name: "Jane"}, nil)

	rr := httptest.NewRecorder()
	h.me(rr, withPayload(httptest.NewRequest(http.MethodGet, "/auth/me", nil), &models.APITokenPayload{AccountID: 4}))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody[models.AccountResponse](t, rr)
	assert.Equal(t, "Jane", resp.Account.Name)
}
