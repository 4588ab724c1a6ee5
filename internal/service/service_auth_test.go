// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-shop-api",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}
}

func newAuthService(t *testing.T) (service.AuthService, *mock.MockAccountRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	return service.NewAuthService(repo, validators.NewShopValidator(), testAppConfig(), logger.Nop()), repo
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer with hashed password", func(t *testing.T) {
		svc, repo := newAuthService(t)

		repo.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
				assert.Equal(t, "jane@example.com", a.Email)
				assert.Equal(t, models.RoleCustomer, a.Role)
				assert.NotEqual(t, "password123", a.PasswordHash)
				assert.True(t, utils.CheckPassword(a.PasswordHash, "password123"))
				a.AccountID = 7
				return a, nil
			})

		account, err := svc.Register(ctx, models.RegisterRequest{
			Email:    " Jane@Example.com ",
			Password: "password123",
			Name:     "Jane",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), account.AccountID)
	})

	t.Run("vendor role is kept", func(t *testing.T) {
		svc, repo := newAuthService(t)

		repo.EXPECT().
			CreateAccount(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a models.Account) (models.Account, error) {
				return a, nil
			})

		account, err := svc.Register(ctx, models.RegisterRequest{
			Email: "shop@example.com", Password: "password123", Role: models.RoleVendor,
		})
		require.NoError(t, err)
		assert.Equal(t, models.RoleVendor, account.Role)
	})

	t.Run("admin cannot self-register", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.Register(ctx, models.RegisterRequest{
			Email: "root@example.com", Password: "password123", Role: models.RoleAdmin,
		})
		assert.ErrorIs(t, err, service.ErrRoleNotAllowed)
	})

	t.Run("invalid request", func(t *testing.T) {
		svc, _ := newAuthService(t)

		_, err := svc.Register(ctx, models.RegisterRequest{Email: "not-an-email", Password: "password123"})
		assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
		assert.ErrorIs(t, err, validators.ErrInvalidEmail)

		_, err = svc.Register(ctx, models.RegisterRequest{Email: "a@example.com", Password: "short"})
		assert.ErrorIs(t, err, validators.ErrWeakPassword)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := newAuthService(t)

		repo.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(models.Account{}, store.ErrEmailAlreadyExists)

		_, err := svc.Register(ctx, models.RegisterRequest{Email: "a@example.com", Password: "password123"})
		assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("password123", bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.Account{AccountID: 3, Email: "jane@example.com", PasswordHash: hash, Role: models.RoleCustomer}

	tests := []struct {
		name      string
		password  string
		found     models.Account
		findErr   error
		wantErr   error
		wantAccID int64
	}{
		{name: "success", password: "password123", found: stored, wantAccID: 3},
		{name: "wrong password", password: "password124", found: stored, wantErr: service.ErrWrongCredentials},
		{name: "unknown email", password: "password123", findErr: store.ErrAccountNotFound, wantErr: service.ErrWrongCredentials},
		{name: "storage failure", password: "password123", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newAuthService(t)
			repo.EXPECT().FindAccountByEmail(gomock.Any(), "jane@example.com").Return(tt.found, tt.findErr)

			account, err := svc.Login(ctx, models.LoginRequest{Email: "JANE@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAccID, account.AccountID)
		})
	}

	t.Run("empty password is rejected before lookup", func(t *testing.T) {
		svc, _ := newAuthService(t)
		_, err := svc.Login(ctx, models.LoginRequest{Email: "jane@example.com"})
		assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	})
}

func TestAuthService_CreateAndVerifyToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	account := models.Account{AccountID: 11, Email: "v@example.com", Role: models.RoleVendor}
	token, err := svc.CreateToken(ctx, account)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	payload, err := svc.VerifyToken(ctx, token.SignedString).Await(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(11), payload.AccountID)
	assert.Equal(t, models.RoleVendor, payload.Role)
	assert.Equal(t, "v@example.com", payload.Email)
}

func TestAuthService_VerifyToken_Failures(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	expiredCfg := testAppConfig()
	expiredCfg.TokenDuration = -time.Minute
	expired, err := utils.GenerateJWTToken(models.NewAPITokenPayload(models.Account{AccountID: 1}), utils.JWTOptions{
		SignKey: expiredCfg.TokenSignKey, Issuer: expiredCfg.TokenIssuer, Duration: expiredCfg.TokenDuration,
	})
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken(models.NewAPITokenPayload(models.Account{AccountID: 1}), utils.JWTOptions{
		SignKey: "another-key", Issuer: "go-shop-api", Duration: time.Hour,
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not.a.jwt"},
		{name: "expired", token: expired.SignedString},
		{name: "bad signature", token: foreign.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := svc.VerifyToken(ctx, tt.token).Await(ctx)
			assert.Nil(t, payload)
			assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
		})
	}

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		payload, err := svc.VerifyToken(canceled, expired.SignedString).Await(canceled)
		assert.Nil(t, payload)
		assert.True(t, errors.Is(err, service.ErrTokenVerificationAborted) || errors.Is(err, service.ErrTokenIsExpiredOrInvalid))
	})
}
