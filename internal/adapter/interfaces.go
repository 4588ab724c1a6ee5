// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the shop API.
//
// The primary abstraction is [ServerAdapter], which hides the REST transport
// from callers such as integration tests and tooling. The client keeps the
// session cookie between calls, so an anonymous cart survives until login.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go so that
// callers can use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized]
// for 401). The server's envelope message is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-shop-api/models"
)

// ServerAdapter defines communication with the shop API server.
type ServerAdapter interface {
	// SetToken stores the API token attached to subsequent requests as
	// "Authorization: Bearer <token>". An empty token sends no header.
	SetToken(token string)

	// Token returns the stored API token, or "" when none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.Account, error)

	// Login authenticates and stores the issued token. Items of an
	// anonymous session cart are moved to the account cart by the server.
	Login(ctx context.Context, req models.LoginRequest) (models.Account, error)

	// Logout destroys the server session and forgets the stored token.
	Logout(ctx context.Context) error

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.Account, error)

	DashboardData(ctx context.Context) (models.DashboardData, error)

	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// GetCart returns the current cart with its checkout totals: the
	// account cart when a token is set, otherwise the session cart.
	GetCart(ctx context.Context) (models.CartResponse, error)

	AddCartItem(ctx context.Context, item models.CartItem) (models.CartResponse, error)

	RemoveCartItem(ctx context.Context, productID int64) (models.CartResponse, error)

	ClearCart(ctx context.Context) error
}
