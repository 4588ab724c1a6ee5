// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-shop-api server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of API responses. Keeping them in one place ensures
// consistent wording throughout the API.
package app

const (
	// MsgDashboardDataCollected is returned by GET /dashboardData.
	MsgDashboardDataCollected = "Dashboard data collected successfully"

	MsgAccountRegistered = "Account registered successfully"
	MsgLoggedIn          = "Logged in successfully"
	MsgLoggedOut         = "Logged out successfully"
	MsgAccountFound      = "Account found"
	MsgAccountUpdated    = "Account updated successfully"

	MsgVendorsListed = "Vendors listed successfully"
	MsgVendorFound   = "Vendor found"
	MsgVendorCreated = "Vendor created successfully"

	MsgProductsListed  = "Products listed successfully"
	MsgProductFound    = "Product found"
	MsgProductCreated  = "Product created successfully"
	MsgCartCollected   = "Cart collected successfully"
	MsgCartItemAdded   = "Item added to cart"
	MsgCartItemRemoved = "Item removed from cart"
	MsgCartCleared     = "Cart cleared"
)
