// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-shop-api/internal/utils"
	"github.com/MKhiriev/go-shop-api/models"
)

// initRoute attaches a fresh [models.RouteData] to every request: no
// provided account, no selected product and an empty cart. It never fails
// and must run before any other route-scoped middleware.
func (h *Handler) initRoute(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := utils.WithRouteData(r.Context(), models.NewRouteData())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// routeData returns the route data of r. Handlers mounted behind initRoute
// always get a value; the fallback keeps them safe when used in isolation.
func routeData(r *http.Request) *models.RouteData {
	if rd, ok := utils.RouteDataFromContext(r.Context()); ok {
		return rd
	}
	return models.NewRouteData()
}
