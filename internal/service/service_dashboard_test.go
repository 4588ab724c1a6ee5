// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
)

func TestDashboardService_GetDashboardData(t *testing.T) {
	svc := service.NewDashboardService(config.Dashboard{TaxRate: 0.08, DeliveryCharge: 4.99})

	data := svc.GetDashboardData(context.Background())
	assert.Equal(t, models.DashboardData{Tax: 0.08, DeliveryCharge: 4.99}, data)
}

func TestDashboardService_Checkout(t *testing.T) {
	svc := service.NewDashboardService(config.Dashboard{TaxRate: 0.08, DeliveryCharge: 4.99})

	tests := []struct {
		name string
		cart *models.CartData
		want models.Checkout
	}{
		{
			name: "nil cart",
			cart: nil,
			want: models.Checkout{},
		},
		{
			name: "empty cart is not charged for delivery",
			cart: models.NewCartData(),
			want: models.Checkout{},
		},
		{
			name: "tax is rounded to cents",
			cart: &models.CartData{Items: []models.CartItem{
				{ProductID: 1, Quantity: 3, UnitPriceCents: 333},
			}},
			// 999 * 0.08 = 79.92
			want: models.Checkout{SubtotalCents: 999, TaxCents: 80, DeliveryChargeCents: 499, TotalCents: 1578},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Checkout(context.Background(), tt.cart))
		})
	}
}
