package service

import (
	"context"
	"math"

	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/models"
)

// dashboardService exposes the checkout settings and prices carts with them.
// The settings are read once at construction.
type dashboardService struct {
	taxRate        float64
	deliveryCharge float64
}

func NewDashboardService(cfg config.Dashboard) DashboardService {
	return &dashboardService{
		taxRate:        cfg.TaxRate,
		deliveryCharge: cfg.DeliveryCharge,
	}
}

func (s *dashboardService) GetDashboardData(ctx context.Context) models.DashboardData {
	return models.DashboardData{
		Tax:            s.taxRate,
		DeliveryCharge: s.deliveryCharge,
	}
}

// Checkout prices cart. Tax is rounded half away from zero to whole cents.
// An empty cart is not charged for delivery.
func (s *dashboardService) Checkout(ctx context.Context, cart *models.CartData) models.Checkout {
	subtotal := cart.SubtotalCents()
	tax := int64(math.Round(float64(subtotal) * s.taxRate))

	var delivery int64
	if !cart.IsEmpty() {
		delivery = int64(math.Round(s.deliveryCharge * 100))
	}

	return models.Checkout{
		SubtotalCents:       subtotal,
		TaxCents:            tax,
		DeliveryChargeCents: delivery,
		TotalCents:          subtotal + tax + delivery,
	}
}
