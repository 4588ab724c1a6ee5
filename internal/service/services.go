package service

import (
	"github.com/MKhiriev/go-shop-api/internal/config"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
)

type Services struct {
	AuthService      AuthService
	AccountService   AccountService
	VendorService    VendorService
	ProductService   ProductService
	CartService      CartService
	DashboardService DashboardService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewShopValidator()

	cartService := NewCartValidationService(validator).
		Wrap(NewCartService(storages.CartRepository, storages.ProductRepository, logger))

	return &Services{
		AuthService:      NewAuthService(storages.AccountRepository, validator, cfg.App, logger),
		AccountService:   NewAccountService(storages.AccountRepository, validator, logger),
		VendorService:    NewVendorService(storages.VendorRepository, validator, logger),
		ProductService:   NewProductService(storages.ProductRepository, validator, logger),
		CartService:      cartService,
		DashboardService: NewDashboardService(cfg.Dashboard),
	}
}
