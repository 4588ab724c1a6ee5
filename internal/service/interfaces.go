package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-api/models"
)

type AuthService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.Account, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)

	// VerifyToken starts verifying tokenString and returns immediately.
	// The outcome is obtained with [TokenVerification.Await].
	VerifyToken(ctx context.Context, tokenString string) *TokenVerification
}

type AccountService interface {
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)
	UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error)
}

type VendorService interface {
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	GetVendor(ctx context.Context, vendorID int64) (models.Vendor, error)
	CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error)
}

type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, productID int64) (models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
}

type CartService interface {
	GetCart(ctx context.Context, accountID int64) (*models.CartData, error)
	AddItem(ctx context.Context, accountID int64, item models.CartItem) (*models.CartData, error)
	RemoveItem(ctx context.Context, accountID, productID int64) (*models.CartData, error)
	ClearCart(ctx context.Context, accountID int64) error
	PurgeStaleCarts(ctx context.Context, olderThan time.Duration) (int64, error)
}

type DashboardService interface {
	GetDashboardData(ctx context.Context) models.DashboardData
	Checkout(ctx context.Context, cart *models.CartData) models.Checkout
}

// CartServiceWrapper defines middleware composition for CartService.
// Implementations wrap an existing CartService to add behavior such as
// logging or validating.
type CartServiceWrapper interface {
	Wrap(CartService) CartService // returns a decorated CartService applying additional behavior
}
