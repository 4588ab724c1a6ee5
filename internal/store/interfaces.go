package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-shop-api/models"
)

// ErrorClassificator decides whether a failed database operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// AccountRepository persists shop accounts.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)
	UpdateAccount(ctx context.Context, update models.AccountUpdate) (models.Account, error)
}

// VendorRepository persists vendors.
type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error)
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	FindVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error)
}

// ProductRepository persists the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID int64) (models.Product, error)
}

// CartRepository persists the carts of authenticated accounts.
type CartRepository interface {
	GetCartItems(ctx context.Context, accountID int64) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, accountID int64, item models.CartItem) error
	RemoveCartItem(ctx context.Context, accountID, productID int64) error
	ClearCart(ctx context.Context, accountID int64) error
	DeleteCartItemsOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// SessionStorage keeps visitor sessions.
type SessionStorage interface {
	SaveSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
