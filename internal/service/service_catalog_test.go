package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/mock"
	"github.com/MKhiriev/go-shop-api/internal/service"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAccountRepository(ctrl)
	svc := service.NewAccountService(repo, validators.NewShopValidator(), logger.Nop())

	repo.EXPECT().FindAccountByID(gomock.Any(), int64(1)).Return(models.Account{AccountID: 1, Name: "Jane"}, nil)
	account, err := svc.GetAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Jane", account.Name)

	repo.EXPECT().FindAccountByID(gomock.Any(), int64(2)).Return(models.Account{}, store.ErrAccountNotFound)
	_, err = svc.GetAccount(ctx, 2)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)

	name := "  Janet "
	repo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.AccountUpdate) (models.Account, error) {
			return models.Account{AccountID: u.AccountID, Name: *u.Name}, nil
		})
	account, err = svc.UpdateAccount(ctx, models.AccountUpdate{AccountID: 1, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Janet", account.Name)

	_, err = svc.UpdateAccount(ctx, models.AccountUpdate{AccountID: 1})
	assert.ErrorIs(t, err, validators.ErrNoFieldsToUpdate)
}

func TestVendorService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockVendorRepository(ctrl)
	svc := service.NewVendorService(repo, validators.NewShopValidator(), logger.Nop())

	repo.EXPECT().ListVendors(gomock.Any()).Return([]models.Vendor{{VendorID: 1}, {VendorID: 2}}, nil)
	vendors, err := svc.ListVendors(ctx)
	require.NoError(t, err)
	assert.Len(t, vendors, 2)

	repo.EXPECT().FindVendorByID(gomock.Any(), int64(3)).Return(models.Vendor{}, store.ErrVendorNotFound)
	_, err = svc.GetVendor(ctx, 3)
	assert.ErrorIs(t, err, store.ErrVendorNotFound)

	_, err = svc.CreateVendor(ctx, models.Vendor{OwnerAccountID: 1, Name: " "})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	repo.EXPECT().CreateVendor(gomock.Any(), gomock.Any()).Return(models.Vendor{}, store.ErrVendorNameTaken)
	_, err = svc.CreateVendor(ctx, models.Vendor{OwnerAccountID: 1, Name: "Acme"})
	assert.ErrorIs(t, err, store.ErrVendorNameTaken)
}

func TestProductService(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProductRepository(ctrl)
	svc := service.NewProductService(repo, validators.NewShopValidator(), logger.Nop())

	t.Run("listing limit is capped", func(t *testing.T) {
		repo.EXPECT().
			ListProducts(gomock.Any(), models.ProductFilter{VendorID: 4, Limit: 100}).
			Return([]models.Product{{ProductID: 1}}, nil)

		products, err := svc.ListProducts(ctx, models.ProductFilter{VendorID: 4, Limit: 5000})
		require.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("get", func(t *testing.T) {
		repo.EXPECT().FindProductByID(gomock.Any(), int64(8)).Return(models.Product{ProductID: 8}, nil)
		product, err := svc.GetProduct(ctx, 8)
		require.NoError(t, err)
		assert.Equal(t, int64(8), product.ProductID)
	})

	t.Run("create validates", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, models.Product{VendorID: 1, Name: "Mug", PriceCents: -1})
		assert.ErrorIs(t, err, validators.ErrInvalidPrice)
	})

	t.Run("create unknown vendor", func(t *testing.T) {
		repo.EXPECT().CreateProduct(gomock.Any(), gomock.Any()).Return(models.Product{}, store.ErrReferenceNotFound)
		_, err := svc.CreateProduct(ctx, models.Product{VendorID: 1, Name: "Mug", PriceCents: 100})
		assert.ErrorIs(t, err, store.ErrReferenceNotFound)
	})
}
