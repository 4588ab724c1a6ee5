package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// CartValidationService checks cart input before delegating to the wrapped
// CartService.
type CartValidationService struct {
	inner     CartService
	validator validators.Validator
}

func NewCartValidationService(validator validators.Validator) CartServiceWrapper {
	return &CartValidationService{
		validator: validator,
	}
}

func (v *CartValidationService) GetCart(ctx context.Context, accountID int64) (*models.CartData, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}

	return v.inner.GetCart(ctx, accountID)
}

func (v *CartValidationService) AddItem(ctx context.Context, accountID int64, item models.CartItem) (*models.CartData, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}
	if err := v.validator.Validate(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddItem(ctx, accountID, item)
}

func (v *CartValidationService) RemoveItem(ctx context.Context, accountID, productID int64) (*models.CartData, error) {
	if accountID <= 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}
	if err := v.validator.Validate(ctx, models.CartItem{ProductID: productID}, validators.FieldProductID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RemoveItem(ctx, accountID, productID)
}

func (v *CartValidationService) ClearCart(ctx context.Context, accountID int64) error {
	if accountID <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}

	return v.inner.ClearCart(ctx, accountID)
}

func (v *CartValidationService) PurgeStaleCarts(ctx context.Context, olderThan time.Duration) (int64, error) {
	return v.inner.PurgeStaleCarts(ctx, olderThan)
}

func (v *CartValidationService) Wrap(wrapped CartService) CartService {
	v.inner = wrapped
	return v
}
