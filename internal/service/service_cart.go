package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/models"
)

// cartService keeps the carts of authenticated accounts in the database.
// Anonymous carts live in the session and never reach this service.
type cartService struct {
	cartRepository    store.CartRepository
	productRepository store.ProductRepository
	logger            *logger.Logger
}

func NewCartService(cartRepository store.CartRepository, productRepository store.ProductRepository, logger *logger.Logger) CartService {
	return &cartService{
		cartRepository:    cartRepository,
		productRepository: productRepository,
		logger:            logger,
	}
}

// GetCart loads the cart of accountID. An account without items gets an
// empty, non-nil cart.
func (s *cartService) GetCart(ctx context.Context, accountID int64) (*models.CartData, error) {
	items, err := s.cartRepository.GetCartItems(ctx, accountID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("reading cart failed")
		return nil, fmt.Errorf("reading cart failed: %w", err)
	}

	cart := models.NewCartData()
	if len(items) > 0 {
		cart.Items = items
	}

	return cart, nil
}

// AddItem adds item.Quantity units of item.ProductID to the cart. The
// product must exist and have enough stock for the resulting quantity.
func (s *cartService) AddItem(ctx context.Context, accountID int64, item models.CartItem) (*models.CartData, error) {
	log := logger.FromContext(ctx)

	product, err := s.productRepository.FindProductByID(ctx, item.ProductID)
	if err != nil {
		log.Err(err).Int64("product_id", item.ProductID).Msg("product search before adding to cart failed")
		return nil, fmt.Errorf("product search failed: %w", err)
	}

	cart, err := s.GetCart(ctx, accountID)
	if err != nil {
		return nil, err
	}

	inCart := 0
	for _, line := range cart.Items {
		if line.ProductID == item.ProductID {
			inCart = line.Quantity
			break
		}
	}
	if item.Quantity > product.Stock-inCart {
		log.Debug().
			Int64("product_id", product.ProductID).
			Int("stock", product.Stock).
			Int("in_cart", inCart).
			Int("requested", item.Quantity).
			Msg("not enough stock")
		return nil, ErrProductUnavailable
	}

	err = s.cartRepository.AddCartItem(ctx, accountID, item)
	if errors.Is(err, store.ErrInsufficientStock) {
		// stock changed since it was read above
		return nil, ErrProductUnavailable
	}
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Int64("product_id", item.ProductID).Msg("adding cart item failed")
		return nil, fmt.Errorf("adding cart item failed: %w", err)
	}

	cart.Add(models.CartItem{
		ProductID:      product.ProductID,
		Name:           product.Name,
		Quantity:       item.Quantity,
		UnitPriceCents: product.PriceCents,
	})

	return cart, nil
}

func (s *cartService) RemoveItem(ctx context.Context, accountID, productID int64) (*models.CartData, error) {
	if err := s.cartRepository.RemoveCartItem(ctx, accountID, productID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Int64("product_id", productID).Msg("removing cart item failed")
		return nil, fmt.Errorf("removing cart item failed: %w", err)
	}

	return s.GetCart(ctx, accountID)
}

func (s *cartService) ClearCart(ctx context.Context, accountID int64) error {
	if err := s.cartRepository.ClearCart(ctx, accountID); err != nil {
		logger.FromContext(ctx).Err(err).Int64("account_id", accountID).Msg("clearing cart failed")
		return fmt.Errorf("clearing cart failed: %w", err)
	}

	return nil
}

// PurgeStaleCarts deletes cart lines not touched for olderThan and returns
// the number of deleted lines.
func (s *cartService) PurgeStaleCarts(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, ErrInvalidRetention
	}

	deleted, err := s.cartRepository.DeleteCartItemsOlderThan(ctx, time.Now().Add(-olderThan))
	if err != nil {
		s.logger.Err(err).Dur("older_than", olderThan).Msg("purging stale carts failed")
		return 0, fmt.Errorf("purging stale carts failed: %w", err)
	}

	return deleted, nil
}
