package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

// maxProductsPage caps a single product listing.
const maxProductsPage = 100

type productService struct {
	productRepository store.ProductRepository
	validator         validators.Validator
	logger            *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, validator validators.Validator, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListProducts returns products matching filter. A zero or too large limit
// is replaced with maxProductsPage.
func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if filter.Limit == 0 || filter.Limit > maxProductsPage {
		filter.Limit = maxProductsPage
	}

	products, err := s.productRepository.ListProducts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Any("filter", filter).Msg("listing products failed")
		return nil, fmt.Errorf("listing products failed: %w", err)
	}

	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (models.Product, error) {
	product, err := s.productRepository.FindProductByID(ctx, productID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("product_id", productID).Msg("product search by ID failed")
		return models.Product{}, fmt.Errorf("product search by ID failed: %w", err)
	}

	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, product); err != nil {
		log.Debug().Err(err).Str("name", product.Name).Msg("invalid product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.productRepository.CreateProduct(ctx, product)
	if err != nil {
		log.Err(err).Int64("vendor_id", product.VendorID).Str("name", product.Name).Msg("product creation failed")
		return models.Product{}, fmt.Errorf("product creation failed: %w", err)
	}

	return created, nil
}
