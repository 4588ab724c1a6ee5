package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/internal/store"
	"github.com/MKhiriev/go-shop-api/internal/validators"
	"github.com/MKhiriev/go-shop-api/models"
)

type vendorService struct {
	vendorRepository store.VendorRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewVendorService(vendorRepository store.VendorRepository, validator validators.Validator, logger *logger.Logger) VendorService {
	return &vendorService{
		vendorRepository: vendorRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *vendorService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	vendors, err := s.vendorRepository.ListVendors(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing vendors failed")
		return nil, fmt.Errorf("listing vendors failed: %w", err)
	}

	return vendors, nil
}

func (s *vendorService) GetVendor(ctx context.Context, vendorID int64) (models.Vendor, error) {
	vendor, err := s.vendorRepository.FindVendorByID(ctx, vendorID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("vendor_id", vendorID).Msg("vendor search by ID failed")
		return models.Vendor{}, fmt.Errorf("vendor search by ID failed: %w", err)
	}

	return vendor, nil
}

// CreateVendor registers a vendor owned by vendor.OwnerAccountID.
func (s *vendorService) CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, vendor); err != nil {
		log.Debug().Err(err).Str("name", vendor.Name).Msg("invalid vendor")
		return models.Vendor{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.vendorRepository.CreateVendor(ctx, vendor)
	if err != nil {
		log.Err(err).Str("name", vendor.Name).Msg("vendor creation failed")
		return models.Vendor{}, fmt.Errorf("vendor creation failed: %w", err)
	}

	return created, nil
}
