package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/jackc/pgerrcode"
)

type vendorRepository struct {
	*DB
	logger *logger.Logger
}

func NewVendorRepository(db *DB, logger *logger.Logger) VendorRepository {
	logger.Debug().Msg("creating vendor repository")
	return &vendorRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vendorRepository) CreateVendor(ctx context.Context, vendor models.Vendor) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateVendorQuery(vendor)
	if err != nil {
		return models.Vendor{}, err
	}

	created, err := scanVendor(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*vendorRepository.CreateVendor").Msg("error creating vendor")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Vendor{}, ErrVendorNameTaken
		case pgerrcode.ForeignKeyViolation:
			return models.Vendor{}, ErrReferenceNotFound
		default:
			return models.Vendor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *vendorRepository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVendorsQuery()
	if err != nil {
		return nil, err
	}

	var vendors []models.Vendor
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		vendors = make([]models.Vendor, 0, 16)
		for rows.Next() {
			var v models.Vendor
			if scanErr := rows.Scan(&v.VendorID, &v.OwnerAccountID, &v.Name, &v.Description, &v.CreatedAt); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			vendors = append(vendors, v)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*vendorRepository.ListVendors").Msg("error listing vendors")
		return nil, err
	}

	return vendors, nil
}

func (r *vendorRepository) FindVendorByID(ctx context.Context, vendorID int64) (models.Vendor, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindVendorByIDQuery(vendorID)
	if err != nil {
		return models.Vendor{}, err
	}

	var found models.Vendor
	err = r.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanVendor(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Vendor{}, ErrVendorNotFound
		}
		log.Err(err).Str("func", "*vendorRepository.FindVendorByID").Int64("vendor_id", vendorID).Msg("error finding vendor")
		return models.Vendor{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func scanVendor(row *sql.Row) (models.Vendor, error) {
	var v models.Vendor
	err := row.Scan(&v.VendorID, &v.OwnerAccountID, &v.Name, &v.Description, &v.CreatedAt)
	return v, err
}
