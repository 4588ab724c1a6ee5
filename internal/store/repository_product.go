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

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository] over the "products" table.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository].
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateProduct inserts product and returns it with its assigned ID.
// A missing vendor yields [ErrReferenceNotFound].
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateProductQuery(product)
	if err != nil {
		return models.Product{}, err
	}

	created, err := scanProduct(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.CreateProduct").
			Int64("vendor_id", product.VendorID).
			Msg("error creating product")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Product{}, ErrReferenceNotFound
		default:
			return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return created, nil
}

// ListProducts returns products ordered by ID, narrowed by filter.
// Returns an empty slice when nothing matches.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListProductsQuery(filter)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		products = make([]models.Product, 0, 50)
		for rows.Next() {
			var p models.Product
			if scanErr := rows.Scan(&p.ProductID, &p.VendorID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.CreatedAt); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			products = append(products, p)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*productRepository.ListProducts").
			Int64("vendor_id", filter.VendorID).
			Msg("error listing products")
		return nil, err
	}

	return products, nil
}

// FindProductByID returns the product with productID or [ErrProductNotFound].
func (r *productRepository) FindProductByID(ctx context.Context, productID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindProductByIDQuery(productID)
	if err != nil {
		return models.Product{}, err
	}

	var found models.Product
	err = r.withRetry(ctx, func() error {
		var scanErr error
		found, scanErr = scanProduct(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindProductByID").Int64("product_id", productID).Msg("error finding product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

func scanProduct(row *sql.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ProductID, &p.VendorID, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &p.CreatedAt)
	return p, err
}
