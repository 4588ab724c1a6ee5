package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/jackc/pgerrcode"
)

// cartRepository stores the carts of authenticated accounts in the
// "cart_items" table, one row per (account, product).
type cartRepository struct {
	*DB
	logger *logger.Logger
}

// NewCartRepository constructs a [CartRepository].
func NewCartRepository(db *DB, logger *logger.Logger) CartRepository {
	logger.Debug().Msg("creating cart repository")
	return &cartRepository{
		DB:     db,
		logger: logger,
	}
}

// GetCartItems returns the lines of the account cart joined with the
// current product name and price.
func (r *cartRepository) GetCartItems(ctx context.Context, accountID int64) ([]models.CartItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCartItemsQuery(accountID)
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	err = r.withRetry(ctx, func() error {
		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		items = make([]models.CartItem, 0, 8)
		for rows.Next() {
			var item models.CartItem
			if scanErr := rows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.UnitPriceCents); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			items = append(items, item)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*cartRepository.GetCartItems").Int64("account_id", accountID).Msg("error reading cart")
		return nil, err
	}

	return items, nil
}

// AddCartItem inserts a cart line or increases the quantity of an existing one.
func (r *cartRepository) AddCartItem(ctx context.Context, accountID int64, item models.CartItem) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAddCartItemQuery(accountID, item)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*cartRepository.AddCartItem").
			Int64("account_id", accountID).
			Int64("product_id", item.ProductID).
			Msg("error adding cart item")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrReferenceNotFound
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		log.Debug().
			Int64("account_id", accountID).
			Int64("product_id", item.ProductID).
			Int("quantity", item.Quantity).
			Msg("cart item not added: insufficient stock")
		return ErrInsufficientStock
	}

	return nil
}

// RemoveCartItem deletes a single cart line. [ErrCartItemNotFound] is
// returned when the line does not exist.
func (r *cartRepository) RemoveCartItem(ctx context.Context, accountID, productID int64) error {
	query, args, err := buildRemoveCartItemQuery(accountID, productID)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "RemoveCartItem", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// ClearCart deletes every line of the account cart. Clearing an empty cart
// is not an error.
func (r *cartRepository) ClearCart(ctx context.Context, accountID int64) error {
	query, args, err := buildClearCartQuery(accountID)
	if err != nil {
		return err
	}

	_, err = r.exec(ctx, "ClearCart", query, args)
	return err
}

// DeleteCartItemsOlderThan purges cart lines not touched since before and
// returns how many were removed.
func (r *cartRepository) DeleteCartItemsOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteCartItemsOlderThanQuery(before)
	if err != nil {
		return 0, err
	}

	return r.exec(ctx, "DeleteCartItemsOlderThan", query, args)
}

func (r *cartRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*cartRepository."+funcName).Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
