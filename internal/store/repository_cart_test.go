package store

import (
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-shop-api/internal/logger"
	"github.com/MKhiriev/go-shop-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartRepo(t *testing.T) (CartRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewCartRepository(newDBFromSQL(db), logger.Nop()), mock
}

func TestGetCartItems(t *testing.T) {
	repo, mock := newTestCartRepo(t)

	mock.ExpectQuery("SELECT ci.product_id, p.name, ci.quantity, p.price_cents FROM cart_items ci JOIN products p").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "name", "quantity", "price_cents"}).
			AddRow(int64(10), "Hammer", 2, int64(1299)).
			AddRow(int64(11), "Nails", 1, int64(199)))

	items, err := repo.GetCartItems(testContext(), 1)
	require.NoError(t, err)
	assert.Equal(t, []models.CartItem{
		{ProductID: 10, Name: "Hammer", Quantity: 2, UnitPriceCents: 1299},
		{ProductID: 11, Name: "Nails", Quantity: 1, UnitPriceCents: 199},
	}, items)
}

func TestAddCartItem(t *testing.T) {
	item := models.CartItem{ProductID: 10, Quantity: 2}

	t.Run("upsert", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("INSERT INTO cart_items .* ON CONFLICT \\(account_id, product_id\\) DO UPDATE").
			WithArgs(int64(1), int64(10), 2, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.AddCartItem(testContext(), 1, item))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient stock", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("INSERT INTO cart_items .* p.stock >= \\$4").
			WithArgs(int64(1), int64(10), 2, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.AddCartItem(testContext(), 1, item), ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown product", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("INSERT INTO cart_items").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		assert.ErrorIs(t, repo.AddCartItem(testContext(), 1, item), ErrReferenceNotFound)
	})

	t.Run("other error", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("INSERT INTO cart_items").WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.AddCartItem(testContext(), 1, item), ErrExecutingStatement)
	})
}

func TestRemoveCartItem(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("DELETE FROM cart_items WHERE account_id = \\$1 AND product_id = \\$2").
			WithArgs(int64(1), int64(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.RemoveCartItem(testContext(), 1, 10))
	})

	t.Run("missing line", func(t *testing.T) {
		repo, mock := newTestCartRepo(t)
		mock.ExpectExec("DELETE FROM cart_items").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.RemoveCartItem(testContext(), 1, 10), ErrCartItemNotFound)
	})
}

func TestClearCart(t *testing.T) {
	repo, mock := newTestCartRepo(t)
	mock.ExpectExec("DELETE FROM cart_items WHERE account_id = \\$1$").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.ClearCart(testContext(), 1))
}

func TestDeleteCartItemsOlderThan(t *testing.T) {
	repo, mock := newTestCartRepo(t)
	before := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM cart_items WHERE updated_at < \\$1").
		WithArgs(before).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := repo.DeleteCartItemsOlderThan(testContext(), before)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
}
