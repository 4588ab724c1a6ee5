// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-shop-api/models"
	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	accountColumns = []string{"account_id", "email", "password_hash", "name", "role", "created_at"}
	vendorColumns  = []string{"vendor_id", "owner_account_id", "name", "description", "created_at"}
	productColumns = []string{"product_id", "vendor_id", "name", "description", "price_cents", "stock", "created_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func wrapBuildErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

// accounts

func buildCreateAccountQuery(account models.Account) (string, []any, error) {
	query, args, err := psql.Insert(models.Account{}.TableName()).
		Columns("email", "password_hash", "name", "role").
		Values(account.Email, account.PasswordHash, account.Name, string(account.Role)).
		Suffix(returning(accountColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildFindAccountQuery(where sq.Eq) (string, []any, error) {
	query, args, err := psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(where).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildUpdateAccountQuery(update models.AccountUpdate) (string, []any, error) {
	builder := psql.Update(models.Account{}.TableName())

	fields := 0
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
		fields++
	}
	if fields == 0 {
		return "", nil, ErrNothingToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"account_id": update.AccountID}).
		Suffix(returning(accountColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

// vendors

func buildCreateVendorQuery(vendor models.Vendor) (string, []any, error) {
	query, args, err := psql.Insert(models.Vendor{}.TableName()).
		Columns("owner_account_id", "name", "description").
		Values(vendor.OwnerAccountID, vendor.Name, vendor.Description).
		Suffix(returning(vendorColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildListVendorsQuery() (string, []any, error) {
	query, args, err := psql.Select(vendorColumns...).
		From(models.Vendor{}.TableName()).
		OrderBy("vendor_id").
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildFindVendorByIDQuery(vendorID int64) (string, []any, error) {
	query, args, err := psql.Select(vendorColumns...).
		From(models.Vendor{}.TableName()).
		Where(sq.Eq{"vendor_id": vendorID}).
		ToSql()
	return query, args, wrapBuildErr(err)
}

// products

func buildCreateProductQuery(product models.Product) (string, []any, error) {
	query, args, err := psql.Insert(models.Product{}.TableName()).
		Columns("vendor_id", "name", "description", "price_cents", "stock").
		Values(product.VendorID, product.Name, product.Description, product.PriceCents, product.Stock).
		Suffix(returning(productColumns)).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildListProductsQuery(filter models.ProductFilter) (string, []any, error) {
	builder := psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		OrderBy("product_id")

	if filter.VendorID != 0 {
		builder = builder.Where(sq.Eq{"vendor_id": filter.VendorID})
	}
	if filter.Limit != 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset != 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	return query, args, wrapBuildErr(err)
}

func buildFindProductByIDQuery(productID int64) (string, []any, error) {
	query, args, err := psql.Select(productColumns...).
		From(models.Product{}.TableName()).
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	return query, args, wrapBuildErr(err)
}

// cart_items

func buildGetCartItemsQuery(accountID int64) (string, []any, error) {
	query, args, err := psql.Select("ci.product_id", "p.name", "ci.quantity", "p.price_cents").
		From("cart_items ci").
		Join("products p ON p.product_id = ci.product_id").
		Where(sq.Eq{"ci.account_id": accountID}).
		OrderBy("ci.product_id").
		ToSql()
	return query, args, wrapBuildErr(err)
}

// buildAddCartItemQuery inserts or increments a cart line only while the
// resulting quantity fits the product stock. Both branches check stock inside
// the statement, so concurrent adds cannot oversell: the conflict branch
// re-evaluates its WHERE against the locked row. No row is affected when
// stock is insufficient or the product does not exist.
func buildAddCartItemQuery(accountID int64, item models.CartItem) (string, []any, error) {
	inStock := sq.Select().
		Column(sq.Expr("?::bigint", accountID)).
		Column("p.product_id").
		Column(sq.Expr("?::int", item.Quantity)).
		Column("NOW()").
		From("products p").
		Where(sq.Eq{"p.product_id": item.ProductID}).
		Where(sq.GtOrEq{"p.stock": item.Quantity})

	query, args, err := psql.Insert("cart_items").
		Columns("account_id", "product_id", "quantity", "updated_at").
		Select(inStock).
		Suffix("ON CONFLICT (account_id, product_id) DO UPDATE " +
			"SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW() " +
			"WHERE cart_items.quantity + EXCLUDED.quantity <= " +
			"(SELECT stock FROM products WHERE product_id = EXCLUDED.product_id)").
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildRemoveCartItemQuery(accountID, productID int64) (string, []any, error) {
	query, args, err := psql.Delete("cart_items").
		Where(sq.Eq{"account_id": accountID, "product_id": productID}).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildClearCartQuery(accountID int64) (string, []any, error) {
	query, args, err := psql.Delete("cart_items").
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	return query, args, wrapBuildErr(err)
}

func buildDeleteCartItemsOlderThanQuery(before time.Time) (string, []any, error) {
	query, args, err := psql.Delete("cart_items").
		Where(sq.Lt{"updated_at": before}).
		ToSql()
	return query, args, wrapBuildErr(err)
}
