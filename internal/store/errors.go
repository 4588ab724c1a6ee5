package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// account fails because the email is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrAccountNotFound is returned when a lookup by ID or email matches no account.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrVendorNameTaken is returned when a vendor with the same name exists.
	ErrVendorNameTaken = errors.New("vendor name already taken")

	// ErrVendorNotFound is returned when a lookup by ID matches no vendor.
	ErrVendorNotFound = errors.New("vendor was not found")

	// ErrProductNotFound is returned when a lookup by ID matches no product.
	ErrProductNotFound = errors.New("product was not found")

	// ErrCartItemNotFound is returned when a cart line to delete does not exist.
	ErrCartItemNotFound = errors.New("cart item was not found")

	// ErrInsufficientStock is returned when adding to a cart would exceed the
	// product stock, or the product no longer exists.
	ErrInsufficientStock = errors.New("insufficient product stock")

	// ErrReferenceNotFound is returned on a foreign key violation, e.g. when
	// a product is created for a vendor that does not exist.
	ErrReferenceNotFound = errors.New("referenced entity was not found")

	// ErrNothingToUpdate is returned when an update request carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrSessionNotFound is returned when the session key is absent or expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrRedisUnavailable wraps any Redis transport error.
	ErrRedisUnavailable = errors.New("redis unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingSession is returned when a session cannot be (de)serialized.
	ErrEncodingSession = errors.New("failed to encode session")
)
