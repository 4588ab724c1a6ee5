package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("password is too short")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrEmptyName        = errors.New("name is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidVendorID  = errors.New("invalid vendor ID")
	ErrInvalidProductID = errors.New("invalid product ID")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrInvalidStock     = errors.New("stock must not be negative")
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10000")
)
