package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-shop-api/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldName      = "name"
	FieldAccountID = "account_id"
	FieldVendorID  = "vendor_id"
	FieldProductID = "product_id"
	FieldPrice     = "price"
	FieldStock     = "stock"
	FieldQuantity  = "quantity"
)

// MinPasswordLength is the shortest accepted password at registration.
const MinPasswordLength = 8

// MaxCartItemQuantity bounds a single cart line and a single add request.
// It keeps quantity sums far from integer overflow and within int4.
const MaxCartItemQuantity = 10000

var allowedRoles = []models.Role{
	models.RoleCustomer,
	models.RoleVendor,
	models.RoleAdmin,
}

// ShopValidator implements [Validator] for the request and domain models of
// the shop: registration and login requests, account updates, vendors,
// products and cart items. Both values and pointers are accepted.
type ShopValidator struct{}

// NewShopValidator constructs a ShopValidator and returns it as [Validator].
func NewShopValidator() Validator {
	return &ShopValidator{}
}

// Validate dispatches to the type-specific rules. When fields is non-empty
// only the named fields are checked.
func (v *ShopValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch o := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(o, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*o, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(o, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(*o, fields...)
	case models.AccountUpdate:
		return v.validateAccountUpdate(o, fields...)
	case *models.AccountUpdate:
		return v.validateAccountUpdate(*o, fields...)
	case models.Vendor:
		return v.validateVendor(o, fields...)
	case *models.Vendor:
		return v.validateVendor(*o, fields...)
	case models.Product:
		return v.validateProduct(o, fields...)
	case *models.Product:
		return v.validateProduct(*o, fields...)
	case models.CartItem:
		return v.validateCartItem(o, fields...)
	case *models.CartItem:
		return v.validateCartItem(*o, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

type rule func() error

// run checks the rules of the requested fields, or all rules if no field
// was requested.
func run(rules map[string]rule, order []string, fields ...string) error {
	if len(fields) == 0 {
		fields = order
	}
	for _, field := range fields {
		check, ok := rules[field]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *ShopValidator) validateRegisterRequest(r models.RegisterRequest, fields ...string) error {
	return run(map[string]rule{
		FieldEmail: func() error { return validateEmail(r.Email) },
		FieldPassword: func() error {
			if len(r.Password) < MinPasswordLength {
				return ErrWeakPassword
			}
			return nil
		},
		FieldName: func() error { return nil },
		FieldRole: func() error {
			if r.Role == "" {
				return nil
			}
			for _, allowed := range allowedRoles {
				if r.Role == allowed {
					return nil
				}
			}
			return ErrInvalidRole
		},
	}, []string{FieldEmail, FieldPassword, FieldRole}, fields...)
}

func (v *ShopValidator) validateLoginRequest(r models.LoginRequest, fields ...string) error {
	return run(map[string]rule{
		FieldEmail: func() error { return validateEmail(r.Email) },
		FieldPassword: func() error {
			if r.Password == "" {
				return ErrEmptyPassword
			}
			return nil
		},
	}, []string{FieldEmail, FieldPassword}, fields...)
}

func (v *ShopValidator) validateAccountUpdate(u models.AccountUpdate, fields ...string) error {
	return run(map[string]rule{
		FieldAccountID: func() error { return positive(u.AccountID, ErrInvalidAccountID) },
		FieldName: func() error {
			if u.Name == nil {
				return ErrNoFieldsToUpdate
			}
			if strings.TrimSpace(*u.Name) == "" {
				return ErrEmptyName
			}
			return nil
		},
	}, []string{FieldAccountID, FieldName}, fields...)
}

func (v *ShopValidator) validateVendor(vendor models.Vendor, fields ...string) error {
	return run(map[string]rule{
		FieldAccountID: func() error { return positive(vendor.OwnerAccountID, ErrInvalidAccountID) },
		FieldName:      func() error { return notBlank(vendor.Name) },
	}, []string{FieldAccountID, FieldName}, fields...)
}

func (v *ShopValidator) validateProduct(p models.Product, fields ...string) error {
	return run(map[string]rule{
		FieldVendorID: func() error { return positive(p.VendorID, ErrInvalidVendorID) },
		FieldName:     func() error { return notBlank(p.Name) },
		FieldPrice: func() error {
			if p.PriceCents < 0 {
				return ErrInvalidPrice
			}
			return nil
		},
		FieldStock: func() error {
			if p.Stock < 0 {
				return ErrInvalidStock
			}
			return nil
		},
	}, []string{FieldVendorID, FieldName, FieldPrice, FieldStock}, fields...)
}

func (v *ShopValidator) validateCartItem(item models.CartItem, fields ...string) error {
	return run(map[string]rule{
		FieldProductID: func() error { return positive(item.ProductID, ErrInvalidProductID) },
		FieldQuantity: func() error {
			if item.Quantity <= 0 || item.Quantity > MaxCartItemQuantity {
				return ErrInvalidQuantity
			}
			return nil
		},
	}, []string{FieldProductID, FieldQuantity}, fields...)
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func positive(id int64, err error) error {
	if id <= 0 {
		return err
	}
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyName
	}
	return nil
}
