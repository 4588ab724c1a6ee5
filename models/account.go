package models

import "time"

// Role is the access level granted to an account. It is embedded into every
// issued API token and checked by role-guarded routes.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleVendor   Role = "vendor"
	RoleAdmin    Role = "admin"
)

// Account represents a registered shop user.
// PasswordHash never leaves the server.
type Account struct {
	// AccountID is the server-assigned identifier, also used as the "sub"
	// claim of API tokens.
	AccountID int64 `json:"accountId"`

	// Email is unique across accounts and used as the login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// Name is the display name.
	Name string `json:"name"`

	// Role defines what the account may do (customer, vendor, admin).
	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     Role   `json:"role,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccountUpdate carries a partial update of an account.
// Only non-nil fields are applied.
type AccountUpdate struct {
	AccountID int64   `json:"-"`
	Name      *string `json:"name,omitempty"`
}
